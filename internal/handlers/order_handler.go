package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hws-kobayashi-ukyo/coffee/internal/db"
	"github.com/hws-kobayashi-ukyo/coffee/internal/models"
	"github.com/hws-kobayashi-ukyo/coffee/internal/notifier"
)

type OrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  uint    `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemResponse struct {
	ProductID   uint    `json:"product_id"`
	Quantity    uint    `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
}

type OrderResponse struct {
	ID          uint                `json:"id"`
	UserID      uint                `json:"user_id"`
	TotalAmount float64             `json:"total_amount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}

// POST /api/orders
//
// The order row, its items and the stock decrements are one transaction:
// either every write lands or none do.
func CreateOrder(c *gin.Context) {

	var req CreateOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items required"})
		return
	}

	// Orders belong to the seeded store account until real checkout
	// identity exists.
	var account models.User
	if err := db.DB.Where("email = ?", db.AdminEmail).First(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store account not found"})
		return
	}

	var totalAmount float64
	for _, item := range req.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	tx := db.DB.Begin()

	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start transaction"})
		return
	}

	order := models.Order{
		UserID:      account.ID,
		TotalAmount: totalAmount,
		Status:      "pending",
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orderItems := make([]models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := tx.CreateInBatches(&orderItems, len(orderItems)).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order items"})
		return
	}

	for _, item := range req.Items {
		err := tx.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update stock"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to commit order"})
		return
	}

	go func(email, name string, orderID uint, totalAmount float64) {
		if err := notifier.SendOrderConfirmation(email, name, orderID, totalAmount); err != nil {
			fmt.Printf("Failed to send confirmation for order %d to %s: %v\n", orderID, email, err)
		}
	}(account.Email, account.Name, order.ID, totalAmount)

	c.JSON(http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"total_amount": totalAmount,
		"status":       "created",
	})
}

// GET /api/orders
func ListOrders(c *gin.Context) {

	var orders []models.Order

	err := db.DB.
		Preload("Items.Product").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]OrderResponse, 0, len(orders))

	for _, order := range orders {
		items := make([]OrderItemResponse, 0, len(order.Items))

		for _, item := range order.Items {
			items = append(items, OrderItemResponse{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				Price:       item.Price,
				ProductName: item.Product.Name,
			})
		}

		response = append(response, OrderResponse{
			ID:          order.ID,
			UserID:      order.UserID,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
			Items:       items,
		})
	}

	c.JSON(http.StatusOK, response)
}
