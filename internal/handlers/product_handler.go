package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hws-kobayashi-ukyo/coffee/internal/db"
	"github.com/hws-kobayashi-ukyo/coffee/internal/models"
)

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

// GET /api/products
func ListProducts(c *gin.Context) {

	var products []models.Product

	if err := db.DB.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func GetProduct(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product

	if err := db.DB.First(&product, id).Error; err != nil {
		errorMessage := fmt.Sprintf("Product not found with ID: %d", id)
		c.JSON(http.StatusNotFound, gin.H{"error": errorMessage})
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /api/products
func CreateProduct(c *gin.Context) {

	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
	}

	if err := db.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /api/products/:id
//
// A full-field replace. An id with no matching row updates zero rows and
// still echoes the payload, keeping the operation idempotent.
func UpdateProduct(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"category":    req.Category,
		"image_url":   req.ImageURL,
		"stock":       req.Stock,
	}

	if err := db.DB.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Echo the payload with the path id. No created_at here: for a missing
	// id there is no row to read a timestamp from.
	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"name":        req.Name,
		"description": req.Description,
		"price":       req.Price,
		"category":    req.Category,
		"image_url":   req.ImageURL,
		"stock":       req.Stock,
	})
}

// DELETE /api/products/:id
func DeleteProduct(c *gin.Context) {

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := db.DB.Delete(&models.Product{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func parseID(c *gin.Context) (uint, bool) {

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}

	return uint(id), true
}
