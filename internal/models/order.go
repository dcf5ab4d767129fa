package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"index;not null" json:"user_id"`
	User        User        `json:"-"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Status      string      `gorm:"default:pending" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Quantity  uint    `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
	Product   Product `json:"-"`
}
