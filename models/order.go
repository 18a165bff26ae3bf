package models

import (
	"gorm.io/gorm"
)

// Order status values.
const (
	OrderPending    = "pending"
	OrderPaid       = "paid"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

// Payment status values.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// OrderItem snapshots the product at purchase time so later price or name
// changes never rewrite order history.
type OrderItem struct {
	ProductID       uint    `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	Subtotal        float64 `json:"subtotal"`
}

type ShippingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

type Order struct {
	gorm.Model
	UserID        *uint        `gorm:"index" json:"userId,omitempty"`
	OrderNumber   string       `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Items         []OrderItem  `gorm:"serializer:json" json:"items"`
	TotalAmount   float64      `gorm:"not null" json:"totalAmount"`
	Currency      string       `gorm:"not null;default:USD" json:"currency"`
	Status        string       `gorm:"not null;default:pending;index" json:"status"`
	PaymentMethod string       `gorm:"not null" json:"paymentMethod"`
	PaymentStatus string       `gorm:"not null;default:pending;index" json:"paymentStatus"`
	PaymentRef    string       `json:"paymentRef,omitempty"`
	ShippingInfo  ShippingInfo `gorm:"serializer:json" json:"shippingInfo"`
	Notes         string       `json:"notes,omitempty"`
}
