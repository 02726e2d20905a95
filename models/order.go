package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order is an immutable snapshot of a cart at checkout time. After creation
// only Status, PaymentToken and PaymentURL may change.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"-"`
	OrderID         string      `gorm:"uniqueIndex;not null" json:"order_id"` // client/gateway-visible reference
	UserID          string      `gorm:"index;not null" json:"user_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderRowID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64     `gorm:"not null" json:"subtotal"`
	ShippingFee     float64     `gorm:"not null" json:"shipping_fee"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'Pending';index" json:"status"`
	ShippingAddress string      `gorm:"not null" json:"shipping_address"`
	PaymentToken    string      `json:"payment_token,omitempty"`
	PaymentURL      string      `json:"payment_url,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a value copy of a cart line, decoupled from future product
// changes.
type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"-"`
	OrderRowID      uint    `gorm:"index" json:"-"`
	ProductID       uint    `json:"product_id"`
	ProductName     string  `json:"product_name"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Quantity        int     `json:"quantity"`
	ImageURL        string  `json:"image_url"`
}
