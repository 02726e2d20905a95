package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64    `json:"total"` // derived, recomputed on every mutation
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CartID      uint      `gorm:"index:idx_cart_product,unique" json:"cart_id"`
	ProductID   uint      `gorm:"index:idx_cart_product,unique" json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"` // effective price snapshotted at add time
	ImageURL    string    `json:"image_url"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// ComputeTotal derives the cart total from its lines. The stored Total is
// never trusted independently.
func (c *Cart) ComputeTotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
	return total
}
