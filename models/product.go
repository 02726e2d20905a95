package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	PromoPrice  float64   `gorm:"default:0" json:"promo_price"` // 0 = no promo
	ImageURL    string    `json:"image_url"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Vendor      string    `json:"vendor"`
	Category    string    `gorm:"index" json:"category"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EffectivePrice is the unit price a buyer actually pays.
func (p Product) EffectivePrice() float64 {
	if p.PromoPrice > 0 {
		return p.PromoPrice
	}
	return p.Price
}
