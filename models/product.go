package models

import "time"

// Product is the local product table. Rows created through the API get an
// auto-assigned id; rows mirrored from the catalog keep the catalog's id so
// CartItem can reference either kind.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
