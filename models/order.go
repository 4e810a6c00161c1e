package models

import "time"

// Order is a snapshot of the cart's value at checkout time. Total is never
// recomputed after creation.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	OrderRef  string    `gorm:"uniqueIndex" json:"order_ref"`
	Total     float64   `gorm:"not null" json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
