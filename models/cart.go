package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
}

// CartItem holds at most one row per (cart, product) pair; adding an
// already-present product increments Quantity instead.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"index" json:"-"` // Faster queries
	ProductID uint    `json:"-"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}
