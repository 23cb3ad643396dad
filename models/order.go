package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Orders are created as a snapshot of a cart and stay pending;
	// no further status transitions exist in this API.
	OrderStatusPending OrderStatus = "pending"
)

type Order struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Ref       string          `gorm:"uniqueIndex" json:"ref"`
	Status    OrderStatus     `gorm:"type:VARCHAR(50);default:'pending'" json:"status"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2)" json:"total"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItem copies the product price at materialization time so that
// historical orders are decoupled from future price changes.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   uint            `gorm:"index" json:"-"`
	ProductID uint            `json:"-"`
	Quantity  int             `gorm:"default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
}
