package models

import "github.com/shopspring/decimal"

// Product is seeded at startup and read-only afterwards; there is no
// update or delete path in this API.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:200;unique;not null" json:"name"`
	Category    string          `gorm:"size:100;index;not null" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
