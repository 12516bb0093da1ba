package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the store.
// The ID is assigned by the database on first save.
type Product struct {
	ID    uint            `gorm:"primaryKey"`
	Name  string          `gorm:"not null"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (p *Product) TableName() string {
	return "products"
}
