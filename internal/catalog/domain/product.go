package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when no product carries the requested id
var ErrProductNotFound = errors.New("product not found")

// Product represents one catalog record. Records are read-only for the
// lifetime of a session.
type Product struct {
	ID              string  `json:"id" gorm:"primaryKey"`
	ProductName     string  `json:"productName" gorm:"not null"`
	Company         string  `json:"company"`
	Category        string  `json:"category" gorm:"index"`
	Price           float64 `json:"price" gorm:"not null"`
	Rating          float64 `json:"rating"`
	DiscountPercent float64 `json:"discountPercent"`
	Availability    string  `json:"availability"`

	// Position keeps the catalog order when records come from a table.
	Position int `json:"-" gorm:"not null;default:0;index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository is the source of the reference collection.
// FindAll always returns the complete collection in catalog order.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
}
