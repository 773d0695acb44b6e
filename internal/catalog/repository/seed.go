package repository

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

var sampleProducts = []domain.Product{
	{ID: "1", ProductName: "Laptop 1", Company: "Company A", Category: "Laptop", Price: 1236, Rating: 4.7, DiscountPercent: 3, Availability: "yes", Position: 1},
	{ID: "2", ProductName: "Laptop 2", Company: "Company B", Category: "Laptop", Price: 1244, Rating: 4.5, DiscountPercent: 5, Availability: "out of stock", Position: 2},
	{ID: "3", ProductName: "Tablet 1", Company: "Company C", Category: "Tablet", Price: 9182, Rating: 4.4, DiscountPercent: 0, Availability: "yes", Position: 3},
	{ID: "4", ProductName: "Earphone 1", Company: "Company A", Category: "Earphone", Price: 2652, Rating: 4.1, DiscountPercent: 0, Availability: "yes", Position: 4},
	{ID: "5", ProductName: "Headset 1", Company: "Company B", Category: "Headset", Price: 1220, Rating: 3.8, DiscountPercent: 10, Availability: "yes", Position: 5},
}

// SampleProducts returns a copy of the built-in catalog
func SampleProducts() []domain.Product {
	out := make([]domain.Product, len(sampleProducts))
	copy(out, sampleProducts)
	return out
}

// StaticProductRepository serves a fixed in-memory collection
type StaticProductRepository struct {
	products []domain.Product
}

// NewStaticProductRepository copies products into a new repository
func NewStaticProductRepository(products []domain.Product) *StaticProductRepository {
	owned := make([]domain.Product, len(products))
	copy(owned, products)
	return &StaticProductRepository{products: owned}
}

// NewSeedProductRepository serves the built-in sample catalog
func NewSeedProductRepository() *StaticProductRepository {
	return NewStaticProductRepository(sampleProducts)
}

// FindAll returns a copy of the full collection
func (r *StaticProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
