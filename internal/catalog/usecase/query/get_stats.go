package query

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats summarises the collection for the filter controls
type CatalogStats struct {
	TotalProducts     int      `json:"total_products"`
	AvailableProducts int      `json:"available_products"`
	AveragePrice      float64  `json:"average_price"`
	MinPrice          float64  `json:"min_price"`
	MaxPrice          float64  `json:"max_price"`
	Categories        []string `json:"categories"`
	Companies         []string `json:"companies"`
	Availability      []string `json:"availability"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, query GetStatsQuery) (*CatalogStats, error) {
	products, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	stats := &CatalogStats{
		TotalProducts: len(products),
		Categories:    []string{},
		Companies:     []string{},
		Availability:  []string{},
	}
	if len(products) == 0 {
		return stats, nil
	}

	categories := make(map[string]bool)
	companies := make(map[string]bool)
	availability := make(map[string]bool)
	var totalPrice float64

	stats.MinPrice = products[0].Price
	stats.MaxPrice = products[0].Price
	for _, p := range products {
		if strings.EqualFold(p.Availability, "yes") {
			stats.AvailableProducts++
		}
		totalPrice += p.Price
		if p.Price < stats.MinPrice {
			stats.MinPrice = p.Price
		}
		if p.Price > stats.MaxPrice {
			stats.MaxPrice = p.Price
		}
		if p.Category != "" {
			categories[p.Category] = true
		}
		if p.Company != "" {
			companies[p.Company] = true
		}
		if p.Availability != "" {
			availability[p.Availability] = true
		}
	}

	stats.AveragePrice = totalPrice / float64(len(products))
	stats.Categories = sortedKeys(categories)
	stats.Companies = sortedKeys(companies)
	stats.Availability = sortedKeys(availability)

	return stats, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
