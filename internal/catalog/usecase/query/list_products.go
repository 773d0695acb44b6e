package query

import (
	"context"
	"fmt"

	"github.com/tair/product-catalog/internal/catalog/browse"
	"github.com/tair/product-catalog/internal/catalog/domain"
)

// ListProductsQuery represents the query to list the products matching a criteria snapshot
type ListProductsQuery struct {
	Criteria domain.Criteria
}

// ListProductsResult carries the filtered listing
type ListProductsResult struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Matched  int              `json:"matched"`
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query. The full reference collection is
// reloaded on every call so criteria never compound.
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	products, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	matched := browse.Filter(products, query.Criteria)

	return &ListProductsResult{
		Products: matched,
		Total:    len(products),
		Matched:  len(matched),
	}, nil
}
