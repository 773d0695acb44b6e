package query

import (
	"context"
	"fmt"

	"github.com/tair/product-catalog/internal/catalog/browse"
	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
)

// ViewPublisher receives detail-view notifications
type ViewPublisher interface {
	PublishProductViewed(ctx context.Context, event kafka.ProductViewedEvent) error
}

// NopViewPublisher drops every event
type NopViewPublisher struct{}

func (NopViewPublisher) PublishProductViewed(context.Context, kafka.ProductViewedEvent) error {
	return nil
}

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo      domain.ProductRepository
	publisher ViewPublisher
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository, publisher ViewPublisher) *GetProductHandler {
	if publisher == nil {
		publisher = NopViewPublisher{}
	}
	return &GetProductHandler{repo: repo, publisher: publisher}
}

// Handle executes the get product query. A missing id yields an error
// wrapping domain.ErrProductNotFound.
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	products, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	product, ok := browse.FindByID(products, query.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProductNotFound, query.ID)
	}

	event := kafka.ProductViewedEvent{
		ProductID: product.ID,
		Category:  product.Category,
		Company:   product.Company,
		Price:     product.Price,
	}
	if err := h.publisher.PublishProductViewed(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("product_id", product.ID).Msg("Failed to publish product view")
	}

	return &product, nil
}
