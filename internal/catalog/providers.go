package catalog

import (
	"github.com/google/wire"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
)

// Query Handlers Providers
func ProvideGetProductHandler(repo domain.ProductRepository, publisher query.ViewPublisher) *query.GetProductHandler {
	return query.NewGetProductHandler(repo, publisher)
}

func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideGetStatsHandler(repo domain.ProductRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

// Wire sets
var QueryHandlerSet = wire.NewSet(
	ProvideGetProductHandler,
	ProvideListProductsHandler,
	ProvideGetStatsHandler,
)
