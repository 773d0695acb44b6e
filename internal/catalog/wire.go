//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/product-catalog/internal/catalog/delivery/grpc"
	"github.com/tair/product-catalog/internal/catalog/delivery/http"
	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(repo domain.ProductRepository, publisher query.ViewPublisher, reg prometheus.Registerer) (*http.ProductHandler, error) {
	wire.Build(
		QueryHandlerSet,
		http.NewProductHandlerWithDI,
	)
	return nil, nil
}

// InitializeGRPCServer initializes gRPC server with all dependencies
func InitializeGRPCServer(repo domain.ProductRepository, publisher query.ViewPublisher) (*grpc.CatalogServer, error) {
	wire.Build(
		QueryHandlerSet,
		grpc.NewCatalogServerWithDI,
	)
	return nil, nil
}
