package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingProductRepository wraps any ProductRepository with spans
type TracingProductRepository struct {
	next   domain.ProductRepository
	source string
}

// NewTracingProductRepository decorates next; source names the backing store
func NewTracingProductRepository(next domain.ProductRepository, source string) *TracingProductRepository {
	return &TracingProductRepository{next: next, source: source}
}

// FindAll with tracing
func (r *TracingProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.String("catalog.source", r.source),
		),
	)
	defer span.End()

	products, err := r.next.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}
