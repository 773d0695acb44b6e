package repository

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

func TestSeedRepositoryReturnsSampleCatalog(t *testing.T) {
	repo := NewSeedProductRepository()

	products, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(products))
	}
	for i, want := range []string{"1", "2", "3", "4", "5"} {
		if products[i].ID != want {
			t.Fatalf("position %d: id %q, want %q", i, products[i].ID, want)
		}
	}
	if products[1].Availability != "out of stock" || products[4].DiscountPercent != 10 {
		t.Fatalf("unexpected sample data: %+v", products)
	}
}

func TestStaticRepositoryReturnsCopies(t *testing.T) {
	repo := NewSeedProductRepository()
	ctx := context.Background()

	first, _ := repo.FindAll(ctx)
	first[0].ProductName = "mutated"
	first = first[:1]

	second, _ := repo.FindAll(ctx)
	if len(second) != 5 || second[0].ProductName != "Laptop 1" {
		t.Fatalf("caller mutation leaked into repository: %+v", second)
	}

	sample := SampleProducts()
	sample[0].Price = 1
	if SampleProducts()[0].Price != 1236 {
		t.Fatalf("SampleProducts returned shared backing array")
	}
}

func TestStaticRepositoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSeedProductRepository().FindAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type failingRepository struct{ err error }

func (f failingRepository) FindAll(context.Context) ([]domain.Product, error) {
	return nil, f.err
}

func TestTracingRepositoryRecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)

	repo := NewTracingProductRepository(NewSeedProductRepository(), "seed")
	products, err := repo.FindAll(context.Background())
	if err != nil || len(products) != 5 {
		t.Fatalf("FindAll = %d products, err %v", len(products), err)
	}

	failing := NewTracingProductRepository(failingRepository{err: errors.New("boom")}, "postgres")
	if _, err := failing.FindAll(context.Background()); err == nil {
		t.Fatalf("expected error to propagate")
	}

	spans := sr.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name() != "repository.FindAll" {
		t.Fatalf("unexpected span name %q", spans[0].Name())
	}
	if spans[1].Status().Code != codes.Error {
		t.Fatalf("expected error status on failing span, got %v", spans[1].Status())
	}
}
