package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tair/product-catalog/internal/catalog/repository"
)

func TestInitializeHTTPHandler(t *testing.T) {
	h, err := InitializeHTTPHandler(repository.NewSeedProductRepository(), nil, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	router := mux.NewRouter()
	h.RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/products/1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestInitializeGRPCServer(t *testing.T) {
	srv, err := InitializeGRPCServer(repository.NewSeedProductRepository(), nil)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	resp, err := srv.ListProducts(context.Background(), &structpb.Struct{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := resp.GetFields()["matched"].GetNumberValue(); got != 5 {
		t.Fatalf("matched = %v, want 5", got)
	}
}
