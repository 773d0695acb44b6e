package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
	"github.com/tair/product-catalog/kafka"
)

type listEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
		Matched  int              `json:"matched"`
	} `json:"data"`
	Error string `json:"error"`
}

type productEnvelope struct {
	Success bool           `json:"success"`
	Data    domain.Product `json:"data"`
	Error   string         `json:"error"`
}

type countingPublisher struct{ n int }

func (c *countingPublisher) PublishProductViewed(context.Context, kafka.ProductViewedEvent) error {
	c.n++
	return nil
}

type brokenRepository struct{}

func (brokenRepository) FindAll(context.Context) ([]domain.Product, error) {
	return nil, errors.New("connection refused")
}

func setupRouter(t *testing.T, repo domain.ProductRepository) (*mux.Router, *ProductHandler, *countingPublisher) {
	t.Helper()
	pub := &countingPublisher{}
	h := NewProductHandler(repo, pub, prometheus.NewRegistry())
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	h.RegisterHealthCheck(router)
	return router, h, pub
}

func doGet(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListProductsFilters(t *testing.T) {
	router, _, _ := setupRouter(t, repository.NewSeedProductRepository())

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{name: "no filters", target: "/api/products", want: []string{"1", "2", "3", "4", "5"}},
		{name: "category", target: "/api/products?category=laptop", want: []string{"1", "2"}},
		{name: "rating alias", target: "/api/products?rating=4.5", want: []string{"1", "2"}},
		{name: "price range", target: "/api/products?minPrice=2000&maxPrice=3000", want: []string{"4"}},
		{name: "availability", target: "/api/products?availability=out%20of%20stock", want: []string{"2"}},
		{name: "malformed numbers ignored", target: "/api/products?minPrice=abc&maxPrice=", want: []string{"1", "2", "3", "4", "5"}},
		{name: "nothing matches", target: "/api/products?company=zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doGet(t, router, tt.target)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}

			var body listEnvelope
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !body.Success || body.Data.Total != 5 || body.Data.Matched != len(tt.want) {
				t.Fatalf("unexpected envelope: %+v", body)
			}
			for i, id := range tt.want {
				if body.Data.Products[i].ID != id {
					t.Fatalf("position %d: got id %q, want %q", i, body.Data.Products[i].ID, id)
				}
			}
		})
	}
}

func TestListProductsRecordsMetrics(t *testing.T) {
	router, h, _ := setupRouter(t, repository.NewSeedProductRepository())

	doGet(t, router, "/api/products?category=Laptop")

	if got := testutil.ToFloat64(h.requestCounter.WithLabelValues("GET", "/api/products", "200")); got != 1 {
		t.Fatalf("request counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.matchedGauge); got != 2 {
		t.Fatalf("matched gauge = %v, want 2", got)
	}
}

func TestGetProduct(t *testing.T) {
	router, _, pub := setupRouter(t, repository.NewSeedProductRepository())

	rr := doGet(t, router, "/api/products/3")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body productEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.ProductName != "Tablet 1" || body.Data.Price != 9182 {
		t.Fatalf("unexpected product: %+v", body.Data)
	}
	if pub.n != 1 {
		t.Fatalf("expected one view event, got %d", pub.n)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router, _, pub := setupRouter(t, repository.NewSeedProductRepository())

	rr := doGet(t, router, "/api/products/99")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body productEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error != "Product not found" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if pub.n != 0 {
		t.Fatalf("expected no view event, got %d", pub.n)
	}
}

func TestGetStatsRouteWinsOverID(t *testing.T) {
	router, _, _ := setupRouter(t, repository.NewSeedProductRepository())

	rr := doGet(t, router, "/api/products/stats")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body struct {
		Data struct {
			TotalProducts int      `json:"total_products"`
			Categories    []string `json:"categories"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.TotalProducts != 5 || len(body.Data.Categories) != 4 {
		t.Fatalf("unexpected stats: %+v", body.Data)
	}
}

func TestRepositoryFailures(t *testing.T) {
	router, _, _ := setupRouter(t, brokenRepository{})

	tests := []struct {
		target string
		want   int
	}{
		{"/api/products", http.StatusInternalServerError},
		{"/api/products/1", http.StatusInternalServerError},
		{"/api/products/stats", http.StatusInternalServerError},
		{"/health", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		if rr := doGet(t, router, tt.target); rr.Code != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.target, tt.want, rr.Code)
		}
	}
}

func TestHealthOK(t *testing.T) {
	router, _, _ := setupRouter(t, repository.NewSeedProductRepository())

	if rr := doGet(t, router, "/health"); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestNonGetMethodsRejected(t *testing.T) {
	router, _, _ := setupRouter(t, repository.NewSeedProductRepository())

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestRateLimitWrapsAPIRoutes(t *testing.T) {
	pub := &countingPublisher{}
	h := NewProductHandler(repository.NewSeedProductRepository(), pub, prometheus.NewRegistry())
	h.UseRateLimit(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	})
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	h.RegisterHealthCheck(router)

	for _, target := range []string{"/api/products", "/api/products/stats", "/api/products/1"} {
		if rr := doGet(t, router, target); rr.Code != http.StatusTooManyRequests {
			t.Fatalf("%s: expected 429, got %d", target, rr.Code)
		}
	}
	if rr := doGet(t, router, "/health"); rr.Code != http.StatusOK {
		t.Fatalf("health should not be limited, got %d", rr.Code)
	}
	if pub.n != 0 {
		t.Fatalf("rejected detail requests must not publish views")
	}
}
