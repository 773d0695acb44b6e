package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
	"github.com/tair/product-catalog/pkg/logger"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	statsHandler      *query.GetStatsHandler

	repo           domain.ProductRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	matchedGauge   prometheus.Gauge
	cache          func(http.Handler) http.Handler
	limit          func(http.Handler) http.Handler
}

// NewProductHandler creates a product handler (manual DI)
func NewProductHandler(repo domain.ProductRepository, publisher query.ViewPublisher, reg prometheus.Registerer) *ProductHandler {
	return NewProductHandlerWithDI(
		query.NewGetProductHandler(repo, publisher),
		query.NewListProductsHandler(repo),
		query.NewGetStatsHandler(repo),
		repo,
		reg,
	)
}

// NewProductHandlerWithDI creates a product handler from prebuilt query handlers.
// This is used by Wire for automatic dependency injection
func NewProductHandlerWithDI(
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.ProductRepository,
	reg prometheus.Registerer,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_catalog_requests_total",
			Help: "Total number of requests to the product catalog",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "product_catalog_request_duration_seconds",
			Help:    "Duration of product catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// p50, p90, p95, p99
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "product_catalog_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	matchedGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_catalog_filter_matched_products",
			Help: "Number of products matched by the most recent uncached listing",
		},
	)

	reg.MustRegister(requestCounter, requestLatency, requestSummary, matchedGauge)

	return &ProductHandler{
		getProductHandler: getProductHandler,
		listHandler:       listHandler,
		statsHandler:      statsHandler,
		repo:              repo,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		requestSummary:    requestSummary,
		matchedGauge:      matchedGauge,
		cache:             passThrough,
		limit:             passThrough,
	}
}

func passThrough(next http.Handler) http.Handler {
	return next
}

// UseCache puts mw in front of the listing and stats routes
func (h *ProductHandler) UseCache(mw func(http.Handler) http.Handler) {
	h.cache = mw
}

// UseRateLimit puts mw in front of every /api route, ahead of the cache
func (h *ProductHandler) UseRateLimit(mw func(http.Handler) http.Handler) {
	h.limit = mw
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.route("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.route("/api/products/stats", h.GetStats)).Methods("GET")
	// Detail views are not cached: every hit publishes a view event
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.limit(http.HandlerFunc(h.GetProduct)).ServeHTTP)).Methods("GET")
}

func (h *ProductHandler) route(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return h.metricsMiddleware(endpoint, h.limit(h.cache(next)).ServeHTTP)
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Criteria: domain.ParseCriteria(r.URL.Query()),
	}

	result, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	// Cache hits never reach this handler, so the gauge tracks the last
	// listing that was actually filtered.
	h.matchedGauge.Set(float64(result.Matched))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if errors.Is(err, domain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("product_id", id).Msg("Failed to get product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get product",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.GetStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get statistics",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

func (h *ProductHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.repo.FindAll(r.Context()); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Catalog source unavailable")
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Catalog source unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Product catalog is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
