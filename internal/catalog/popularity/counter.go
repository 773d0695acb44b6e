// Package popularity tallies product detail views received from Kafka.
package popularity

import (
	"context"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/product-catalog/kafka"
)

// ProductViews is one row of the ranking
type ProductViews struct {
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
	Views     int    `json:"views"`
}

// Counter counts views per product. Safe for concurrent use.
type Counter struct {
	mu       sync.Mutex
	views    map[string]*ProductViews
	received *prometheus.CounterVec
}

// NewCounter creates a counter whose metrics are registered on reg
func NewCounter(reg prometheus.Registerer) *Counter {
	received := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_catalog_views_received_total",
			Help: "Product viewed events received, by category",
		},
		[]string{"category"},
	)
	reg.MustRegister(received)

	return &Counter{
		views:    make(map[string]*ProductViews),
		received: received,
	}
}

// Handle records one view. It matches kafka.EventHandler.
func (c *Counter) Handle(_ context.Context, event kafka.ProductViewedEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.views[event.ProductID]
	if !ok {
		row = &ProductViews{ProductID: event.ProductID}
		c.views[event.ProductID] = row
	}
	row.Category = event.Category
	row.Views++

	c.received.WithLabelValues(event.Category).Inc()
	return nil
}

// Top returns up to n products by descending views, ties by product id.
// n <= 0 returns every product.
func (c *Counter) Top(n int) []ProductViews {
	c.mu.Lock()
	out := make([]ProductViews, 0, len(c.views))
	for _, row := range c.views {
		out = append(out, *row)
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Views != out[j].Views {
			return out[i].Views > out[j].Views
		}
		return out[i].ProductID < out[j].ProductID
	})

	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
