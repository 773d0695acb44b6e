package popularity

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tair/product-catalog/kafka"
)

func TestCounterRanksByViews(t *testing.T) {
	c := NewCounter(prometheus.NewRegistry())
	ctx := context.Background()

	for _, id := range []string{"3", "1", "3", "2", "1", "3"} {
		c.Handle(ctx, kafka.ProductViewedEvent{ProductID: id, Category: "Laptop"})
	}

	top := c.Top(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].ProductID != "3" || top[0].Views != 3 || top[1].ProductID != "1" || top[1].Views != 2 {
		t.Fatalf("unexpected ranking: %+v", top)
	}

	if all := c.Top(0); len(all) != 3 {
		t.Fatalf("expected all 3 products, got %d", len(all))
	}
	if got := testutil.ToFloat64(c.received.WithLabelValues("Laptop")); got != 6 {
		t.Fatalf("received counter = %v, want 6", got)
	}
}

func TestCounterTiesOrderedByID(t *testing.T) {
	c := NewCounter(prometheus.NewRegistry())
	for _, id := range []string{"5", "4"} {
		c.Handle(context.Background(), kafka.ProductViewedEvent{ProductID: id})
	}

	top := c.Top(0)
	if top[0].ProductID != "4" || top[1].ProductID != "5" {
		t.Fatalf("unexpected tie order: %+v", top)
	}
}

func TestCounterConcurrentHandle(t *testing.T) {
	c := NewCounter(prometheus.NewRegistry())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Handle(context.Background(), kafka.ProductViewedEvent{ProductID: "1"})
		}()
	}
	wg.Wait()

	if top := c.Top(1); top[0].Views != 50 {
		t.Fatalf("views = %d, want 50", top[0].Views)
	}
}
