package kafka

import "time"

// ProductViewedEvent is emitted when a product detail is served
type ProductViewedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Category  string    `json:"category"`
	Company   string    `json:"company"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductViewed = "product.viewed"
)

// Kafka topics
const (
	TopicProductViewed = "product-viewed"
)
