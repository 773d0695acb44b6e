package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
)

func viewedMessage(t *testing.T, event ProductViewedEvent, headers ...sarama.RecordHeader) *sarama.ConsumerMessage {
	t.Helper()
	value, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := make([]*sarama.RecordHeader, len(headers))
	for i := range headers {
		out[i] = &headers[i]
	}
	return &sarama.ConsumerMessage{Topic: TopicProductViewed, Value: value, Headers: out}
}

func eventTypeHeader(v string) sarama.RecordHeader {
	return sarama.RecordHeader{Key: []byte("event_type"), Value: []byte(v)}
}

func TestHandleMessageDispatchesByEventType(t *testing.T) {
	c := NewConsumerWithGroup(nil, "test", []string{TopicProductViewed})

	var got []ProductViewedEvent
	c.RegisterHandler(EventTypeProductViewed, func(_ context.Context, e ProductViewedEvent) error {
		got = append(got, e)
		return nil
	})
	h := &consumerGroupHandler{consumer: c}

	h.handleMessage(context.Background(), viewedMessage(t,
		ProductViewedEvent{EventID: "e1", ProductID: "3"},
		eventTypeHeader(EventTypeProductViewed),
	))
	// No event type header
	h.handleMessage(context.Background(), viewedMessage(t, ProductViewedEvent{ProductID: "4"}))
	// Unregistered type
	h.handleMessage(context.Background(), viewedMessage(t,
		ProductViewedEvent{ProductID: "5"},
		eventTypeHeader("product.purchased"),
	))
	// Undecodable payload
	h.handleMessage(context.Background(), &sarama.ConsumerMessage{
		Topic:   TopicProductViewed,
		Value:   []byte("{"),
		Headers: []*sarama.RecordHeader{{Key: []byte("event_type"), Value: []byte(EventTypeProductViewed)}},
	})

	if len(got) != 1 || got[0].ProductID != "3" || got[0].EventID != "e1" {
		t.Fatalf("unexpected handled events: %+v", got)
	}
}

func TestHandleMessageSurvivesHandlerError(t *testing.T) {
	c := NewConsumerWithGroup(nil, "test", []string{TopicProductViewed})
	calls := 0
	c.RegisterHandler(EventTypeProductViewed, func(context.Context, ProductViewedEvent) error {
		calls++
		return errors.New("store unavailable")
	})
	h := &consumerGroupHandler{consumer: c}

	msg := viewedMessage(t, ProductViewedEvent{ProductID: "1"}, eventTypeHeader(EventTypeProductViewed))
	h.handleMessage(context.Background(), msg)
	h.handleMessage(context.Background(), msg)

	if calls != 2 {
		t.Fatalf("expected handler to be called for each message, got %d", calls)
	}
}

func TestConsumerCloseWithoutGroup(t *testing.T) {
	if err := NewConsumerWithGroup(nil, "test", nil).Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
