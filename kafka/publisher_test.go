package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestPublishProductViewed(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event ProductViewedEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.ProductID != "3" || event.Category != "Tablet" {
			return fmt.Errorf("unexpected payload: %+v", event)
		}
		if event.EventType != EventTypeProductViewed {
			return fmt.Errorf("unexpected event type %q", event.EventType)
		}
		if event.EventID == "" {
			return errors.New("expected generated event id")
		}
		if !event.Timestamp.Equal(fixed) {
			return fmt.Errorf("unexpected timestamp %v", event.Timestamp)
		}
		return nil
	})

	p := NewPublisherWithProducer(producer)
	p.now = func() time.Time { return fixed }

	err := p.PublishProductViewed(context.Background(), ProductViewedEvent{
		ProductID: "3",
		Category:  "Tablet",
		Company:   "Company C",
		Price:     9182,
	})
	if err != nil {
		t.Fatalf("PublishProductViewed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestPublishProductViewedPropagatesSendError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer)
	err := p.PublishProductViewed(context.Background(), ProductViewedEvent{ProductID: "1"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
