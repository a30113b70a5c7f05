package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/Hasna17806/ZYRA-sub000/internal/kafka"
	"github.com/Hasna17806/ZYRA-sub000/internal/models"
)

// Publisher is satisfied by *kafkax.Producer.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// KafkaNotifier announces placed orders on TopicOrderPlaced.
type KafkaNotifier struct {
	Producer Publisher
	Service  string
}

func (n *KafkaNotifier) OrderPlaced(ctx context.Context, email string, o models.Order) error {
	payload, err := kafkax.Marshal(OrderPlacedPayload{UserEmail: email, Order: o})
	if err != nil {
		return err
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      n.Service,
		TraceID:       kafkax.TraceID(ctx),
		CorrelationID: o.ID.String(),
		Payload:       payload,
	}
	value, err := kafkax.Marshal(ev)
	if err != nil {
		return err
	}
	n.Producer.Publish(PartitionKey(o.ID.String()), value,
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	return nil
}
