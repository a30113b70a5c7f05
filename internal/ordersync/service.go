// Package ordersync mirrors placed orders from the order.placed topic into
// the REST orders collection, where the admin console reads them.
package ordersync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/Hasna17806/ZYRA-sub000/internal/kafka"
	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/redisx"
)

const dedupScope = "ordersync"

type OrderAPI interface {
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
}

type Service struct {
	API   OrderAPI
	Redis *redis.Client
}

// HandleOrderPlaced is the consumer handler. An event is marked seen only
// after the order was created; a failed POST is returned as is and the
// consumer retries the same message. Undecodable messages are permanent.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return kafkax.Permanent(fmt.Errorf("decode envelope: %w", err))
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, dedupScope, env.EventID)
	seen, err := redisx.Exists(ctx, s.Redis, dkey)
	if err != nil {
		return fmt.Errorf("dedup lookup: %w", err)
	}
	if seen {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		return kafkax.Permanent(err)
	}
	if _, err := s.API.CreateOrder(ctx, p.Order); err != nil {
		return fmt.Errorf("mirror order %s: %w", p.Order.ID, err)
	}
	return s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
}
