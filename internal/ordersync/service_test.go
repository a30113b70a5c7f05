package ordersync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkax "github.com/Hasna17806/ZYRA-sub000/internal/kafka"
	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/orders"
	"github.com/Hasna17806/ZYRA-sub000/internal/redisx"
)

type fakeAPI struct {
	created []models.Order
	err     error
}

func (f *fakeAPI) CreateOrder(_ context.Context, o models.Order) (models.Order, error) {
	if f.err != nil {
		return models.Order{}, f.err
	}
	f.created = append(f.created, o)
	return o, nil
}

func message(t *testing.T, eventID, eventType string, o models.Order) kafkago.Message {
	t.Helper()
	payload, err := kafkax.Marshal(orders.OrderPlacedPayload{UserEmail: "ana@zyra.io", Order: o})
	require.NoError(t, err)
	value, err := json.Marshal(orders.Envelope{EventID: eventID, EventType: eventType, EventVersion: 1, Payload: payload})
	require.NoError(t, err)
	return kafkago.Message{Topic: orders.TopicOrderPlaced, Value: value}
}

func newService(t *testing.T, api OrderAPI) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &Service{API: api, Redis: rdb}, mr
}

func TestMirrorsOnce(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	svc, mr := newService(t, api)
	m := message(t, "ev-1", orders.EventOrderPlaced, models.Order{ID: "1700000000000", Total: 70})

	require.NoError(t, svc.HandleOrderPlaced(ctx, m))
	require.NoError(t, svc.HandleOrderPlaced(ctx, m))

	require.Len(t, api.created, 1)
	assert.Equal(t, models.ID("1700000000000"), api.created[0].ID)
	assert.True(t, mr.Exists("dedup:ordersync:ev-1"))
	assert.Equal(t, redisx.TTLDedup, mr.TTL("dedup:ordersync:ev-1"))
}

func TestFailedCreateIsRetried(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{err: errors.New("unavailable")}
	svc, mr := newService(t, api)
	m := message(t, "ev-2", orders.EventOrderPlaced, models.Order{ID: "5"})

	assert.Error(t, svc.HandleOrderPlaced(ctx, m))
	assert.False(t, mr.Exists("dedup:ordersync:ev-2"))

	api.err = nil
	require.NoError(t, svc.HandleOrderPlaced(ctx, m))
	assert.Len(t, api.created, 1)
}

func TestIgnoresOtherEvents(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newService(t, api)

	require.NoError(t, svc.HandleOrderPlaced(context.Background(), message(t, "ev-3", "OrderShipped", models.Order{ID: "5"})))
	assert.Empty(t, api.created)
}

func TestGarbageIsPermanent(t *testing.T) {
	svc, _ := newService(t, &fakeAPI{})
	err := svc.HandleOrderPlaced(context.Background(), kafkago.Message{Value: []byte("nope")})
	require.Error(t, err)
	assert.True(t, kafkax.IsPermanent(err))
}

func TestCreateFailureIsRetryable(t *testing.T) {
	svc, _ := newService(t, &fakeAPI{err: errors.New("unavailable")})
	err := svc.HandleOrderPlaced(context.Background(), message(t, "ev-4", orders.EventOrderPlaced, models.Order{ID: "6"}))
	require.Error(t, err)
	assert.False(t, kafkax.IsPermanent(err))
}
