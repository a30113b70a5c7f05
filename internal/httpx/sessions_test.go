package httpx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hasna17806/ZYRA-sub000/internal/restapi"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi/restapitest"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
	"github.com/Hasna17806/ZYRA-sub000/internal/storefront"
)

func TestIdleDevicesAreEvicted(t *testing.T) {
	ctx := context.Background()
	api := restapi.New(restapitest.New(t).URL)
	store := storage.NewMemory()
	opened := 0
	open := func(ctx context.Context, id string) (*storefront.Storefront, error) {
		opened++
		return storefront.New(ctx, storage.WithPrefix(store, id+":"), api)
	}

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(open, api, 10*time.Minute)
	s.now = func() time.Time { return now }

	a, err := s.get(ctx, "a")
	require.NoError(t, err)
	_, err = s.get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	now = now.Add(6 * time.Minute)
	again, err := s.get(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, a, again)

	// b has now been idle for 11 minutes, a for 5
	now = now.Add(5 * time.Minute)
	_, err = s.get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	_, err = s.get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 3, opened, "an evicted device is rebuilt from storage")
}
