package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := WithPrefix(NewRedis(rdb), "device:d1:")

	_, ok, err := s.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyUser, `{"id":"1"}`))
	got, err := mr.Get("device:d1:user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, got)
	assert.Zero(t, mr.TTL("device:d1:user"))

	require.NoError(t, s.Delete(ctx, KeyUser))
	assert.False(t, mr.Exists("device:d1:user"))
}
