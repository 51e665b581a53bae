package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/redis"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redisclient.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, redisclient.NewFromRedis(rdb)
}

func TestRedisAdapter_SetGetDelete(t *testing.T) {
	mr, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, "symptomchecker:")
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), 60))
	assert.True(t, mr.Exists("symptomchecker:k"))
	assert.Equal(t, 60*time.Second, mr.TTL("symptomchecker:k"))

	got, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	exists, err := adapter.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, adapter.Delete(ctx, "k"))

	_, err = adapter.Get(ctx, "k")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)
}

func TestRedisAdapter_Expiry(t *testing.T) {
	mr, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, "")
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "short", []byte("x"), 1))
	mr.FastForward(2 * time.Second)

	exists, err := adapter.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisAdapter_ConnectionError(t *testing.T) {
	mr, client := newTestRedis(t)
	adapter := NewRedisAdapter(client, "")
	mr.Close()

	_, err := adapter.Get(context.Background(), "k")

	require.Error(t, err)
	assert.NotErrorIs(t, err, providers.ErrCacheMiss)
}
