//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/symptomchecker/backend/internal/adapters/cache"
	"github.com/zatekoja/symptomchecker/backend/internal/application/services"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/tests/mocks"
)

func testPrefix() string {
	return "it:" + uuid.NewString() + ":"
}

func TestRedisPermissionStore_SurvivesNewAdapter(t *testing.T) {
	client := maybeTestRedisClient(t)
	ctx := context.Background()
	prefix := testPrefix()

	store := cache.NewCachePermissionStore(cache.NewRedisAdapter(client, prefix), "")
	require.NoError(t, store.Set(ctx, entities.PermissionDenied))
	t.Cleanup(func() { _ = store.Set(context.Background(), entities.PermissionUnset) })

	// A fresh adapter reads what the previous process stored.
	reopened := cache.NewCachePermissionStore(cache.NewRedisAdapter(client, prefix), "")
	state, err := reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionDenied, state)

	raw, err := client.Client().Get(ctx, prefix+cache.PermissionKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "denied", raw)

	require.NoError(t, reopened.Set(ctx, entities.PermissionUnset))
	exists, err := client.Client().Exists(ctx, prefix+cache.PermissionKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestRedisPermissionStore_DeniedShortCircuitsLocation(t *testing.T) {
	client := maybeTestRedisClient(t)
	ctx := context.Background()

	store := cache.NewCachePermissionStore(cache.NewRedisAdapter(client, testPrefix()), "")
	require.NoError(t, store.Set(ctx, entities.PermissionDenied))
	t.Cleanup(func() { _ = store.Set(context.Background(), entities.PermissionUnset) })

	source := mocks.NewMockPositionSource(t)
	svc := services.NewLocationService(source, store, nil, nil)

	_, err := svc.Acquire(ctx)
	require.Error(t, err)
	source.AssertNotCalled(t, "CurrentPosition")
}

func TestRedisAdapter_MissAndExpiry(t *testing.T) {
	client := maybeTestRedisClient(t)
	ctx := context.Background()
	prefix := testPrefix()
	adapter := cache.NewRedisAdapter(client, prefix)

	_, err := adapter.Get(ctx, "absent")
	assert.True(t, errors.Is(err, providers.ErrCacheMiss))

	require.NoError(t, adapter.Set(ctx, "catalog:symptoms", []byte(`[]`), 60))
	ttl, err := client.Client().TTL(ctx, prefix+"catalog:symptoms").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl.Seconds(), 0.0)
	require.NoError(t, adapter.Delete(ctx, "catalog:symptoms"))
}
