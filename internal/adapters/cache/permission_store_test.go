package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
	"github.com/zatekoja/symptomchecker/backend/tests/mocks"
)

func TestCachePermissionStore_RoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewCachePermissionStore(NewRedisAdapter(client, ""), "")
	ctx := context.Background()

	state, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionUnset, state)

	require.NoError(t, store.Set(ctx, entities.PermissionDenied))
	raw, err := mr.Get(PermissionKey)
	require.NoError(t, err)
	assert.Equal(t, "denied", raw)
	assert.Zero(t, mr.TTL(PermissionKey))

	state, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionDenied, state)

	require.NoError(t, store.Set(ctx, entities.PermissionUnset))
	assert.False(t, mr.Exists(PermissionKey))
}

func TestCachePermissionStore_Scoped(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	alice := NewCachePermissionStore(adapter, "device-a")
	bob := NewCachePermissionStore(adapter, "device-b")

	require.NoError(t, alice.Set(ctx, entities.PermissionGranted))

	state, err := bob.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionUnset, state)

	state, err = alice.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionGranted, state)
}

func TestCachePermissionStore_Errors(t *testing.T) {
	cache := mocks.NewMockCacheProvider(t)
	store := NewCachePermissionStore(cache, "")
	ctx := context.Background()

	cache.EXPECT().Get(mock.Anything, PermissionKey).Return(nil, errors.New("connection refused")).Once()
	_, err := store.Get(ctx)
	assert.Error(t, err)

	cache.EXPECT().Get(mock.Anything, PermissionKey).Return([]byte("sometimes"), nil).Once()
	state, err := store.Get(ctx)
	assert.Error(t, err)
	assert.Equal(t, entities.PermissionUnset, state)

	assert.Error(t, store.Set(ctx, entities.PermissionState("bogus")))
}

func TestCachePermissionStore_MissIsUnset(t *testing.T) {
	cache := mocks.NewMockCacheProvider(t)
	cache.EXPECT().Get(mock.Anything, PermissionKey).Return(nil, providers.ErrCacheMiss)

	state, err := NewCachePermissionStore(cache, "").Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entities.PermissionUnset, state)
}

func TestFilePermissionStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "location-permission.json")
	store := NewFilePermissionStore(path)
	ctx := context.Background()

	state, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionUnset, state)

	require.NoError(t, store.Set(ctx, entities.PermissionGranted))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locationPermission": "granted"}`, string(data))

	state, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.PermissionGranted, state)

	require.NoError(t, store.Set(ctx, entities.PermissionUnset))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Set(ctx, entities.PermissionUnset), "clearing twice is fine")
}

func TestFilePermissionStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perm.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	state, err := NewFilePermissionStore(path).Get(context.Background())

	assert.Error(t, err)
	assert.Equal(t, entities.PermissionUnset, state)
}

func TestNewPermissionStoreFromConfig(t *testing.T) {
	shared := NewMemoryAdapter()

	store, err := NewPermissionStoreFromConfig(config.LocationConfig{PermissionStore: "redis"}, shared)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), entities.PermissionGranted))
	raw, err := shared.Get(context.Background(), PermissionKey)
	require.NoError(t, err)
	assert.Equal(t, "granted", string(raw))

	store, err = NewPermissionStoreFromConfig(config.LocationConfig{PermissionStore: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &CachePermissionStore{}, store)

	path := filepath.Join(t.TempDir(), "perm.json")
	store, err = NewPermissionStoreFromConfig(config.LocationConfig{PermissionStore: "file", PermissionFile: path}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FilePermissionStore{}, store)

	_, err = NewPermissionStoreFromConfig(config.LocationConfig{PermissionStore: "redis"}, nil)
	assert.Error(t, err)

	_, err = NewPermissionStoreFromConfig(config.LocationConfig{PermissionStore: "file"}, nil)
	assert.Error(t, err)

	_, err = NewPermissionStoreFromConfig(config.LocationConfig{PermissionStore: "cookie"}, shared)
	assert.Error(t, err)
}
