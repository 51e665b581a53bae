package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
)

// PermissionKey is where the location permission flag is kept
const PermissionKey = "locationPermission"

// CachePermissionStore persists the location permission flag in a
// CacheProvider without expiry. Storing unset deletes the key.
type CachePermissionStore struct {
	cache providers.CacheProvider
	key   string
}

// NewCachePermissionStore stores the flag under PermissionKey, optionally
// namespaced by scope (for example a user or device id).
func NewCachePermissionStore(cache providers.CacheProvider, scope string) *CachePermissionStore {
	key := PermissionKey
	if scope = strings.TrimSpace(scope); scope != "" {
		key = scope + ":" + PermissionKey
	}
	return &CachePermissionStore{cache: cache, key: key}
}

// Get implements providers.PermissionStore
func (s *CachePermissionStore) Get(ctx context.Context) (entities.PermissionState, error) {
	raw, err := s.cache.Get(ctx, s.key)
	if errors.Is(err, providers.ErrCacheMiss) {
		return entities.PermissionUnset, nil
	}
	if err != nil {
		return entities.PermissionUnset, err
	}

	state := entities.PermissionState(strings.TrimSpace(string(raw)))
	if !state.Valid() {
		return entities.PermissionUnset, fmt.Errorf("unknown permission value %q", state)
	}
	return state, nil
}

// Set implements providers.PermissionStore
func (s *CachePermissionStore) Set(ctx context.Context, state entities.PermissionState) error {
	if !state.Valid() {
		return fmt.Errorf("unknown permission value %q", state)
	}
	if state == entities.PermissionUnset {
		return s.cache.Delete(ctx, s.key)
	}
	return s.cache.Set(ctx, s.key, []byte(state), 0)
}

// NewPermissionStoreFromConfig builds the PermissionStore selected by
// cfg.PermissionStore. The redis store uses shared, which must be non-nil.
func NewPermissionStoreFromConfig(cfg config.LocationConfig, shared providers.CacheProvider) (providers.PermissionStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.PermissionStore)) {
	case "", "redis":
		if shared == nil {
			return nil, fmt.Errorf("redis permission store requires a cache")
		}
		return NewCachePermissionStore(shared, ""), nil
	case "memory":
		return NewCachePermissionStore(NewMemoryAdapter(), ""), nil
	case "file":
		if strings.TrimSpace(cfg.PermissionFile) == "" {
			return nil, fmt.Errorf("LOCATION_PERMISSION_FILE is required for the file permission store")
		}
		return NewFilePermissionStore(cfg.PermissionFile), nil
	default:
		return nil, fmt.Errorf("unknown permission store %q", cfg.PermissionStore)
	}
}
