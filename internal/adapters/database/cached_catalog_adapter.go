package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/repositories"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
)

// Cache TTLs (in seconds). The catalog changes only when reseeded.
const (
	catalogListTTL    = 3600
	diseaseByIDTTL    = 3600
	symptomsCacheKey  = "catalog:symptoms"
	diseasesCacheKey  = "catalog:diseases"
	diseaseKeyPattern = "catalog:disease:%d"
)

// CachedSymptomAdapter wraps a SymptomRepository with caching
type CachedSymptomAdapter struct {
	adapter repositories.SymptomRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedSymptomAdapter creates a new cached symptom adapter
func NewCachedSymptomAdapter(adapter repositories.SymptomRepository, cache providers.CacheProvider, metrics *observability.Metrics) *CachedSymptomAdapter {
	return &CachedSymptomAdapter{adapter: adapter, cache: cache, metrics: metrics}
}

// List returns the cached symptom list, loading it on a miss
func (a *CachedSymptomAdapter) List(ctx context.Context) ([]*entities.Symptom, error) {
	var symptoms []*entities.Symptom
	if readCached(ctx, a.cache, a.metrics, symptomsCacheKey, &symptoms) {
		return symptoms, nil
	}

	symptoms, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, a.cache, symptomsCacheKey, symptoms, catalogListTTL)
	return symptoms, nil
}

// Invalidate drops the cached symptom list
func (a *CachedSymptomAdapter) Invalidate(ctx context.Context) error {
	return a.cache.Delete(ctx, symptomsCacheKey)
}

// CachedDiseaseAdapter wraps a DiseaseRepository with caching
type CachedDiseaseAdapter struct {
	adapter repositories.DiseaseRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedDiseaseAdapter creates a new cached disease adapter
func NewCachedDiseaseAdapter(adapter repositories.DiseaseRepository, cache providers.CacheProvider, metrics *observability.Metrics) *CachedDiseaseAdapter {
	return &CachedDiseaseAdapter{adapter: adapter, cache: cache, metrics: metrics}
}

// List returns the cached disease list, loading it on a miss
func (a *CachedDiseaseAdapter) List(ctx context.Context) ([]*entities.Disease, error) {
	var diseases []*entities.Disease
	if readCached(ctx, a.cache, a.metrics, diseasesCacheKey, &diseases) {
		return diseases, nil
	}

	diseases, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, a.cache, diseasesCacheKey, diseases, catalogListTTL)
	return diseases, nil
}

// GetByID retrieves a disease by ID with caching
func (a *CachedDiseaseAdapter) GetByID(ctx context.Context, id int) (*entities.Disease, error) {
	key := fmt.Sprintf(diseaseKeyPattern, id)

	var disease entities.Disease
	if readCached(ctx, a.cache, a.metrics, key, &disease) {
		return &disease, nil
	}

	d, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	writeCached(ctx, a.cache, key, d, diseaseByIDTTL)
	return d, nil
}

// Invalidate drops the cached disease list and the given per-id entries
func (a *CachedDiseaseAdapter) Invalidate(ctx context.Context, ids ...int) error {
	if err := a.cache.Delete(ctx, diseasesCacheKey); err != nil {
		return err
	}
	for _, id := range ids {
		if err := a.cache.Delete(ctx, fmt.Sprintf(diseaseKeyPattern, id)); err != nil {
			return err
		}
	}
	return nil
}

func readCached(ctx context.Context, cache providers.CacheProvider, metrics *observability.Metrics, key string, out interface{}) bool {
	cached, err := cache.Get(ctx, key)
	if err != nil {
		observability.RecordCacheMiss(ctx, metrics, key)
		return false
	}
	if err := json.Unmarshal(cached, out); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached catalog entry")
		observability.RecordCacheMiss(ctx, metrics, key)
		return false
	}
	observability.RecordCacheHit(ctx, metrics, key)
	return true
}

func writeCached(ctx context.Context, cache providers.CacheProvider, key string, value interface{}, ttl int) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, data, ttl); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to cache catalog entry")
	}
}
