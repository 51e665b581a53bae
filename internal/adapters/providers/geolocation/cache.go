package geolocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/retry"
)

const (
	defaultReverseCacheTTL = 60 * 60 * 24 * 30
	defaultHTTPTimeout     = 8 * time.Second
)

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// reverseCacheKey rounds to five decimals, roughly one metre
func reverseCacheKey(provider string, lat, lon float64) string {
	return "geo:v3:reverse:" + provider + ":" + hashKey(fmt.Sprintf("%.5f,%.5f", lat, lon))
}

func readCachedAddress(ctx context.Context, cache providers.CacheProvider, key string) *providers.GeocodedAddress {
	if cache == nil {
		return nil
	}
	cached, err := cache.Get(ctx, key)
	if err != nil || len(cached) == 0 {
		return nil
	}
	var addr providers.GeocodedAddress
	if err := json.Unmarshal(cached, &addr); err != nil || strings.TrimSpace(addr.DisplayName) == "" {
		return nil
	}
	return &addr
}

func writeCachedAddress(ctx context.Context, cache providers.CacheProvider, key string, addr *providers.GeocodedAddress) {
	if cache == nil {
		return
	}
	if payload, err := json.Marshal(addr); err == nil {
		_ = cache.Set(ctx, key, payload, defaultReverseCacheTTL)
	}
}

// statusError maps an HTTP status to nil, a retryable error (429 and 5xx) or
// a permanent one.
func statusError(status int) error {
	if status >= 200 && status < 300 {
		return nil
	}
	err := fmt.Errorf("geocode request returned status %d", status)
	if status == http.StatusTooManyRequests || status >= 500 {
		return err
	}
	return retry.Permanent(err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
