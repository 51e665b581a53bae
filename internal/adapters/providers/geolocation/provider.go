package geolocation

import (
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
)

// NewFromConfig builds the AddressLookup selected by cfg.Provider
func NewFromConfig(cfg config.GeolocationConfig, cache providers.CacheProvider) (providers.AddressLookup, error) {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	if cfg.Timeout <= 0 {
		httpClient.Timeout = defaultHTTPTimeout
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "nominatim":
		return NewNominatimProviderWithOptions(cache, cfg.NominatimURL, cfg.UserAgent, httpClient), nil
	case "google":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEOLOCATION_API_KEY is required for the google provider")
		}
		return NewGoogleGeolocationProviderWithOptions(cfg.APIKey, cache, "", httpClient), nil
	case "mock":
		return NewMockGeolocationProvider(), nil
	default:
		return nil, fmt.Errorf("unknown geolocation provider %q", cfg.Provider)
	}
}
