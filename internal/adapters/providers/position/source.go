package position

import (
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
)

// NewFromConfig builds the PositionSource selected by cfg.Source
func NewFromConfig(cfg config.LocationConfig) (providers.PositionSource, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "", "ip":
		client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
		return NewIPSource(cfg.IPLookupURL, client), nil
	case "static":
		return NewStaticSource(cfg.FallbackLatitude, cfg.FallbackLongitude), nil
	case "none":
		return DeniedSource{}, nil
	default:
		return nil, fmt.Errorf("unknown location source %q", cfg.Source)
	}
}
