package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
)

// ReverseGeocodingService turns coordinates into display text. It never
// fails: when the lookup service cannot answer, the coordinates themselves
// are formatted and returned.
type ReverseGeocodingService struct {
	lookup  providers.AddressLookup
	metrics *observability.Metrics
}

func NewReverseGeocodingService(lookup providers.AddressLookup, metrics *observability.Metrics) *ReverseGeocodingService {
	return &ReverseGeocodingService{
		lookup:  lookup,
		metrics: metrics,
	}
}

// Describe returns the lookup service's display name for coord, or
// FallbackAddress(coord) on any failure.
func (s *ReverseGeocodingService) Describe(ctx context.Context, coord entities.Coordinate) string {
	ctx, span := observability.StartSpan(ctx, "ReverseGeocodingService.Describe")
	defer span.End()

	provider := "none"
	if s.lookup != nil {
		provider = s.lookup.Name()
	}
	span.SetAttributes(attribute.String("geocode.provider", provider))

	name, err := s.displayName(ctx, coord)
	if err == nil {
		return name
	}

	observability.RecordError(span, err)
	observability.RecordGeocodeFallback(ctx, s.metrics, provider)
	observability.LoggerFromContext(ctx).Warn().
		Err(err).
		Str("provider", provider).
		Float64("lat", coord.Latitude).
		Float64("lon", coord.Longitude).
		Msg("reverse geocoding failed, using coordinates")

	return FallbackAddress(coord)
}

// Resolve returns a copy of coord with Address set by Describe
func (s *ReverseGeocodingService) Resolve(ctx context.Context, coord entities.Coordinate) entities.Coordinate {
	coord.Address = s.Describe(ctx, coord)
	return coord
}

func (s *ReverseGeocodingService) displayName(ctx context.Context, coord entities.Coordinate) (string, error) {
	if s.lookup == nil {
		return "", fmt.Errorf("no address lookup configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	address, err := s.lookup.ReverseGeocode(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		return "", err
	}
	if address == nil || strings.TrimSpace(address.DisplayName) == "" {
		return "", fmt.Errorf("response has no display name")
	}
	return address.DisplayName, nil
}

// FallbackAddress formats coord as "lat, lon" with four decimals each
func FallbackAddress(coord entities.Coordinate) string {
	return fmt.Sprintf("%.4f, %.4f", coord.Latitude, coord.Longitude)
}
