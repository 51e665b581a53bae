package geolocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
)

func TestMockGeolocationProvider_NearestCity(t *testing.T) {
	provider := NewMockGeolocationProvider()

	addr, err := provider.ReverseGeocode(context.Background(), 6.45, 3.40)

	require.NoError(t, err)
	assert.Equal(t, "Lagos, Lagos, Nigeria", addr.DisplayName)
	assert.Equal(t, 6.45, addr.Latitude)
}

func TestMockGeolocationProvider_NoNearbyCity(t *testing.T) {
	provider := NewMockGeolocationProvider()

	_, err := provider.ReverseGeocode(context.Background(), 12.345, 98.765)
	assert.Error(t, err)

	_, err = provider.ReverseGeocode(context.Background(), 95, 0)
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	lookup, err := NewFromConfig(config.GeolocationConfig{Provider: "nominatim", Timeout: time.Second}, nil)
	require.NoError(t, err)
	assert.Equal(t, "nominatim", lookup.Name())

	lookup, err = NewFromConfig(config.GeolocationConfig{Provider: "MOCK"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", lookup.Name())

	_, err = NewFromConfig(config.GeolocationConfig{Provider: "google"}, nil)
	assert.Error(t, err)

	lookup, err = NewFromConfig(config.GeolocationConfig{Provider: "google", APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "google", lookup.Name())

	_, err = NewFromConfig(config.GeolocationConfig{Provider: "bing"}, nil)
	assert.Error(t, err)
}
