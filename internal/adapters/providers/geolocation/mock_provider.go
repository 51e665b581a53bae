package geolocation

import (
	"context"
	"fmt"
	"math"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/geo"
)

// mockMatchRadiusKm is how close a coordinate must be to a known city to be
// named after it
const mockMatchRadiusKm = 50

type mockCity struct {
	name    string
	state   string
	country string
	point   geo.Point
}

var mockCities = []mockCity{
	{name: "Lagos", state: "Lagos", country: "Nigeria", point: geo.Point{Latitude: 6.5244, Longitude: 3.3792}},
	{name: "Abuja", state: "Federal Capital Territory", country: "Nigeria", point: geo.Point{Latitude: 9.0765, Longitude: 7.3986}},
	{name: "New York", state: "NY", country: "USA", point: geo.Point{Latitude: 40.7128, Longitude: -74.0060}},
	{name: "Los Angeles", state: "CA", country: "USA", point: geo.Point{Latitude: 34.0522, Longitude: -118.2437}},
	{name: "Chicago", state: "IL", country: "USA", point: geo.Point{Latitude: 41.8781, Longitude: -87.6298}},
	{name: "London", state: "England", country: "United Kingdom", point: geo.Point{Latitude: 51.5074, Longitude: -0.1278}},
}

// MockGeolocationProvider answers reverse geocoding offline from a small
// table of cities. Used for local development and tests.
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() *MockGeolocationProvider {
	return &MockGeolocationProvider{}
}

func (m *MockGeolocationProvider) Name() string {
	return "mock"
}

// ReverseGeocode names the nearest known city within mockMatchRadiusKm
func (m *MockGeolocationProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedAddress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := geo.Point{Latitude: lat, Longitude: lon}
	if !target.Valid() {
		return nil, fmt.Errorf("coordinates out of range: %f, %f", lat, lon)
	}

	best := -1
	bestDistance := math.Inf(1)
	for i, city := range mockCities {
		if d := geo.DistanceKm(target, city.point); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 || bestDistance > mockMatchRadiusKm {
		return nil, fmt.Errorf("no results for coordinates")
	}

	city := mockCities[best]
	return &providers.GeocodedAddress{
		DisplayName: fmt.Sprintf("%s, %s, %s", city.name, city.state, city.country),
		City:        city.name,
		State:       city.state,
		Country:     city.country,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
