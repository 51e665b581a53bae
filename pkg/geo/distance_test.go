package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	d := DistanceKm(Point{Latitude: 0, Longitude: 0}, Point{Latitude: 0, Longitude: 1})
	assert.Equal(t, 111.2, d)
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 6.5244, Longitude: 3.3792},
		{Latitude: -90, Longitude: 180},
		{Latitude: 89.9999, Longitude: -179.9999},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{{Latitude: 6.5244, Longitude: 3.3792}, {Latitude: 9.0765, Longitude: 7.3986}},
		{{Latitude: 40.7128, Longitude: -74.0060}, {Latitude: 34.0522, Longitude: -118.2437}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
	}

	for _, pair := range pairs {
		assert.Equal(t, DistanceKm(pair[0], pair[1]), DistanceKm(pair[1], pair[0]))
	}
}

func TestDistanceKm_KnownCities(t *testing.T) {
	lagos := Point{Latitude: 6.5244, Longitude: 3.3792}
	abuja := Point{Latitude: 9.0765, Longitude: 7.3986}

	assert.Equal(t, 525.9, DistanceKm(lagos, abuja))
}

func TestRoundTo_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.3, RoundTo(0.25, 1))
	assert.Equal(t, -0.3, RoundTo(-0.25, 1))
	assert.Equal(t, 67.0, RoundTo(66.6666, 0))
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, Point{Latitude: 90, Longitude: -180}.Valid())
	assert.False(t, Point{Latitude: 90.1, Longitude: 0}.Valid())
	assert.False(t, Point{Latitude: 0, Longitude: 180.5}.Valid())
}
