// Package geo holds coordinate math shared by the ranking and location code.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm
const EarthRadiusKm = 6371.0

// Point is a latitude/longitude pair in degrees
type Point struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the point lies inside the WGS84 degree ranges
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula, rounded to one decimal place.
func DistanceKm(a, b Point) float64 {
	return RoundTo(haversineKm(a, b), 1)
}

func haversineKm(a, b Point) float64 {
	lat1Rad := toRadians(a.Latitude)
	lat2Rad := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// RoundTo rounds v half away from zero to the given number of decimals
func RoundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
