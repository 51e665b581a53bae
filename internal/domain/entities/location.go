package entities

import "github.com/zatekoja/symptomchecker/backend/pkg/geo"

// Coordinate represents a geographical position, optionally with a
// human-readable address.
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address,omitempty" db:"address"`
}

// Point returns the coordinate as a geo.Point
func (c Coordinate) Point() geo.Point {
	return geo.Point{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Valid reports whether latitude and longitude are within range
func (c Coordinate) Valid() bool {
	return c.Point().Valid()
}

// PermissionState is the persisted answer to the location permission prompt
type PermissionState string

const (
	PermissionUnset   PermissionState = "unset"
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
)

// Valid reports whether s is one of the known states
func (s PermissionState) Valid() bool {
	switch s {
	case PermissionUnset, PermissionGranted, PermissionDenied:
		return true
	}
	return false
}
