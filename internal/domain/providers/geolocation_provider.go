package providers

import (
	"context"
	"fmt"
	"time"
)

// AddressLookup resolves coordinates to a place description through an
// external geocoding service.
type AddressLookup interface {
	// Name identifies the backing service in logs
	Name() string

	// ReverseGeocode converts coordinates to an address
	ReverseGeocode(ctx context.Context, lat, lon float64) (*GeocodedAddress, error)
}

// GeocodedAddress represents a reverse geocoded address
type GeocodedAddress struct {
	DisplayName string  `json:"display_name"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// PositionSource is the platform service that reports the caller's current
// position.
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (*Position, error)
}

// PositionOptions mirrors the options a platform position query accepts
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaximumAge is how old a cached fix may be and still be returned
	MaximumAge time.Duration
}

// Position is a fix reported by a PositionSource
type Position struct {
	Latitude  float64
	Longitude float64
	// AccuracyMeters is the radius of uncertainty, 0 when unknown
	AccuracyMeters float64
	Timestamp      time.Time
}

// PositionErrorCode classifies PositionSource failures
type PositionErrorCode int

const (
	PositionErrorPermissionDenied PositionErrorCode = iota + 1
	PositionErrorUnavailable
	PositionErrorTimeout
	PositionErrorUnsupported
)

func (c PositionErrorCode) String() string {
	switch c {
	case PositionErrorPermissionDenied:
		return "PERMISSION_DENIED"
	case PositionErrorUnavailable:
		return "POSITION_UNAVAILABLE"
	case PositionErrorTimeout:
		return "TIMEOUT"
	case PositionErrorUnsupported:
		return "UNSUPPORTED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(c))
	}
}

// PositionError is returned by a PositionSource when it cannot produce a fix
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
