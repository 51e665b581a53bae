package position

import (
	"context"
	"time"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
)

// StaticSource always reports the same configured position. It backs
// LOCATION_SOURCE=static for deployments with a fixed site.
type StaticSource struct {
	position providers.Position
}

func NewStaticSource(lat, lon float64) *StaticSource {
	return &StaticSource{position: providers.Position{Latitude: lat, Longitude: lon}}
}

// CurrentPosition implements providers.PositionSource
func (s *StaticSource) CurrentPosition(ctx context.Context, _ providers.PositionOptions) (*providers.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := s.position
	p.Timestamp = time.Now().UTC()
	return &p, nil
}

// DeniedSource rejects every request as if the user refused access. It backs
// LOCATION_SOURCE=none.
type DeniedSource struct{}

// CurrentPosition implements providers.PositionSource
func (DeniedSource) CurrentPosition(context.Context, providers.PositionOptions) (*providers.Position, error) {
	return nil, &providers.PositionError{
		Code:    providers.PositionErrorPermissionDenied,
		Message: "location access is disabled",
	}
}
