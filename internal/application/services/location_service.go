package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

const (
	positionTimeout    = 10 * time.Second
	positionMaximumAge = 5 * time.Minute

	permissionDeniedMessage = "Location permission previously denied. Please enable location services in your browser settings."
	locationFailedMessage   = "Unable to get your location. Some features may be limited."
)

// DefaultPositionOptions are the options every acquisition uses: high
// accuracy, a 10 second timeout and cached fixes up to 5 minutes old.
var DefaultPositionOptions = providers.PositionOptions{
	HighAccuracy: true,
	Timeout:      positionTimeout,
	MaximumAge:   positionMaximumAge,
}

// LocationService acquires the caller's position and remembers whether
// location access was granted or denied.
type LocationService struct {
	source   providers.PositionSource
	store    providers.PermissionStore
	geocoder *ReverseGeocodingService
	metrics  *observability.Metrics
	options  providers.PositionOptions
}

func NewLocationService(source providers.PositionSource, store providers.PermissionStore, geocoder *ReverseGeocodingService, metrics *observability.Metrics) *LocationService {
	return &LocationService{
		source:   source,
		store:    store,
		geocoder: geocoder,
		metrics:  metrics,
		options:  DefaultPositionOptions,
	}
}

// WithPositionOptions overrides DefaultPositionOptions
func (s *LocationService) WithPositionOptions(opts providers.PositionOptions) *LocationService {
	s.options = opts
	return s
}

// Acquire returns the caller's current coordinates without an address.
//
// A stored denial fails fast with a permission denied error and the
// position source is not queried. Every other failure is reported as
// location unavailable wrapping the source's error. Nothing is persisted if
// ctx ends before the source answers.
func (s *LocationService) Acquire(ctx context.Context) (*entities.Coordinate, error) {
	ctx, span := observability.StartSpan(ctx, "LocationService.Acquire")
	defer span.End()

	logger := observability.LoggerFromContext(ctx)

	state := s.Permission(ctx)
	span.SetAttributes(attribute.String("location.permission", string(state)))
	if state == entities.PermissionDenied {
		observability.RecordLocationFailure(ctx, s.metrics, "permission_cached")
		return nil, apperrors.NewPermissionDeniedError(permissionDeniedMessage)
	}

	if s.source == nil {
		err := &providers.PositionError{Code: providers.PositionErrorUnsupported, Message: "geolocation is not supported"}
		observability.RecordLocationFailure(ctx, s.metrics, "unsupported")
		return nil, apperrors.NewLocationUnavailableError(locationFailedMessage, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.options.Timeout)
	defer cancel()

	position, err := s.source.CurrentPosition(callCtx, s.options)

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Debug().Err(ctxErr).Msg("location request abandoned by caller")
		return nil, apperrors.NewLocationUnavailableError("location request cancelled", ctxErr)
	}

	if err == nil && position == nil {
		err = &providers.PositionError{Code: providers.PositionErrorUnavailable, Message: "no position reported"}
	}
	if err != nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		var posErr *providers.PositionError
		if !errors.As(err, &posErr) {
			err = &providers.PositionError{Code: providers.PositionErrorTimeout, Message: fmt.Sprintf("no position within %s", s.options.Timeout)}
		}
	}

	if err != nil {
		observability.RecordError(span, err)
		reason := "unavailable"
		var posErr *providers.PositionError
		if errors.As(err, &posErr) {
			reason = posErr.Code.String()
			if posErr.Code == providers.PositionErrorPermissionDenied {
				s.setPermission(ctx, entities.PermissionDenied)
			}
		}
		observability.RecordLocationFailure(ctx, s.metrics, reason)
		logger.Warn().Err(err).Str("reason", reason).Msg("location acquisition failed")
		return nil, apperrors.NewLocationUnavailableError(locationFailedMessage, err)
	}

	s.setPermission(ctx, entities.PermissionGranted)

	return &entities.Coordinate{
		Latitude:  position.Latitude,
		Longitude: position.Longitude,
	}, nil
}

// Locate acquires the current coordinates and fills in their address
func (s *LocationService) Locate(ctx context.Context) (*entities.Coordinate, error) {
	coord, err := s.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if s.geocoder != nil {
		resolved := s.geocoder.Resolve(ctx, *coord)
		coord = &resolved
	}
	return coord, nil
}

// Retry clears a stored permission answer and locates again
func (s *LocationService) Retry(ctx context.Context) (*entities.Coordinate, error) {
	if err := s.ResetPermission(ctx); err != nil {
		return nil, err
	}
	return s.Locate(ctx)
}

// ResetPermission clears the stored permission answer so the next Acquire
// queries the position source again.
func (s *LocationService) ResetPermission(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Set(ctx, entities.PermissionUnset); err != nil {
		return apperrors.NewInternalError("failed to reset location permission", err)
	}
	return nil
}

// Permission returns the stored permission answer. Read failures are
// logged and treated as unset.
func (s *LocationService) Permission(ctx context.Context) entities.PermissionState {
	if s.store == nil {
		return entities.PermissionUnset
	}
	state, err := s.store.Get(ctx)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to read location permission")
		return entities.PermissionUnset
	}
	if !state.Valid() {
		return entities.PermissionUnset
	}
	return state
}

func (s *LocationService) setPermission(ctx context.Context, state entities.PermissionState) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, state); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("state", string(state)).
			Msg("failed to store location permission")
	}
}
