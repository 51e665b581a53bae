package providers

import (
	"context"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// PermissionStore persists the location permission flag across sessions.
// An absent value reads as entities.PermissionUnset.
type PermissionStore interface {
	Get(ctx context.Context) (entities.PermissionState, error)
	Set(ctx context.Context, state entities.PermissionState) error
}
