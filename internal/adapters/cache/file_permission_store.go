package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// FilePermissionStore keeps the location permission flag in a small JSON
// file, for single-user deployments without Redis.
type FilePermissionStore struct {
	path string
	mu   sync.Mutex
}

type permissionFile struct {
	LocationPermission entities.PermissionState `json:"locationPermission"`
}

func NewFilePermissionStore(path string) *FilePermissionStore {
	return &FilePermissionStore{path: path}
}

// Get implements providers.PermissionStore. A missing file reads as unset.
func (s *FilePermissionStore) Get(ctx context.Context) (entities.PermissionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entities.PermissionUnset, nil
	}
	if err != nil {
		return entities.PermissionUnset, fmt.Errorf("failed to read permission file: %w", err)
	}

	var f permissionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return entities.PermissionUnset, fmt.Errorf("failed to decode permission file: %w", err)
	}
	if f.LocationPermission == "" {
		return entities.PermissionUnset, nil
	}
	if !f.LocationPermission.Valid() {
		return entities.PermissionUnset, fmt.Errorf("unknown permission value %q", f.LocationPermission)
	}
	return f.LocationPermission, nil
}

// Set implements providers.PermissionStore. The file is replaced atomically.
func (s *FilePermissionStore) Set(ctx context.Context, state entities.PermissionState) error {
	if !state.Valid() {
		return fmt.Errorf("unknown permission value %q", state)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if state == entities.PermissionUnset {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove permission file: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(permissionFile{LocationPermission: state})
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create permission directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".permission-*")
	if err != nil {
		return fmt.Errorf("failed to write permission file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write permission file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write permission file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace permission file: %w", err)
	}
	return nil
}
