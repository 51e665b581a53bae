package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// NewMigrator returns a golang-migrate instance over the embedded catalog
// migrations.
func NewMigrator(client *postgres.Client) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(client.DB(), &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. An up-to-date database is not
// an error.
func MigrateUp(client *postgres.Client) error {
	m, err := NewMigrator(client)
	if err != nil {
		return apperrors.NewInternalError("failed to prepare catalog migrations", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.NewInternalError("failed to apply catalog migrations", err)
	}
	return nil
}
