package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/adapters/database"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
	"github.com/zatekoja/symptomchecker/backend/pkg/secrets"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, version, force")
		steps   = flag.Int("steps", 0, "Number of migration steps for up/down (0 = all)")
		version = flag.Int("version", 0, "Migration version for force")
	)
	flag.Parse()

	if _, err := secrets.ApplyFromEnv(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to load secrets from vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger("symptom-checker-migrate", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	m, err := database.NewMigrator(pgClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create migrator")
	}

	if err := run(m, *command, *steps, *version); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}

	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Msg("no migrations applied")
	case err != nil:
		log.Error().Err(err).Msg("failed to read migration version")
	default:
		log.Info().Uint("version", v).Bool("dirty", dirty).Msg("migration state")
	}
}

func run(m *migrate.Migrate, command string, steps, version int) error {
	var err error
	switch command {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "force":
		err = m.Force(version)
	case "version":
		return nil
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		flag.Usage()
		os.Exit(2)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("no change")
		return nil
	}
	return err
}
