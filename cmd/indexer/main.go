package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/adapters/database"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/search"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
	"github.com/zatekoja/symptomchecker/backend/pkg/secrets"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", false, "delete existing Typesense collections before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	if _, err := secrets.ApplyFromEnv(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to load secrets from vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("catalog-indexer", cfg.Env)

	if cfg.Typesense.URL == "" {
		log.Fatal().Msg("TYPESENSE_URL is not set")
	}

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reset = reset || os.Getenv("RESET_TYPESENSE") == "true"
	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			return
		}

		reset = false
		log.Info().Dur("next_run_in", interval).Msg("reindex complete")

		select {
		case <-ctx.Done():
			log.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

// indexOnce copies the stored catalog into Typesense
func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	if reset {
		log.Info().Msg("reset requested, deleting catalog collections")
		tsClient.DropSchema(ctx)
	}
	if err := tsClient.InitSchema(ctx); err != nil {
		return err
	}

	symptoms, err := database.NewSymptomAdapter(pgClient).List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list symptoms: %w", err)
	}
	diseases, err := database.NewDiseaseAdapter(pgClient).List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list diseases: %w", err)
	}

	adapter := search.NewTypesenseAdapter(tsClient)
	if err := adapter.IndexSymptoms(ctx, symptoms); err != nil {
		return err
	}
	if err := adapter.IndexDiseases(ctx, diseases); err != nil {
		return err
	}

	log.Info().Int("symptoms", len(symptoms)).Int("diseases", len(diseases)).Msg("catalog indexed")
	return nil
}
