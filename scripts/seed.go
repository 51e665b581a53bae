package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/adapters/cache"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/database"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/events"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/search"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/seed"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
	"github.com/zatekoja/symptomchecker/backend/pkg/secrets"
)

func main() {
	file := flag.String("file", "", "catalog YAML file (defaults to the bundled catalog)")
	flag.Parse()

	if _, err := secrets.ApplyFromEnv(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to load secrets from vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("catalog-seed", cfg.Env)

	catalog, err := loadCatalog(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	if err := database.MigrateUp(pgClient); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate catalog schema")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating catalog tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE diseases, symptoms
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	importer := seed.NewImporter(database.NewSymptomAdapter(pgClient), database.NewDiseaseAdapter(pgClient))

	if cfg.Typesense.URL != "" {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("typesense unavailable, skipping search index")
		} else if err := tsClient.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to init typesense schema, skipping search index")
		} else {
			importer.WithIndexer(search.NewTypesenseAdapter(tsClient))
		}
	}

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, cached catalog reads expire on their own")
		} else {
			defer redisClient.Close()
			shared := cache.NewRedisAdapter(redisClient, "symptomchecker:")
			symptoms := database.NewCachedSymptomAdapter(nil, shared, nil)
			diseases := database.NewCachedDiseaseAdapter(nil, shared, nil)
			ids := catalog.DiseaseIDs()
			bus := events.NewRedisEventBus(redisClient)
			defer bus.Close()
			importer.
				WithInvalidator(symptoms.Invalidate).
				WithInvalidator(func(ctx context.Context) error { return diseases.Invalidate(ctx, ids...) }).
				WithPublisher(bus)
		}
	}

	if err := importer.Import(ctx, catalog); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	log.Info().Msg("catalog seeded")
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.DefaultCatalog()
	}
	return seed.LoadCatalogFile(path)
}
