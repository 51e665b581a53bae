package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/adapters/cache"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/database"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/events"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/providers/geolocation"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/providers/position"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/search"
	"github.com/zatekoja/symptomchecker/backend/internal/api/handlers"
	"github.com/zatekoja/symptomchecker/backend/internal/api/middleware"
	"github.com/zatekoja/symptomchecker/backend/internal/api/routes"
	"github.com/zatekoja/symptomchecker/backend/internal/application/services"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/repositories"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
	"github.com/zatekoja/symptomchecker/backend/pkg/secrets"
)

func main() {
	vaultResult, err := secrets.ApplyFromEnv(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load secrets from vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	if vaultResult.Enabled {
		log.Info().Str("path", vaultResult.Path).Int("loaded", vaultResult.Loaded).Int("skipped", vaultResult.Skipped).Msg("secrets loaded from vault")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if err := database.MigrateUp(pgClient); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate catalog schema")
	}

	// Redis is optional; an in-process cache keeps the server usable
	// without it.
	var sharedCache providers.CacheProvider
	var eventBus providers.EventBus
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
		} else {
			defer redisClient.Close()
			sharedCache = cache.NewRedisAdapter(redisClient, "symptomchecker:")
			bus := events.NewRedisEventBus(redisClient)
			defer bus.Close()
			eventBus = bus
		}
	}
	if sharedCache == nil {
		sharedCache = cache.NewMemoryAdapter()
	}

	var searchRepo repositories.CatalogSearchRepository
	if cfg.Typesense.URL != "" {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("typesense unavailable, searching in memory")
		} else if err := tsClient.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to init typesense schema, searching in memory")
		} else {
			searchRepo = search.NewTypesenseAdapter(tsClient)
		}
	}

	symptomRepo := database.NewCachedSymptomAdapter(database.NewSymptomAdapter(pgClient), sharedCache, metrics)
	diseaseRepo := database.NewCachedDiseaseAdapter(database.NewDiseaseAdapter(pgClient), sharedCache, metrics)

	lookup, err := geolocation.NewFromConfig(cfg.Geolocation, sharedCache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure reverse geocoding")
	}
	source, err := position.NewFromConfig(cfg.Location)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure position source")
	}
	permissions, err := cache.NewPermissionStoreFromConfig(cfg.Location, sharedCache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure permission store")
	}

	catalogService := services.NewCatalogService(symptomRepo, diseaseRepo, searchRepo)
	if err := catalogService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	predictionService := services.NewPredictionService()
	geocoder := services.NewReverseGeocodingService(lookup, metrics)
	locationService := services.NewLocationService(source, permissions, geocoder, metrics)
	sessionService := services.NewSessionService(predictionService, catalogService, metrics)

	responseCache := middleware.NewCacheMiddleware(sharedCache, metrics, nil)

	// Reseeding publishes a catalog update; reload without a restart.
	if eventBus != nil {
		reloader := services.NewCatalogReloadService(catalogService, eventBus,
			func(ctx context.Context, ids []int) error { return symptomRepo.Invalidate(ctx) },
			func(ctx context.Context, ids []int) error { return diseaseRepo.Invalidate(ctx, ids...) },
			responseCache.Invalidate,
		)
		if err := reloader.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("catalog reload disabled")
		} else {
			defer reloader.Stop()
		}
	}

	log.Info().
		Str("geocoder", lookup.Name()).
		Str("position_source", cfg.Location.Source).
		Str("permission_store", cfg.Location.PermissionStore).
		Bool("typesense", searchRepo != nil).
		Msg("services initialized")

	router := routes.NewRouter(
		handlers.NewCatalogHandler(catalogService),
		handlers.NewPredictionHandler(predictionService, catalogService, metrics),
		handlers.NewLocationHandler(locationService, geocoder),
		handlers.NewSessionHandler(sessionService),
		responseCache,
		cfg.Server.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
