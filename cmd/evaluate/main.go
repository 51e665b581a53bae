package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/adapters/database"
	"github.com/zatekoja/symptomchecker/backend/internal/adapters/seed"
	"github.com/zatekoja/symptomchecker/backend/internal/application/services"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/evaluation"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
)

func main() {
	source := flag.String("source", "bundled", "catalog source: bundled, file or db")
	catalogFile := flag.String("catalog", "", "catalog YAML file when -source=file")
	casesFile := flag.String("cases", "", "golden cases YAML file (defaults to the bundled cases)")
	k := flag.Int("k", evaluation.DefaultK, "ranking depth")
	minRecall := flag.Float64("min-recall", 0, "fail when average recall@k is lower")
	minMRR := flag.Float64("min-mrr", 0, "fail when average MRR@k is lower")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("catalog-evaluate", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	diseases, err := loadDiseases(ctx, cfg, *source, *catalogFile)
	if err != nil {
		log.Fatal().Err(err).Str("source", *source).Msg("failed to load catalog")
	}

	cases, err := loadCases(*casesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load golden cases")
	}

	runner := evaluation.NewRunner(services.NewPredictionService(), diseases, *k)
	summary, err := runner.Run(ctx, cases)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode summary")
	}
	fmt.Println(string(out))

	gate := evaluation.Gate{MinRecallAtK: *minRecall, MinMRRAtK: *minMRR}
	if err := gate.Check(summary); err != nil {
		log.Error().Err(err).Msg("evaluation below threshold")
		os.Exit(1)
	}
}

func loadDiseases(ctx context.Context, cfg *config.Config, source, file string) ([]*entities.Disease, error) {
	switch source {
	case "bundled":
		catalog, err := seed.DefaultCatalog()
		if err != nil {
			return nil, err
		}
		return catalog.Diseases, nil
	case "file":
		catalog, err := seed.LoadCatalogFile(file)
		if err != nil {
			return nil, err
		}
		return catalog.Diseases, nil
	case "db":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			return nil, err
		}
		defer pgClient.Close()
		return database.NewDiseaseAdapter(pgClient).List(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}

func loadCases(path string) ([]evaluation.GoldenCase, error) {
	if path == "" {
		return evaluation.DefaultGoldenCases()
	}
	return evaluation.LoadGoldenCases(path)
}
