package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/symptomchecker/backend/pkg/config"
	"github.com/zatekoja/symptomchecker/backend/pkg/retry"
)

const (
	SymptomsCollection = "symptoms"
	DiseasesCollection = "diseases"
)

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client with exponential backoff retry
func NewClient(cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	err := retry.DoWithLog(
		context.Background(),
		retry.DefaultConfig(),
		"Typesense",
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := client.Health(ctx, 2*time.Second)
			return err
		},
		func(attempt int, err error, nextDelay time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", nextDelay).Msg("Typesense connection attempt failed")
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Info().Str("url", cfg.URL).Msg("connected to Typesense")
	return &Client{client: client}, nil
}

// NewFromTypesense wraps an already configured typesense client
func NewFromTypesense(client *typesense.Client) *Client {
	return &Client{client: client}
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}

// InitSchema ensures the symptoms and diseases collections exist
func (c *Client) InitSchema(ctx context.Context) error {
	collections, err := c.client.Collections().Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve collections: %w", err)
	}

	existing := make(map[string]bool, len(collections))
	for _, col := range collections {
		existing[col.Name] = true
	}

	for _, schema := range []*api.CollectionSchema{symptomsSchema(), diseasesSchema()} {
		if existing[schema.Name] {
			log.Debug().Str("collection", schema.Name).Msg("Typesense collection already exists")
			continue
		}
		if _, err := c.client.Collections().Create(ctx, schema); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", schema.Name, err)
		}
		log.Info().Str("collection", schema.Name).Msg("created Typesense collection")
	}
	return nil
}

// DropSchema deletes both catalog collections. A failed delete (usually a
// collection that does not exist yet) is logged and skipped.
func (c *Client) DropSchema(ctx context.Context) {
	for _, name := range []string{SymptomsCollection, DiseasesCollection} {
		if _, err := c.client.Collection(name).Delete(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("failed to delete Typesense collection")
			continue
		}
		log.Info().Str("collection", name).Msg("deleted Typesense collection")
	}
}

func symptomsSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: SymptomsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "symptom_id", Type: "int32"},
			{Name: "name", Type: "string"},
		},
		DefaultSortingField: pointer.String("symptom_id"),
	}
}

func diseasesSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: DiseasesCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "disease_id", Type: "int32"},
			{Name: "name", Type: "string"},
			{Name: "description", Type: "string", Optional: pointer.True()},
			{Name: "severity", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
		},
		DefaultSortingField: pointer.String("disease_id"),
	}
}
