package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
)

// SymptomWriter persists catalog symptoms
type SymptomWriter interface {
	Upsert(ctx context.Context, symptoms []*entities.Symptom) error
}

// DiseaseWriter persists catalog diseases
type DiseaseWriter interface {
	Upsert(ctx context.Context, diseases []*entities.Disease) error
}

// SearchIndexer pushes catalog records to the search engine
type SearchIndexer interface {
	IndexSymptoms(ctx context.Context, symptoms []*entities.Symptom) error
	IndexDiseases(ctx context.Context, diseases []*entities.Disease) error
}

// Invalidator drops cached catalog reads after a write
type Invalidator func(ctx context.Context) error

// Importer writes a Catalog to the database, then to the search index,
// clears any cached copies and announces the update to running servers.
// Every step after the database write is optional.
type Importer struct {
	symptoms    SymptomWriter
	diseases    DiseaseWriter
	indexer     SearchIndexer
	invalidates []Invalidator
	publisher   providers.EventPublisher
}

func NewImporter(symptoms SymptomWriter, diseases DiseaseWriter) *Importer {
	return &Importer{symptoms: symptoms, diseases: diseases}
}

// WithIndexer enables search indexing
func (i *Importer) WithIndexer(indexer SearchIndexer) *Importer {
	i.indexer = indexer
	return i
}

// WithInvalidator adds a cache invalidation step
func (i *Importer) WithInvalidator(fn Invalidator) *Importer {
	if fn != nil {
		i.invalidates = append(i.invalidates, fn)
	}
	return i
}

// WithPublisher announces each import on the catalog update channel
func (i *Importer) WithPublisher(publisher providers.EventPublisher) *Importer {
	i.publisher = publisher
	return i
}

// Import writes catalog. Symptoms go first so disease rows never reference
// a missing symptom. Search and cache failures are logged and do not fail
// the import since the database is the source of truth.
func (i *Importer) Import(ctx context.Context, catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog is nil")
	}

	if err := i.symptoms.Upsert(ctx, catalog.Symptoms); err != nil {
		return fmt.Errorf("failed to upsert symptoms: %w", err)
	}
	if err := i.diseases.Upsert(ctx, catalog.Diseases); err != nil {
		return fmt.Errorf("failed to upsert diseases: %w", err)
	}
	log.Info().
		Int("symptoms", len(catalog.Symptoms)).
		Int("diseases", len(catalog.Diseases)).
		Msg("catalog written to database")

	if i.indexer != nil {
		if err := i.indexer.IndexSymptoms(ctx, catalog.Symptoms); err != nil {
			log.Warn().Err(err).Msg("failed to index symptoms")
		}
		if err := i.indexer.IndexDiseases(ctx, catalog.Diseases); err != nil {
			log.Warn().Err(err).Msg("failed to index diseases")
		}
	}

	for _, invalidate := range i.invalidates {
		if err := invalidate(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate catalog cache")
		}
	}

	if i.publisher != nil {
		event := entities.NewCatalogUpdatedEvent(len(catalog.Symptoms), catalog.DiseaseIDs())
		if err := i.publisher.Publish(ctx, providers.EventChannelCatalogUpdates, event); err != nil {
			log.Warn().Err(err).Msg("failed to announce catalog update")
		} else {
			log.Info().Str("event_id", event.ID).Msg("catalog update announced")
		}
	}
	return nil
}

// DiseaseIDs lists the ids of every disease in the catalog
func (c *Catalog) DiseaseIDs() []int {
	ids := make([]int, 0, len(c.Diseases))
	for _, d := range c.Diseases {
		ids = append(ids, d.ID)
	}
	return ids
}
