package repositories

import (
	"context"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// SymptomRepository reads the symptom reference catalog
type SymptomRepository interface {
	// List returns all symptoms ordered by id
	List(ctx context.Context) ([]*entities.Symptom, error)
}

// DiseaseRepository reads the disease reference catalog
type DiseaseRepository interface {
	// List returns all diseases ordered by id
	List(ctx context.Context) ([]*entities.Disease, error)
	GetByID(ctx context.Context, id int) (*entities.Disease, error)
}

// CatalogSearchRepository is a full-text index over the catalog. Search
// methods return matching ids in relevance order.
type CatalogSearchRepository interface {
	IndexSymptoms(ctx context.Context, symptoms []*entities.Symptom) error
	IndexDiseases(ctx context.Context, diseases []*entities.Disease) error
	SearchSymptoms(ctx context.Context, query string, limit int) ([]int, error)
	SearchDiseases(ctx context.Context, query string, limit int) ([]int, error)
}
