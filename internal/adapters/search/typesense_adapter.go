package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/repositories"
	tsclient "github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter implements catalog text search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements CatalogSearchRepository
var _ repositories.CatalogSearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// IndexSymptoms upserts every symptom into the symptoms collection
func (a *TypesenseAdapter) IndexSymptoms(ctx context.Context, symptoms []*entities.Symptom) error {
	for _, s := range symptoms {
		if s == nil {
			continue
		}
		if _, err := a.client.Client().Collection(tsclient.SymptomsCollection).Documents().Upsert(ctx, symptomDocument(s)); err != nil {
			return fmt.Errorf("failed to index symptom %d: %w", s.ID, err)
		}
	}
	return nil
}

// IndexDiseases upserts every disease into the diseases collection
func (a *TypesenseAdapter) IndexDiseases(ctx context.Context, diseases []*entities.Disease) error {
	for _, d := range diseases {
		if d == nil {
			continue
		}
		if _, err := a.client.Client().Collection(tsclient.DiseasesCollection).Documents().Upsert(ctx, diseaseDocument(d)); err != nil {
			return fmt.Errorf("failed to index disease %d: %w", d.ID, err)
		}
	}
	return nil
}

// SearchSymptoms returns the ids of symptoms matching query, best first
func (a *TypesenseAdapter) SearchSymptoms(ctx context.Context, query string, limit int) ([]int, error) {
	return a.search(ctx, tsclient.SymptomsCollection, "name", "symptom_id", query, limit)
}

// SearchDiseases returns the ids of diseases matching query, best first
func (a *TypesenseAdapter) SearchDiseases(ctx context.Context, query string, limit int) ([]int, error) {
	return a.search(ctx, tsclient.DiseasesCollection, "name,description", "disease_id", query, limit)
}

func (a *TypesenseAdapter) search(ctx context.Context, collection, queryBy, idField, query string, limit int) ([]int, error) {
	if limit <= 0 {
		limit = 20
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String(queryBy),
		Page:    pointer.Int(1),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", collection, err)
	}

	ids := []int{}
	if result.Hits == nil {
		return ids, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		if id, ok := documentID((*hit.Document)[idField]); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func symptomDocument(s *entities.Symptom) map[string]interface{} {
	return map[string]interface{}{
		"id":         strconv.Itoa(s.ID),
		"symptom_id": s.ID,
		"name":       s.Name,
	}
}

func diseaseDocument(d *entities.Disease) map[string]interface{} {
	doc := map[string]interface{}{
		"id":          strconv.Itoa(d.ID),
		"disease_id":  d.ID,
		"name":        d.Name,
		"description": d.Description,
	}
	if d.Severity != "" {
		doc["severity"] = d.Severity
	}
	return doc
}

// documentID accepts the number types a decoded JSON document can carry
func documentID(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		id, err := strconv.Atoi(n)
		return id, err == nil
	}
	return 0, false
}
