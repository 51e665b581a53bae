package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	tsclient "github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/typesense"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *TypesenseAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := typesense.NewClient(
		typesense.WithServer(server.URL),
		typesense.WithAPIKey("test-key"),
	)
	return NewTypesenseAdapter(tsclient.NewFromTypesense(client))
}

func TestTypesenseAdapter_SearchSymptoms(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/symptoms/documents/search", r.URL.Path)
		assert.Equal(t, "cough", r.URL.Query().Get("q"))
		assert.Equal(t, "name", r.URL.Query().Get("query_by"))
		assert.Equal(t, "test-key", r.Header.Get("X-TYPESENSE-API-KEY"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"found": 2,
			"out_of": 10,
			"page": 1,
			"search_time_ms": 1,
			"hits": [
				{"document": {"id": "3", "symptom_id": 3, "name": "Dry Cough"}},
				{"document": {"id": "7", "symptom_id": 7, "name": "Wet Cough"}}
			]
		}`))
	})

	ids, err := adapter.SearchSymptoms(context.Background(), "cough", 10)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, ids)
}

func TestTypesenseAdapter_SearchDiseases_Error(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not found."}`))
	})

	_, err := adapter.SearchDiseases(context.Background(), "malaria", 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search diseases")
}

func TestTypesenseAdapter_IndexSymptoms(t *testing.T) {
	var mu sync.Mutex
	var indexed []map[string]interface{}

	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/collections/symptoms/documents", r.URL.Path)
		assert.Equal(t, "upsert", r.URL.Query().Get("action"))

		body, _ := io.ReadAll(r.Body)
		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &doc))

		mu.Lock()
		indexed = append(indexed, doc)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	})

	err := adapter.IndexSymptoms(context.Background(), []*entities.Symptom{
		{ID: 1, Name: "Fever"},
		nil,
		{ID: 2, Name: "Headache"},
	})

	require.NoError(t, err)
	require.Len(t, indexed, 2)
	assert.Equal(t, "1", indexed[0]["id"])
	assert.Equal(t, float64(1), indexed[0]["symptom_id"])
	assert.Equal(t, "Headache", indexed[1]["name"])
}

func TestDiseaseDocument(t *testing.T) {
	doc := diseaseDocument(&entities.Disease{ID: 4, Name: "Malaria", Description: "Mosquito-borne", Severity: "high"})

	assert.Equal(t, "4", doc["id"])
	assert.Equal(t, 4, doc["disease_id"])
	assert.Equal(t, "high", doc["severity"])

	doc = diseaseDocument(&entities.Disease{ID: 5, Name: "Cold"})
	_, hasSeverity := doc["severity"]
	assert.False(t, hasSeverity)
}

func TestDocumentID(t *testing.T) {
	id, ok := documentID(float64(12))
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	id, ok = documentID("42")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = documentID(nil)
	assert.False(t, ok)

	_, ok = documentID("x")
	assert.False(t, ok)
}
