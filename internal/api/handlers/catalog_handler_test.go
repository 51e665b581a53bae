package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/symptomchecker/backend/internal/api/handlers"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

type stubCatalog struct {
	symptoms []*entities.Symptom
	diseases []*entities.Disease
	lastTerm string
	getErr   error
}

func (s *stubCatalog) SearchSymptoms(ctx context.Context, term string) []*entities.Symptom {
	s.lastTerm = term
	var out []*entities.Symptom
	for _, sym := range s.symptoms {
		if term == "" || strings.Contains(strings.ToLower(sym.Name), strings.ToLower(term)) {
			out = append(out, sym)
		}
	}
	return out
}

func (s *stubCatalog) SearchDiseases(ctx context.Context, term string) []*entities.Disease {
	s.lastTerm = term
	var out []*entities.Disease
	for _, d := range s.diseases {
		if term == "" || strings.Contains(strings.ToLower(d.Name), strings.ToLower(term)) {
			out = append(out, d)
		}
	}
	return out
}

func (s *stubCatalog) GetDisease(ctx context.Context, id int) (*entities.Disease, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, d := range s.diseases {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, apperrors.NewNotFoundError("disease not found")
}

func (s *stubCatalog) SymptomNames(ids []int) []string {
	var names []string
	for _, id := range ids {
		for _, sym := range s.symptoms {
			if sym.ID == id {
				names = append(names, sym.Name)
			}
		}
	}
	return names
}

func (s *stubCatalog) Diseases() []*entities.Disease {
	return s.diseases
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		symptoms: []*entities.Symptom{
			{ID: 1, Name: "Fever"},
			{ID: 2, Name: "Cough"},
			{ID: 3, Name: "Headache"},
		},
		diseases: []*entities.Disease{
			{ID: 1, Name: "Flu", Symptoms: []int{1, 2, 3}},
			{ID: 2, Name: "Cold", Symptoms: []int{1, 2}},
		},
	}
}

func TestCatalogHandler_ListSymptoms(t *testing.T) {
	catalog := newStubCatalog()
	handler := handlers.NewCatalogHandler(catalog)

	req := httptest.NewRequest("GET", "/api/symptoms?q=fev", nil)
	w := httptest.NewRecorder()

	handler.ListSymptoms(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fev", catalog.lastTerm)

	var response struct {
		Symptoms []entities.Symptom `json:"symptoms"`
		Count    int                `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "Fever", response.Symptoms[0].Name)
}

func TestCatalogHandler_ListSymptoms_EmptyResultIsArray(t *testing.T) {
	handler := handlers.NewCatalogHandler(newStubCatalog())

	req := httptest.NewRequest("GET", "/api/symptoms?q=zzz", nil)
	w := httptest.NewRecorder()

	handler.ListSymptoms(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symptoms":[]`)
}

func TestCatalogHandler_ListDiseases(t *testing.T) {
	handler := handlers.NewCatalogHandler(newStubCatalog())

	req := httptest.NewRequest("GET", "/api/diseases", nil)
	w := httptest.NewRecorder()

	handler.ListDiseases(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Diseases []entities.Disease `json:"diseases"`
		Count    int                `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
}

func TestCatalogHandler_GetDisease(t *testing.T) {
	handler := handlers.NewCatalogHandler(newStubCatalog())

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", "2", http.StatusOK},
		{"missing", "9", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
		{"zero", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/diseases/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.GetDisease(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCatalogHandler_GetDisease_InternalErrorHidesDetails(t *testing.T) {
	catalog := newStubCatalog()
	catalog.getErr = apperrors.NewInternalError("query failed", assert.AnError)
	handler := handlers.NewCatalogHandler(catalog)

	req := httptest.NewRequest("GET", "/api/diseases/1", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.GetDisease(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "query failed")
}
