package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// CatalogReader is the read side of the symptom and disease catalog
type CatalogReader interface {
	SearchSymptoms(ctx context.Context, term string) []*entities.Symptom
	SearchDiseases(ctx context.Context, term string) []*entities.Disease
	GetDisease(ctx context.Context, id int) (*entities.Disease, error)
	SymptomNames(ids []int) []string
	Diseases() []*entities.Disease
}

// CatalogHandler serves the symptom and disease catalog
type CatalogHandler struct {
	catalog CatalogReader
}

func NewCatalogHandler(catalog CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListSymptoms handles GET /api/symptoms?q=
func (h *CatalogHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms := h.catalog.SearchSymptoms(r.Context(), r.URL.Query().Get("q"))
	if symptoms == nil {
		symptoms = []*entities.Symptom{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"symptoms": symptoms,
		"count":    len(symptoms),
	})
}

// ListDiseases handles GET /api/diseases?q=
func (h *CatalogHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	diseases := h.catalog.SearchDiseases(r.Context(), r.URL.Query().Get("q"))
	if diseases == nil {
		diseases = []*entities.Disease{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"diseases": diseases,
		"count":    len(diseases),
	})
}

// GetDisease handles GET /api/diseases/{id}
func (h *CatalogHandler) GetDisease(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		respondWithError(w, http.StatusBadRequest, "invalid disease id")
		return
	}

	disease, err := h.catalog.GetDisease(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, disease)
}
