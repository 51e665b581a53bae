package handlers

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
)

// Ranker scores diseases against a symptom selection
type Ranker interface {
	Rank(diseases []*entities.Disease, selected []int, location *entities.Coordinate) []entities.PredictionResult
}

// PredictionHandler ranks diseases for a one-off symptom selection
type PredictionHandler struct {
	ranker  Ranker
	catalog CatalogReader
	metrics *observability.Metrics
}

func NewPredictionHandler(ranker Ranker, catalog CatalogReader, metrics *observability.Metrics) *PredictionHandler {
	return &PredictionHandler{
		ranker:  ranker,
		catalog: catalog,
		metrics: metrics,
	}
}

type predictionRequest struct {
	SymptomIDs []int          `json:"symptom_ids" validate:"max=500,dive,gt=0"`
	Location   *locationInput `json:"location,omitempty"`
}

type predictionView struct {
	entities.PredictionResult
	MatchPercent int `json:"match_percent"`
}

type predictionResponse struct {
	SelectedSymptoms []string         `json:"selected_symptoms"`
	Predictions      []predictionView `json:"predictions"`
	Count            int              `json:"count"`
}

func newPredictionViews(results []entities.PredictionResult) []predictionView {
	views := make([]predictionView, 0, len(results))
	for _, r := range results {
		views = append(views, predictionView{PredictionResult: r, MatchPercent: r.MatchPercent()})
	}
	return views
}

// Predict handles POST /api/predictions
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx, span := observability.StartSpan(r.Context(), "PredictionHandler.Predict")
	defer span.End()

	var req predictionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	start := time.Now()
	results := h.ranker.Rank(h.catalog.Diseases(), req.SymptomIDs, req.Location.coordinate())
	span.SetAttributes(
		attribute.Int("prediction.selected", len(req.SymptomIDs)),
		attribute.Int("prediction.results", len(results)),
	)
	observability.RecordPrediction(ctx, h.metrics, len(results), time.Since(start))

	names := h.catalog.SymptomNames(req.SymptomIDs)
	if names == nil {
		names = []string{}
	}

	respondWithJSON(w, http.StatusOK, predictionResponse{
		SelectedSymptoms: names,
		Predictions:      newPredictionViews(results),
		Count:            len(results),
	})
}
