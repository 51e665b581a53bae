package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
)

// CatalogSnapshot supplies the diseases a session ranks against
type CatalogSnapshot interface {
	Diseases() []*entities.Disease
}

// PredictionSession holds one user's symptom selection and location and
// recomputes the ranked predictions whenever either changes.
//
// Each recompute takes a sequence number when it starts. A result is only
// committed if no recompute with a higher number has committed before it,
// so a slow pass can never overwrite a fresher one.
type PredictionSession struct {
	engine  *PredictionService
	catalog CatalogSnapshot
	metrics *observability.Metrics

	seq atomic.Uint64

	mu           sync.RWMutex
	selected     []int
	location     *entities.Coordinate
	results      []entities.PredictionResult
	committedSeq uint64
	updatedAt    time.Time
}

// SessionState is a point-in-time view of a session
type SessionState struct {
	SelectedSymptoms []int                       `json:"selected_symptoms"`
	Location         *entities.Coordinate        `json:"location,omitempty"`
	Predictions      []entities.PredictionResult `json:"predictions"`
	Sequence         uint64                      `json:"sequence"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

func NewPredictionSession(engine *PredictionService, catalog CatalogSnapshot, metrics *observability.Metrics) *PredictionSession {
	return &PredictionSession{
		engine:  engine,
		catalog: catalog,
		metrics: metrics,
		results: []entities.PredictionResult{},
	}
}

// SetSymptoms replaces the selected symptom set and recomputes
func (s *PredictionSession) SetSymptoms(ctx context.Context, ids []int) ([]entities.PredictionResult, bool) {
	s.mu.Lock()
	s.selected = append([]int(nil), ids...)
	s.mu.Unlock()

	return s.Recompute(ctx)
}

// ToggleSymptom adds id to the selection, or removes it when present
func (s *PredictionSession) ToggleSymptom(ctx context.Context, id int) ([]entities.PredictionResult, bool) {
	s.mu.Lock()
	next := make([]int, 0, len(s.selected)+1)
	removed := false
	for _, existing := range s.selected {
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, id)
	}
	s.selected = next
	s.mu.Unlock()

	return s.Recompute(ctx)
}

// SetLocation replaces the known location and recomputes. A nil location
// clears distances.
func (s *PredictionSession) SetLocation(ctx context.Context, location *entities.Coordinate) ([]entities.PredictionResult, bool) {
	s.mu.Lock()
	if location != nil {
		loc := *location
		s.location = &loc
	} else {
		s.location = nil
	}
	s.mu.Unlock()

	return s.Recompute(ctx)
}

// Recompute ranks the catalog against the latest inputs. It returns the
// computed results and whether they were committed as the session's
// current predictions.
func (s *PredictionSession) Recompute(ctx context.Context) ([]entities.PredictionResult, bool) {
	seq := s.seq.Add(1)

	ctx, span := observability.StartSpan(ctx, "PredictionSession.Recompute")
	defer span.End()

	s.mu.RLock()
	selected := append([]int(nil), s.selected...)
	var location *entities.Coordinate
	if s.location != nil {
		loc := *s.location
		location = &loc
	}
	s.mu.RUnlock()

	start := time.Now()
	var results []entities.PredictionResult
	if len(selected) == 0 {
		results = []entities.PredictionResult{}
	} else {
		results = s.engine.Rank(s.catalog.Diseases(), selected, location)
	}
	observability.RecordPrediction(ctx, s.metrics, len(results), time.Since(start))

	committed := s.commit(seq, results)
	span.SetAttributes(
		attribute.Int64("prediction.sequence", int64(seq)),
		attribute.Int("prediction.results", len(results)),
		attribute.Bool("prediction.committed", committed),
	)

	if !committed {
		observability.LoggerFromContext(ctx).Debug().
			Uint64("sequence", seq).
			Msg("discarding stale prediction result")
	}

	return results, committed
}

func (s *PredictionSession) commit(seq uint64, results []entities.PredictionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.committedSeq {
		return false
	}
	s.committedSeq = seq
	s.results = results
	s.updatedAt = time.Now().UTC()
	return true
}

// Predictions returns the committed predictions
func (s *PredictionSession) Predictions() []entities.PredictionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

// State returns the session's inputs with the committed predictions
func (s *PredictionSession) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := SessionState{
		SelectedSymptoms: append([]int{}, s.selected...),
		Predictions:      s.results,
		Sequence:         s.committedSeq,
		UpdatedAt:        s.updatedAt,
	}
	if s.location != nil {
		loc := *s.location
		state.Location = &loc
	}
	return state
}
