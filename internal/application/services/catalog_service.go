package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/repositories"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

const defaultSearchLimit = 50

// CatalogService loads the symptom and disease catalogs once and serves
// read-only lookups over them.
type CatalogService struct {
	symptomRepo repositories.SymptomRepository
	diseaseRepo repositories.DiseaseRepository
	searchRepo  repositories.CatalogSearchRepository

	mu          sync.RWMutex
	loaded      bool
	symptoms    []*entities.Symptom
	diseases    []*entities.Disease
	symptomByID map[int]*entities.Symptom
	diseaseByID map[int]*entities.Disease
}

// NewCatalogService creates a catalog service. searchRepo may be nil, in
// which case searches filter the loaded catalog in memory.
func NewCatalogService(symptomRepo repositories.SymptomRepository, diseaseRepo repositories.DiseaseRepository, searchRepo repositories.CatalogSearchRepository) *CatalogService {
	return &CatalogService{
		symptomRepo: symptomRepo,
		diseaseRepo: diseaseRepo,
		searchRepo:  searchRepo,
	}
}

// Load fetches both catalogs concurrently and replaces the cached copies
func (s *CatalogService) Load(ctx context.Context) error {
	ctx, span := observability.StartSpan(ctx, "CatalogService.Load")
	defer span.End()

	var symptoms []*entities.Symptom
	var diseases []*entities.Disease

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, err = s.symptomRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load symptoms: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		diseases, err = s.diseaseRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load diseases: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		observability.RecordError(span, err)
		return err
	}

	symptomByID := make(map[int]*entities.Symptom, len(symptoms))
	for _, sym := range symptoms {
		symptomByID[sym.ID] = sym
	}
	diseaseByID := make(map[int]*entities.Disease, len(diseases))
	for _, d := range diseases {
		diseaseByID[d.ID] = d
	}

	s.mu.Lock()
	s.symptoms = symptoms
	s.diseases = diseases
	s.symptomByID = symptomByID
	s.diseaseByID = diseaseByID
	s.loaded = true
	s.mu.Unlock()

	observability.LoggerFromContext(ctx).Info().
		Int("symptoms", len(symptoms)).
		Int("diseases", len(diseases)).
		Msg("catalog loaded")

	if s.searchRepo != nil {
		if err := s.searchRepo.IndexSymptoms(ctx, symptoms); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to index symptoms")
		}
		if err := s.searchRepo.IndexDiseases(ctx, diseases); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to index diseases")
		}
	}

	return nil
}

// EnsureLoaded loads the catalog unless a previous Load succeeded
func (s *CatalogService) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Symptoms returns the loaded symptoms in catalog order
func (s *CatalogService) Symptoms() []*entities.Symptom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.symptoms
}

// Diseases returns the loaded diseases in catalog order
func (s *CatalogService) Diseases() []*entities.Disease {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diseases
}

// GetDisease returns a copy of the disease with the given id
func (s *CatalogService) GetDisease(ctx context.Context, id int) (*entities.Disease, error) {
	s.mu.RLock()
	d, ok := s.diseaseByID[id]
	s.mu.RUnlock()
	if ok {
		return d.Clone(), nil
	}

	d, err := s.diseaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("disease %d not found", id))
	}
	return d, nil
}

// SymptomNames returns the names of the known symptoms among ids, in
// catalog order. Unknown ids are skipped.
func (s *CatalogService) SymptomNames(ids []int) []string {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(wanted))
	for _, sym := range s.symptoms {
		if _, ok := wanted[sym.ID]; ok {
			names = append(names, sym.Name)
		}
	}
	return names
}

// SearchSymptoms returns symptoms whose name contains term, ignoring case.
// An empty term returns the whole catalog.
func (s *CatalogService) SearchSymptoms(ctx context.Context, term string) []*entities.Symptom {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Symptoms()
	}

	if s.searchRepo != nil {
		ids, err := s.searchRepo.SearchSymptoms(ctx, term, defaultSearchLimit)
		if err == nil {
			s.mu.RLock()
			defer s.mu.RUnlock()
			out := make([]*entities.Symptom, 0, len(ids))
			for _, id := range ids {
				if sym, ok := s.symptomByID[id]; ok {
					out = append(out, sym)
				}
			}
			return out
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("symptom search failed, filtering in memory")
	}

	needle := strings.ToLower(term)
	out := []*entities.Symptom{}
	for _, sym := range s.Symptoms() {
		if strings.Contains(strings.ToLower(sym.Name), needle) {
			out = append(out, sym)
		}
	}
	return out
}

// SearchDiseases returns diseases whose name contains term, ignoring case.
// An empty term returns the whole catalog.
func (s *CatalogService) SearchDiseases(ctx context.Context, term string) []*entities.Disease {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Diseases()
	}

	if s.searchRepo != nil {
		ids, err := s.searchRepo.SearchDiseases(ctx, term, defaultSearchLimit)
		if err == nil {
			s.mu.RLock()
			defer s.mu.RUnlock()
			out := make([]*entities.Disease, 0, len(ids))
			for _, id := range ids {
				if d, ok := s.diseaseByID[id]; ok {
					out = append(out, d)
				}
			}
			return out
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("disease search failed, filtering in memory")
	}

	needle := strings.ToLower(term)
	out := []*entities.Disease{}
	for _, d := range s.Diseases() {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			out = append(out, d)
		}
	}
	return out
}
