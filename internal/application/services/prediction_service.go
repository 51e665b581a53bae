package services

import (
	"math"
	"sort"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/pkg/geo"
)

// PredictionService scores catalog diseases against a symptom selection and
// orders each disease's specialists by distance from the caller.
type PredictionService struct{}

func NewPredictionService() *PredictionService {
	return &PredictionService{}
}

// Rank returns the diseases sharing at least one symptom with selected,
// ordered by confidence descending. Ties keep catalog order. Every result
// carries its own copy of the disease; the input catalog is not modified.
func (s *PredictionService) Rank(diseases []*entities.Disease, selected []int, location *entities.Coordinate) []entities.PredictionResult {
	results := []entities.PredictionResult{}

	selectedSet := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}
	if len(selectedSet) == 0 {
		return results
	}

	for _, d := range diseases {
		if d == nil {
			continue
		}

		matchCount := 0
		for _, id := range d.Symptoms {
			if _, ok := selectedSet[id]; ok {
				matchCount++
			}
		}
		if matchCount == 0 {
			continue
		}

		totalSymptoms := len(d.Symptoms)
		matchRatio := float64(matchCount) / float64(totalSymptoms)
		coverageRatio := float64(matchCount) / float64(len(selectedSet))

		results = append(results, entities.PredictionResult{
			Disease:       s.annotate(d, location),
			MatchCount:    matchCount,
			TotalSymptoms: totalSymptoms,
			Confidence:    clampPercent((matchRatio + coverageRatio) / 2 * 100),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	return results
}

// annotate copies d, sets each specialist's distance from location when
// both positions are known and sorts specialists nearest first.
func (s *PredictionService) annotate(d *entities.Disease, location *entities.Coordinate) *entities.Disease {
	annotated := d.Clone()

	for i := range annotated.Specialists {
		sp := &annotated.Specialists[i]
		sp.Distance = nil
		if location == nil || !location.Valid() || sp.Location == nil || !sp.Location.Valid() {
			continue
		}
		distance := geo.DistanceKm(location.Point(), sp.Location.Point())
		sp.Distance = &distance
	}

	sort.SliceStable(annotated.Specialists, func(i, j int) bool {
		return distanceOrInf(annotated.Specialists[i]) < distanceOrInf(annotated.Specialists[j])
	})

	return annotated
}

func distanceOrInf(sp entities.Specialist) float64 {
	if sp.Distance == nil {
		return math.Inf(1)
	}
	return *sp.Distance
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
