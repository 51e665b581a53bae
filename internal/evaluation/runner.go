package evaluation

import (
	"context"
	"time"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// DefaultK is how deep into the ranking a case looks for its expected
// diseases.
const DefaultK = 3

// Ranker ranks diseases against a symptom selection
type Ranker interface {
	Rank(diseases []*entities.Disease, selected []int, location *entities.Coordinate) []entities.PredictionResult
}

// Runner runs evaluation across a set of golden cases.
type Runner struct {
	ranker   Ranker
	diseases []*entities.Disease
	k        int
}

func NewRunner(ranker Ranker, diseases []*entities.Disease, k int) *Runner {
	if k <= 0 {
		k = DefaultK
	}
	return &Runner{ranker: ranker, diseases: diseases, k: k}
}

// Run ranks every case and aggregates Recall@K and MRR@K. It stops early
// with ctx's error if ctx ends.
func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*Summary, error) {
	summary := &Summary{
		K:            r.k,
		TotalCases:   len(cases),
		ByDifficulty: make(map[Difficulty]*GroupSummary),
		Results:      make([]CaseResult, 0, len(cases)),
	}

	for _, gc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		results := r.ranker.Rank(r.diseases, gc.Symptoms, nil)
		latency := time.Since(start)

		ranked := make([]int, 0, len(results))
		for _, res := range results {
			ranked = append(ranked, res.Disease.ID)
		}

		result := CaseResult{
			CaseID:      gc.ID,
			Difficulty:  gc.Difficulty,
			RecallAtK:   RecallAtK(gc.ExpectedDiseases, ranked, r.k),
			MRRAtK:      MRRAtK(gc.ExpectedDiseases, ranked, r.k),
			ResultCount: len(results),
			TopDiseases: topK(ranked, r.k),
			Latency:     latency,
		}
		summary.add(result)
	}

	summary.finalize()
	return summary, nil
}

func (s *Summary) add(res CaseResult) {
	s.Results = append(s.Results, res)
	s.AvgRecallAtK += res.RecallAtK
	s.AvgMRRAtK += res.MRRAtK
	s.AvgLatency += res.Latency
	if res.ResultCount > 0 {
		s.CasesWithHits++
	}

	group, ok := s.ByDifficulty[res.Difficulty]
	if !ok {
		group = &GroupSummary{}
		s.ByDifficulty[res.Difficulty] = group
	}
	group.Count++
	group.AvgRecallAtK += res.RecallAtK
	group.AvgMRRAtK += res.MRRAtK
}

func (s *Summary) finalize() {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.AvgRecallAtK /= n
		s.AvgMRRAtK /= n
		s.AvgLatency /= time.Duration(s.TotalCases)
	}

	for _, group := range s.ByDifficulty {
		if group.Count > 0 {
			n := float64(group.Count)
			group.AvgRecallAtK /= n
			group.AvgMRRAtK /= n
		}
	}
}
