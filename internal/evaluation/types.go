package evaluation

import "time"

// Difficulty labels how ambiguous a golden case is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid checks if the difficulty value is one of the defined constants.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GoldenCase is a labeled symptom selection with the diseases a clinician
// expects near the top of the ranking.
type GoldenCase struct {
	ID               string     `yaml:"id" json:"id"`
	Symptoms         []int      `yaml:"symptoms" json:"symptoms"`
	ExpectedDiseases []int      `yaml:"expected_diseases" json:"expected_diseases"`
	Difficulty       Difficulty `yaml:"difficulty" json:"difficulty"`
}

// CaseResult holds the evaluation outcome for a single case.
type CaseResult struct {
	CaseID      string        `json:"case_id"`
	Difficulty  Difficulty    `json:"difficulty"`
	RecallAtK   float64       `json:"recall_at_k"`
	MRRAtK      float64       `json:"mrr_at_k"`
	ResultCount int           `json:"result_count"`
	TopDiseases []int         `json:"top_diseases"`
	Latency     time.Duration `json:"latency_ns"`
}

// Summary holds aggregate metrics across all golden cases.
type Summary struct {
	K             int                          `json:"k"`
	TotalCases    int                          `json:"total_cases"`
	AvgRecallAtK  float64                      `json:"avg_recall_at_k"`
	AvgMRRAtK     float64                      `json:"avg_mrr_at_k"`
	AvgLatency    time.Duration                `json:"avg_latency_ns"`
	CasesWithHits int                          `json:"cases_with_hits"`
	ByDifficulty  map[Difficulty]*GroupSummary `json:"by_difficulty"`
	Results       []CaseResult                 `json:"results"`
}

// GroupSummary holds metrics grouped by difficulty.
type GroupSummary struct {
	Count        int     `json:"count"`
	AvgRecallAtK float64 `json:"avg_recall_at_k"`
	AvgMRRAtK    float64 `json:"avg_mrr_at_k"`
}
