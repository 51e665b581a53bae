package entities

import "github.com/zatekoja/symptomchecker/backend/pkg/geo"

// PredictionResult is one ranked candidate disease for a symptom selection
type PredictionResult struct {
	Disease       *Disease `json:"disease"`
	MatchCount    int      `json:"match_count"`
	TotalSymptoms int      `json:"total_symptoms"`
	Confidence    float64  `json:"confidence"`
}

// MatchPercent returns the confidence rounded to a whole percentage
func (r PredictionResult) MatchPercent() int {
	return int(geo.RoundTo(r.Confidence, 0))
}
