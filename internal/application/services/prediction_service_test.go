package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptomchecker/backend/internal/application/services"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

func diseaseIDs(results []entities.PredictionResult) []int {
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.Disease.ID
	}
	return ids
}

func specialistNames(d *entities.Disease) []string {
	names := make([]string, len(d.Specialists))
	for i, s := range d.Specialists {
		names[i] = s.Name
	}
	return names
}

func TestPredictionService_Rank_OrdersByConfidence(t *testing.T) {
	svc := services.NewPredictionService()

	a := &entities.Disease{ID: 1, Name: "A", Symptoms: []int{1, 2, 3}}
	b := &entities.Disease{ID: 2, Name: "B", Symptoms: []int{1}}

	results := svc.Rank([]*entities.Disease{a, b}, []int{1}, nil)

	require.Len(t, results, 2)
	assert.Equal(t, []int{2, 1}, diseaseIDs(results))

	assert.Equal(t, 1, results[0].MatchCount)
	assert.Equal(t, 1, results[0].TotalSymptoms)
	assert.InDelta(t, 100, results[0].Confidence, 1e-9)

	assert.Equal(t, 1, results[1].MatchCount)
	assert.Equal(t, 3, results[1].TotalSymptoms)
	assert.InDelta(t, 66.67, results[1].Confidence, 0.01)
	assert.Equal(t, 67, results[1].MatchPercent())
}

func TestPredictionService_Rank_SkipsDiseasesWithoutMatches(t *testing.T) {
	svc := services.NewPredictionService()

	diseases := []*entities.Disease{
		{ID: 1, Symptoms: []int{1, 2}},
		{ID: 2, Symptoms: []int{5, 6}},
		{ID: 3, Symptoms: []int{}},
	}

	results := svc.Rank(diseases, []int{2, 9}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Disease.ID)
	// matchRatio 1/2, coverage 1/2
	assert.InDelta(t, 50, results[0].Confidence, 1e-9)
}

func TestPredictionService_Rank_EmptySelection(t *testing.T) {
	svc := services.NewPredictionService()

	diseases := []*entities.Disease{{ID: 1, Symptoms: []int{1}}}

	results := svc.Rank(diseases, nil, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results = svc.Rank(diseases, []int{}, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestPredictionService_Rank_TiesKeepCatalogOrder(t *testing.T) {
	svc := services.NewPredictionService()

	diseases := []*entities.Disease{
		{ID: 10, Symptoms: []int{1, 2}},
		{ID: 11, Symptoms: []int{3}},
		{ID: 12, Symptoms: []int{1, 2}},
		{ID: 13, Symptoms: []int{2, 4}},
	}

	results := svc.Rank(diseases, []int{1, 2}, nil)

	// 10 and 12 score 100, 13 scores 50
	assert.Equal(t, []int{10, 12, 13}, diseaseIDs(results))
}

func TestPredictionService_Rank_DuplicateSelectionCountsOnce(t *testing.T) {
	svc := services.NewPredictionService()

	diseases := []*entities.Disease{{ID: 1, Symptoms: []int{1, 2}}}

	results := svc.Rank(diseases, []int{1, 1, 1}, nil)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].MatchCount)
	assert.InDelta(t, 75, results[0].Confidence, 1e-9)
}

func TestPredictionService_Rank_ConfidenceWithinBounds(t *testing.T) {
	svc := services.NewPredictionService()

	diseases := []*entities.Disease{
		{ID: 1, Symptoms: []int{1, 1, 2}},
		{ID: 2, Symptoms: []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, r := range svc.Rank(diseases, []int{1, 2, 3}, nil) {
		assert.GreaterOrEqual(t, r.Confidence, 0.0)
		assert.LessOrEqual(t, r.Confidence, 100.0)
	}
}

func TestPredictionService_Rank_SortsSpecialistsByDistance(t *testing.T) {
	svc := services.NewPredictionService()

	user := &entities.Coordinate{Latitude: 0, Longitude: 0}
	disease := &entities.Disease{
		ID:       1,
		Symptoms: []int{1},
		Specialists: []entities.Specialist{
			{Name: "unknown-1"},
			{Name: "far", Location: &entities.Coordinate{Latitude: 0, Longitude: 2}},
			{Name: "near", Location: &entities.Coordinate{Latitude: 0, Longitude: 1}},
			{Name: "unknown-2"},
			{Name: "here", Location: &entities.Coordinate{Latitude: 0, Longitude: 0}},
		},
	}

	results := svc.Rank([]*entities.Disease{disease}, []int{1}, user)

	require.Len(t, results, 1)
	got := results[0].Disease
	assert.Equal(t, []string{"here", "near", "far", "unknown-1", "unknown-2"}, specialistNames(got))

	require.NotNil(t, got.Specialists[0].Distance)
	assert.Equal(t, 0.0, *got.Specialists[0].Distance)
	require.NotNil(t, got.Specialists[1].Distance)
	assert.Equal(t, 111.2, *got.Specialists[1].Distance)
	assert.Nil(t, got.Specialists[3].Distance)
	assert.Nil(t, got.Specialists[4].Distance)
}

func TestPredictionService_Rank_WithoutLocationLeavesDistancesUnset(t *testing.T) {
	svc := services.NewPredictionService()

	stale := 3.5
	disease := &entities.Disease{
		ID:       1,
		Symptoms: []int{1},
		Specialists: []entities.Specialist{
			{Name: "first", Location: &entities.Coordinate{Latitude: 1, Longitude: 1}, Distance: &stale},
			{Name: "second", Location: &entities.Coordinate{Latitude: 0, Longitude: 0}},
		},
	}

	results := svc.Rank([]*entities.Disease{disease}, []int{1}, nil)

	require.Len(t, results, 1)
	got := results[0].Disease
	assert.Equal(t, []string{"first", "second"}, specialistNames(got))
	for _, s := range got.Specialists {
		assert.Nil(t, s.Distance)
	}
}

func TestPredictionService_Rank_InvalidLocationTreatedAsUnknown(t *testing.T) {
	svc := services.NewPredictionService()

	disease := &entities.Disease{
		ID:       1,
		Symptoms: []int{1},
		Specialists: []entities.Specialist{
			{Name: "bad", Location: &entities.Coordinate{Latitude: 123, Longitude: 0}},
			{Name: "good", Location: &entities.Coordinate{Latitude: 1, Longitude: 0}},
		},
	}

	results := svc.Rank([]*entities.Disease{disease}, []int{1}, &entities.Coordinate{})

	got := results[0].Disease
	assert.Equal(t, []string{"good", "bad"}, specialistNames(got))
	assert.Nil(t, got.Specialists[1].Distance)
}

func TestPredictionService_Rank_DoesNotMutateCatalog(t *testing.T) {
	svc := services.NewPredictionService()

	disease := &entities.Disease{
		ID:       1,
		Symptoms: []int{1},
		Specialists: []entities.Specialist{
			{Name: "far", Location: &entities.Coordinate{Latitude: 0, Longitude: 2}},
			{Name: "near", Location: &entities.Coordinate{Latitude: 0, Longitude: 1}},
		},
	}
	catalog := []*entities.Disease{disease}

	results := svc.Rank(catalog, []int{1}, &entities.Coordinate{})

	require.Len(t, results, 1)
	assert.NotSame(t, disease, results[0].Disease)
	assert.Equal(t, []string{"far", "near"}, specialistNames(disease))
	for _, s := range disease.Specialists {
		assert.Nil(t, s.Distance)
	}

	// a second pass with another location yields independent copies
	again := svc.Rank(catalog, []int{1}, &entities.Coordinate{Latitude: 0, Longitude: 3})
	assert.Equal(t, 222.4, *results[0].Disease.Specialists[1].Distance)
	assert.Equal(t, 111.2, *again[0].Disease.Specialists[0].Distance)
}
