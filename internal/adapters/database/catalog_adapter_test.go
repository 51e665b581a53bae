package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

func newMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return postgres.NewFromDB(db), mock
}

func TestSymptomAdapter_List(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewSymptomAdapter(client)

	mock.ExpectQuery(`SELECT "id", "name" FROM "symptoms" ORDER BY "id" ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Fever").
			AddRow(2, "Headache"))

	symptoms, err := adapter.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []*entities.Symptom{{ID: 1, Name: "Fever"}, {ID: 2, Name: "Headache"}}, symptoms)
}

func TestSymptomAdapter_List_QueryError(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewSymptomAdapter(client)

	mock.ExpectQuery(`FROM "symptoms"`).WillReturnError(errors.New("connection reset"))

	_, err := adapter.List(context.Background())

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
}

func TestSymptomAdapter_Upsert(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewSymptomAdapter(client)

	mock.ExpectExec(`INSERT INTO "symptoms" .* ON CONFLICT \(id\) DO UPDATE SET "name"=EXCLUDED.name`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := adapter.Upsert(context.Background(), []*entities.Symptom{{ID: 1, Name: "Fever"}, {ID: 2, Name: "Chills"}})

	require.NoError(t, err)
	assert.NoError(t, adapter.Upsert(context.Background(), nil))
}

var diseaseRowColumns = []string{
	"id", "name", "description", "symptoms", "severity",
	"risk_factors", "common_age_groups", "treatment_options", "specialists",
}

func TestDiseaseAdapter_List(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewDiseaseAdapter(client)

	mock.ExpectQuery(`SELECT "id", "name", "description", "symptoms", .* FROM "diseases" ORDER BY "id" ASC`).
		WillReturnRows(sqlmock.NewRows(diseaseRowColumns).
			AddRow(1, "Malaria", "Mosquito-borne", "{1,2,5}", "high",
				`{"Travel to endemic areas"}`, `{"All ages"}`, `{"Antimalarials","Rest"}`,
				[]byte(`[{"name":"Dr. Ada","description":"Infectious disease","contact":"+234 1","location":{"latitude":6.5,"longitude":3.4}}]`)).
			AddRow(2, "Cold", nil, "{3}", nil, "{}", "{}", "{}", []byte(`[]`)))

	diseases, err := adapter.List(context.Background())

	require.NoError(t, err)
	require.Len(t, diseases, 2)

	malaria := diseases[0]
	assert.Equal(t, []int{1, 2, 5}, malaria.Symptoms)
	assert.Equal(t, "high", malaria.Severity)
	assert.Equal(t, []string{"Travel to endemic areas"}, malaria.RiskFactors)
	assert.Equal(t, []string{"Antimalarials", "Rest"}, malaria.TreatmentOptions)
	require.Len(t, malaria.Specialists, 1)
	assert.Equal(t, "Dr. Ada", malaria.Specialists[0].Name)
	assert.Equal(t, &entities.Coordinate{Latitude: 6.5, Longitude: 3.4}, malaria.Specialists[0].Location)
	assert.Nil(t, malaria.Specialists[0].Distance)

	cold := diseases[1]
	assert.Equal(t, "", cold.Description)
	assert.Equal(t, []int{3}, cold.Symptoms)
	assert.Nil(t, cold.RiskFactors)
	assert.Nil(t, cold.Specialists)
}

func TestDiseaseAdapter_List_BadSpecialists(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewDiseaseAdapter(client)

	mock.ExpectQuery(`FROM "diseases"`).
		WillReturnRows(sqlmock.NewRows(diseaseRowColumns).
			AddRow(1, "Malaria", "", "{1}", nil, "{}", "{}", "{}", []byte(`{"oops"`)))

	_, err := adapter.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode specialists")
}

func TestDiseaseAdapter_GetByID(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewDiseaseAdapter(client)

	mock.ExpectQuery(`FROM "diseases" WHERE \("id" = 7\)`).
		WillReturnRows(sqlmock.NewRows(diseaseRowColumns).
			AddRow(7, "Migraine", "Recurring headaches", "{2}", "moderate", "{}", "{}", "{}", []byte(`[]`)))

	d, err := adapter.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Migraine", d.Name)
}

func TestDiseaseAdapter_GetByID_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewDiseaseAdapter(client)

	mock.ExpectQuery(`FROM "diseases" WHERE \("id" = 99\)`).
		WillReturnRows(sqlmock.NewRows(diseaseRowColumns))

	_, err := adapter.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDiseaseAdapter_Upsert(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewDiseaseAdapter(client)

	mock.ExpectExec(`INSERT INTO "diseases" .* ON CONFLICT \(id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Upsert(context.Background(), []*entities.Disease{{
		ID:          1,
		Name:        "Malaria",
		Symptoms:    []int{1, 2},
		RiskFactors: []string{"Travel"},
	}})

	require.NoError(t, err)
}

func TestMigrationFiles_ArePaired(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
	assert.True(t, ups["000001_create_catalog"])
}
