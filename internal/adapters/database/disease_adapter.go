package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

const diseasesTable = "diseases"

var diseaseColumns = []interface{}{
	"id", "name", "description", "symptoms", "severity",
	"risk_factors", "common_age_groups", "treatment_options", "specialists",
}

// DiseaseAdapter implements DiseaseRepository
type DiseaseAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDiseaseAdapter creates a new disease adapter
func NewDiseaseAdapter(client *postgres.Client) *DiseaseAdapter {
	return &DiseaseAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns every disease ordered by id
func (a *DiseaseAdapter) List(ctx context.Context) ([]*entities.Disease, error) {
	query, args, err := a.db.From(diseasesTable).
		Select(diseaseColumns...).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list diseases", err)
	}
	defer rows.Close()

	diseases := []*entities.Disease{}
	for rows.Next() {
		d, err := scanDisease(rows)
		if err != nil {
			return nil, err
		}
		diseases = append(diseases, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate diseases", err)
	}

	return diseases, nil
}

// GetByID retrieves a disease by ID
func (a *DiseaseAdapter) GetByID(ctx context.Context, id int) (*entities.Disease, error) {
	query, args, err := a.db.From(diseasesTable).
		Select(diseaseColumns...).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	d, err := scanDisease(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("disease %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Upsert inserts the diseases or replaces the stored copies
func (a *DiseaseAdapter) Upsert(ctx context.Context, diseases []*entities.Disease) error {
	if len(diseases) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(diseases))
	for _, d := range diseases {
		specialists, err := json.Marshal(specialistsOrEmpty(d.Specialists))
		if err != nil {
			return apperrors.NewInternalError("failed to encode specialists", err)
		}
		rows = append(rows, goqu.Record{
			"id":                d.ID,
			"name":              d.Name,
			"description":       d.Description,
			"symptoms":          pq.Array(toInt64s(d.Symptoms)),
			"severity":          sql.NullString{String: d.Severity, Valid: d.Severity != ""},
			"risk_factors":      pq.Array(d.RiskFactors),
			"common_age_groups": pq.Array(d.CommonAgeGroups),
			"treatment_options": pq.Array(d.TreatmentOptions),
			"specialists":       string(specialists),
		})
	}

	query, args, err := a.db.Insert(diseasesTable).
		Rows(rows...).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":              goqu.L("EXCLUDED.name"),
			"description":       goqu.L("EXCLUDED.description"),
			"symptoms":          goqu.L("EXCLUDED.symptoms"),
			"severity":          goqu.L("EXCLUDED.severity"),
			"risk_factors":      goqu.L("EXCLUDED.risk_factors"),
			"common_age_groups": goqu.L("EXCLUDED.common_age_groups"),
			"treatment_options": goqu.L("EXCLUDED.treatment_options"),
			"specialists":       goqu.L("EXCLUDED.specialists"),
		})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert diseases", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDisease(row rowScanner) (*entities.Disease, error) {
	d := &entities.Disease{}
	var description, severity sql.NullString
	var symptoms pq.Int64Array
	var riskFactors, ageGroups, treatments pq.StringArray
	var specialists []byte

	err := row.Scan(
		&d.ID,
		&d.Name,
		&description,
		&symptoms,
		&severity,
		&riskFactors,
		&ageGroups,
		&treatments,
		&specialists,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to scan disease", err)
	}

	d.Description = description.String
	d.Severity = severity.String
	d.Symptoms = make([]int, len(symptoms))
	for i, id := range symptoms {
		d.Symptoms[i] = int(id)
	}
	if len(riskFactors) > 0 {
		d.RiskFactors = []string(riskFactors)
	}
	if len(ageGroups) > 0 {
		d.CommonAgeGroups = []string(ageGroups)
	}
	if len(treatments) > 0 {
		d.TreatmentOptions = []string(treatments)
	}
	if len(specialists) > 0 {
		if err := json.Unmarshal(specialists, &d.Specialists); err != nil {
			return nil, apperrors.NewInternalError(fmt.Sprintf("failed to decode specialists of disease %d", d.ID), err)
		}
		if len(d.Specialists) == 0 {
			d.Specialists = nil
		}
	}

	return d, nil
}

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func specialistsOrEmpty(in []entities.Specialist) []entities.Specialist {
	if in == nil {
		return []entities.Specialist{}
	}
	return in
}
