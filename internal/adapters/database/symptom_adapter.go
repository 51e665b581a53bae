package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

const symptomsTable = "symptoms"

// SymptomAdapter implements SymptomRepository
type SymptomAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSymptomAdapter creates a new symptom adapter
func NewSymptomAdapter(client *postgres.Client) *SymptomAdapter {
	return &SymptomAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns every symptom ordered by id
func (a *SymptomAdapter) List(ctx context.Context) ([]*entities.Symptom, error) {
	query, args, err := a.db.From(symptomsTable).
		Select("id", "name").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list symptoms", err)
	}
	defer rows.Close()

	symptoms := []*entities.Symptom{}
	for rows.Next() {
		s := &entities.Symptom{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, apperrors.NewInternalError("failed to scan symptom", err)
		}
		symptoms = append(symptoms, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate symptoms", err)
	}

	return symptoms, nil
}

// Upsert inserts the symptoms or updates their names
func (a *SymptomAdapter) Upsert(ctx context.Context, symptoms []*entities.Symptom) error {
	if len(symptoms) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(symptoms))
	for _, s := range symptoms {
		rows = append(rows, goqu.Record{"id": s.ID, "name": s.Name})
	}

	query, args, err := a.db.Insert(symptomsTable).
		Rows(rows...).
		OnConflict(goqu.DoUpdate("id", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert symptoms", err)
	}
	return nil
}
