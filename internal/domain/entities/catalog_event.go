package entities

import (
	"time"

	"github.com/google/uuid"
)

// CatalogEventType represents the kind of catalog change
type CatalogEventType string

const (
	CatalogEventTypeUpdated CatalogEventType = "catalog_updated"
)

// CatalogEvent announces that the stored catalog changed and running
// servers should reload it.
type CatalogEvent struct {
	ID         string           `json:"id"`
	EventType  CatalogEventType `json:"event_type"`
	Timestamp  time.Time        `json:"timestamp"`
	Symptoms   int              `json:"symptoms"`
	Diseases   int              `json:"diseases"`
	DiseaseIDs []int            `json:"disease_ids,omitempty"`
}

// NewCatalogUpdatedEvent creates an update event for a catalog of the given
// size.
func NewCatalogUpdatedEvent(symptoms int, diseaseIDs []int) *CatalogEvent {
	return &CatalogEvent{
		ID:         uuid.NewString(),
		EventType:  CatalogEventTypeUpdated,
		Timestamp:  time.Now().UTC(),
		Symptoms:   symptoms,
		Diseases:   len(diseaseIDs),
		DiseaseIDs: append([]int(nil), diseaseIDs...),
	}
}
