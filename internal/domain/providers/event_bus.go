package providers

import (
	"context"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// EventChannelCatalogUpdates carries CatalogEvents
const EventChannelCatalogUpdates = "catalog:updates"

// EventPublisher publishes catalog events
type EventPublisher interface {
	Publish(ctx context.Context, channel string, event *entities.CatalogEvent) error
}

// EventBus defines the interface for publishing and subscribing to events
type EventBus interface {
	EventPublisher

	// Subscribe returns a channel of events that is closed when ctx ends
	// or the bus is closed.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.CatalogEvent, error)

	// Unsubscribe drops every subscriber of a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}
