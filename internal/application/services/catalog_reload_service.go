package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
)

const reloadTimeout = 30 * time.Second

// CatalogLoader reloads the served catalog
type CatalogLoader interface {
	Load(ctx context.Context) error
}

// CatalogInvalidator drops cached data derived from the catalog. diseaseIDs
// lists the diseases named by the event.
type CatalogInvalidator func(ctx context.Context, diseaseIDs []int) error

// CatalogReloadService listens for catalog update events, clears the caches
// built from the old catalog and reloads it.
type CatalogReloadService struct {
	loader       CatalogLoader
	eventBus     providers.EventBus
	invalidators []CatalogInvalidator

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCatalogReloadService(loader CatalogLoader, eventBus providers.EventBus, invalidators ...CatalogInvalidator) *CatalogReloadService {
	return &CatalogReloadService{
		loader:       loader,
		eventBus:     eventBus,
		invalidators: invalidators,
	}
}

// Start subscribes to catalog updates and handles them in the background
// until Stop is called.
func (s *CatalogReloadService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	eventChan, err := s.eventBus.Subscribe(ctx, providers.EventChannelCatalogUpdates)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to catalog updates: %w", err)
	}

	s.cancel = cancel
	s.done = make(chan struct{})
	go s.processEvents(ctx, eventChan, s.done)

	log.Info().Msg("catalog reload service started")
	return nil
}

// Stop ends the subscription and waits for an in-flight reload
func (s *CatalogReloadService) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Info().Msg("catalog reload service stopped")
}

func (s *CatalogReloadService) processEvents(ctx context.Context, eventChan <-chan *entities.CatalogEvent, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			if err := s.HandleEvent(ctx, event); err != nil {
				log.Error().Err(err).Str("event_id", event.ID).Msg("catalog reload failed")
			}
		}
	}
}

// HandleEvent runs every invalidator and reloads the catalog. Invalidation
// failures are logged; a stale cache entry expires on its own.
func (s *CatalogReloadService) HandleEvent(ctx context.Context, event *entities.CatalogEvent) error {
	if event.EventType != entities.CatalogEventTypeUpdated {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	logger := log.With().Str("event_id", event.ID).Logger()
	logger.Info().Int("diseases", event.Diseases).Msg("processing catalog update")

	for _, invalidate := range s.invalidators {
		if err := invalidate(ctx, event.DiseaseIDs); err != nil {
			logger.Warn().Err(err).Msg("failed to invalidate catalog cache")
		}
	}

	if err := s.loader.Load(ctx); err != nil {
		return fmt.Errorf("failed to reload catalog: %w", err)
	}
	return nil
}
