package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/symptomchecker/backend/pkg/errors"
)

const defaultSessionIdleTTL = 30 * time.Minute

// SessionService keeps the in-memory prediction sessions of connected
// clients. Sessions are never persisted.
type SessionService struct {
	engine  *PredictionService
	catalog CatalogSnapshot
	metrics *observability.Metrics
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session  *PredictionSession
	lastSeen time.Time
}

func NewSessionService(engine *PredictionService, catalog CatalogSnapshot, metrics *observability.Metrics) *SessionService {
	return &SessionService{
		engine:   engine,
		catalog:  catalog,
		metrics:  metrics,
		idleTTL:  defaultSessionIdleTTL,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Create starts a new empty session and returns its id
func (s *SessionService) Create() (string, *PredictionSession) {
	id := uuid.New().String()
	session := NewPredictionSession(s.engine, s.catalog, s.metrics)

	s.mu.Lock()
	s.evictIdleLocked()
	s.sessions[id] = &sessionEntry{session: session, lastSeen: s.now()}
	s.mu.Unlock()

	return id, session
}

// Get returns the session with the given id
func (s *SessionService) Get(id string) (*PredictionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || s.now().Sub(entry.lastSeen) > s.idleTTL {
		delete(s.sessions, id)
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("session %s not found", id))
	}
	entry.lastSeen = s.now()
	return entry.session, nil
}

// Delete ends a session
func (s *SessionService) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions
func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionService) evictIdleLocked() {
	now := s.now()
	for id, entry := range s.sessions {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.sessions, id)
		}
	}
}
