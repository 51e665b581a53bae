package handlers

import (
	"net/http"
	"strconv"

	"github.com/zatekoja/symptomchecker/backend/internal/application/services"
	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// SessionStore owns the live prediction sessions
type SessionStore interface {
	Create() (string, *services.PredictionSession)
	Get(id string) (*services.PredictionSession, error)
	Delete(id string)
}

// SessionHandler lets a client build up a symptom selection incrementally
// and read back the recomputed predictions after every change.
type SessionHandler struct {
	sessions SessionStore
}

func NewSessionHandler(sessions SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionResponse struct {
	ID               string               `json:"id"`
	SelectedSymptoms []int                `json:"selected_symptoms"`
	Location         *entities.Coordinate `json:"location,omitempty"`
	Predictions      []predictionView     `json:"predictions"`
	Sequence         uint64               `json:"sequence"`
	Stale            bool                 `json:"stale,omitempty"`
}

func newSessionResponse(id string, state services.SessionState, committed bool) sessionResponse {
	selected := state.SelectedSymptoms
	if selected == nil {
		selected = []int{}
	}
	return sessionResponse{
		ID:               id,
		SelectedSymptoms: selected,
		Location:         state.Location,
		Predictions:      newPredictionViews(state.Predictions),
		Sequence:         state.Sequence,
		Stale:            !committed,
	}
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, session := h.sessions.Create()
	respondWithJSON(w, http.StatusCreated, newSessionResponse(id, session.State(), true))
}

// Get handles GET /api/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, err := h.sessions.Get(id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionResponse(id, session.State(), true))
}

type setSymptomsRequest struct {
	SymptomIDs []int `json:"symptom_ids" validate:"max=500,dive,gt=0"`
}

// SetSymptoms handles PUT /api/sessions/{id}/symptoms
func (h *SessionHandler) SetSymptoms(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, err := h.sessions.Get(id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req setSymptomsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	_, committed := session.SetSymptoms(r.Context(), req.SymptomIDs)
	respondWithJSON(w, http.StatusOK, newSessionResponse(id, session.State(), committed))
}

// ToggleSymptom handles POST /api/sessions/{id}/symptoms/{symptomId}/toggle
func (h *SessionHandler) ToggleSymptom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	symptomID, err := strconv.Atoi(r.PathValue("symptomId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid symptom id")
		return
	}

	session, err := h.sessions.Get(id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	_, committed := session.ToggleSymptom(r.Context(), symptomID)
	respondWithJSON(w, http.StatusOK, newSessionResponse(id, session.State(), committed))
}

type setLocationRequest struct {
	Location *locationInput `json:"location"`
}

// SetLocation handles PUT /api/sessions/{id}/location. A null location
// clears it.
func (h *SessionHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, err := h.sessions.Get(id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req setLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	_, committed := session.SetLocation(r.Context(), req.Location.coordinate())
	respondWithJSON(w, http.StatusOK, newSessionResponse(id, session.State(), committed))
}

// Delete handles DELETE /api/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
