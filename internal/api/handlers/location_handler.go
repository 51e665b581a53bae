package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/entities"
)

// LocationLocator acquires the caller's position and manages the stored
// permission answer.
type LocationLocator interface {
	Locate(ctx context.Context) (*entities.Coordinate, error)
	Retry(ctx context.Context) (*entities.Coordinate, error)
	Permission(ctx context.Context) entities.PermissionState
	ResetPermission(ctx context.Context) error
}

// AddressDescriber turns coordinates into display text
type AddressDescriber interface {
	Describe(ctx context.Context, coord entities.Coordinate) string
}

// LocationHandler exposes location acquisition and reverse geocoding
type LocationHandler struct {
	locator  LocationLocator
	describe AddressDescriber
}

func NewLocationHandler(locator LocationLocator, describe AddressDescriber) *LocationHandler {
	return &LocationHandler{
		locator:  locator,
		describe: describe,
	}
}

// Locate handles POST /api/location
func (h *LocationHandler) Locate(w http.ResponseWriter, r *http.Request) {
	coord, err := h.locator.Locate(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, coord)
}

// Retry handles POST /api/location/retry
func (h *LocationHandler) Retry(w http.ResponseWriter, r *http.Request) {
	coord, err := h.locator.Retry(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, coord)
}

// GetPermission handles GET /api/location/permission
func (h *LocationHandler) GetPermission(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"permission": string(h.locator.Permission(r.Context())),
	})
}

// ResetPermission handles DELETE /api/location/permission
func (h *LocationHandler) ResetPermission(w http.ResponseWriter, r *http.Request) {
	if err := h.locator.ResetPermission(r.Context()); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReverseGeocode handles GET /api/reverse-geocode?lat=&lon=
func (h *LocationHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	latStr := query.Get("lat")
	lonStr := query.Get("lon")
	if latStr == "" || lonStr == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lat")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lon")
		return
	}

	coord := entities.Coordinate{Latitude: lat, Longitude: lon}
	if !coord.Valid() {
		respondWithError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"address":   h.describe.Describe(r.Context(), coord),
		"latitude":  lat,
		"longitude": lon,
	})
}
