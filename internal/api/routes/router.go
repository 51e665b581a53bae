package routes

import (
	"net/http"

	"github.com/zatekoja/symptomchecker/backend/internal/api/handlers"
	"github.com/zatekoja/symptomchecker/backend/internal/api/middleware"
	"github.com/zatekoja/symptomchecker/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogHandler    *handlers.CatalogHandler
	predictionHandler *handlers.PredictionHandler
	locationHandler   *handlers.LocationHandler
	sessionHandler    *handlers.SessionHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware may be nil.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	predictionHandler *handlers.PredictionHandler,
	locationHandler *handlers.LocationHandler,
	sessionHandler *handlers.SessionHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		catalogHandler:    catalogHandler,
		predictionHandler: predictionHandler,
		locationHandler:   locationHandler,
		sessionHandler:    sessionHandler,
		cacheMiddleware:   cacheMiddleware,
		allowedOrigins:    allowedOrigins,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Catalog
	r.mux.HandleFunc("GET /api/symptoms", r.catalogHandler.ListSymptoms)
	r.mux.HandleFunc("GET /api/diseases", r.catalogHandler.ListDiseases)
	r.mux.HandleFunc("GET /api/diseases/{id}", r.catalogHandler.GetDisease)

	r.mux.HandleFunc("POST /api/predictions", r.predictionHandler.Predict)

	// Location
	r.mux.HandleFunc("POST /api/location", r.locationHandler.Locate)
	r.mux.HandleFunc("POST /api/location/retry", r.locationHandler.Retry)
	r.mux.HandleFunc("GET /api/location/permission", r.locationHandler.GetPermission)
	r.mux.HandleFunc("DELETE /api/location/permission", r.locationHandler.ResetPermission)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.locationHandler.ReverseGeocode)

	// Sessions
	r.mux.HandleFunc("POST /api/sessions", r.sessionHandler.Create)
	r.mux.HandleFunc("GET /api/sessions/{id}", r.sessionHandler.Get)
	r.mux.HandleFunc("DELETE /api/sessions/{id}", r.sessionHandler.Delete)
	r.mux.HandleFunc("PUT /api/sessions/{id}/symptoms", r.sessionHandler.SetSymptoms)
	r.mux.HandleFunc("POST /api/sessions/{id}/symptoms/{symptomId}/toggle", r.sessionHandler.ToggleSymptom)
	r.mux.HandleFunc("PUT /api/sessions/{id}/location", r.sessionHandler.SetLocation)

	// Middleware wraps inside out. CORS is outermost so cache hits carry
	// its headers too.
	var handler http.Handler = r.mux
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
