package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RouterConfig collects the handlers and middleware that make up the API
// surface. Nil handlers leave their routes unregistered.
type RouterConfig struct {
	Auth        *AuthHandler
	Trips       *TripHandler
	Attractions *AttractionHandler
	Swipes      *SwipeHandler
	Itinerary   *ItineraryHandler

	// RequireSession wraps every route that needs an acting principal.
	RequireSession func(http.Handler) http.Handler
	// Middleware applies to the whole router, outermost first.
	Middleware []func(http.Handler) http.Handler
	// RateLimitPerSecond caps requests per client IP. Zero disables limiting.
	RateLimitPerSecond int
	// Version is reported by the health endpoint.
	Version string
}

// NewRouter assembles the HTTP API.
func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Session-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.RateLimitPerSecond > 0 {
		router.Use(httprate.LimitByIP(cfg.RateLimitPerSecond, time.Second))
	}

	for _, mw := range cfg.Middleware {
		if mw != nil {
			router.Use(mw)
		}
	}

	router.Get("/", healthHandler(cfg.Version))

	if cfg.Auth != nil {
		router.Post("/sessions", cfg.Auth.CreateSession)
		router.Delete("/sessions/current", cfg.Auth.DeleteCurrentSession)
	}

	router.Group(func(r chi.Router) {
		if cfg.RequireSession != nil {
			r.Use(cfg.RequireSession)
		}

		if cfg.Trips != nil {
			r.Get("/trips", cfg.Trips.List)
			r.Post("/trips", cfg.Trips.Create)
			r.Get("/trips/{tripID}", cfg.Trips.Get)
		}

		if cfg.Attractions != nil {
			r.Get("/attractions", cfg.Attractions.List)
			r.Get("/attractions/{attractionID}", cfg.Attractions.Get)
		}

		if cfg.Swipes != nil {
			r.Post("/swipes", cfg.Swipes.Create)
			r.Get("/swipes", cfg.Swipes.ListLikes)
		}

		if cfg.Itinerary != nil {
			r.Get("/itinerary", cfg.Itinerary.List)
			r.Post("/itinerary", cfg.Itinerary.Create)
		}
	})

	return router
}

func healthHandler(version string) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	resp := newResponder(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		resp.writeJSON(r.Context(), w, http.StatusOK, map[string]string{
			"message": "travel planner API",
			"version": version,
			"status":  "running",
		})
	}
}
