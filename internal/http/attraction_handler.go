package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/example/travel-planner/internal/application"
	"github.com/example/travel-planner/internal/persistence"
)

type attractionService interface {
	ListAttractions(ctx context.Context, params application.ListAttractionsParams) ([]persistence.Attraction, error)
	GetAttraction(ctx context.Context, attractionID string) (persistence.Attraction, error)
}

// AttractionHandler serves the swipe catalog.
type AttractionHandler struct {
	service   attractionService
	responder responder
	logger    *slog.Logger
}

func NewAttractionHandler(service attractionService, logger *slog.Logger) *AttractionHandler {
	base := defaultLogger(logger)
	return &AttractionHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AttractionHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AttractionHandler", operation, attrs...)
}

func (h *AttractionHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	params := application.ListAttractionsParams{
		Destination: query.Get("destination"),
		Category:    query.Get("category"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errors.New("limit must be an integer"))
			return
		}
		params.Limit = limit
	}

	attractions, err := h.service.ListAttractions(r.Context(), params)
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list attractions", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	responses := make([]attractionResponse, 0, len(attractions))
	for _, attraction := range attractions {
		responses = append(responses, toAttractionResponse(attraction))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, responses)
}

func (h *AttractionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	attractionID := chi.URLParam(r, "attractionID")
	attraction, err := h.service.GetAttraction(r.Context(), attractionID)
	if err != nil {
		if !errors.Is(err, application.ErrNotFound) {
			h.log(r.Context(), "Get", "attraction_id", attractionID).ErrorContext(r.Context(), "failed to load attraction", "error", err, "error_kind", application.ErrorKind(err))
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toAttractionResponse(attraction))
}

type attractionResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Destination     string   `json:"destination"`
	Category        string   `json:"category"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	PricePoint      *string  `json:"price_point,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ScoutTip        *string  `json:"scout_tip,omitempty"`
	IsLocalFavorite bool     `json:"is_local_favorite"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	Views           int      `json:"views"`
	OpeningHours    []string `json:"opening_hours,omitempty"`
}

func toAttractionResponse(attraction persistence.Attraction) attractionResponse {
	return attractionResponse{
		ID:              attraction.ID,
		Name:            attraction.Name,
		Destination:     attraction.Destination,
		Category:        attraction.Category,
		Rating:          attraction.Rating,
		ReviewCount:     attraction.ReviewCount,
		PricePoint:      attraction.PricePoint,
		ImageURL:        attraction.ImageURL,
		Description:     attraction.Description,
		ScoutTip:        attraction.ScoutTip,
		IsLocalFavorite: attraction.IsLocalFavorite,
		Lat:             attraction.Lat,
		Lng:             attraction.Lng,
		Views:           attraction.Views,
		OpeningHours:    attraction.OpeningHours,
	}
}
