package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/example/travel-planner/internal/application"
	"github.com/example/travel-planner/internal/persistence"
)

type itineraryService interface {
	ListItinerary(ctx context.Context, params application.ListItineraryParams) (application.ItineraryView, error)
	AddItem(ctx context.Context, params application.AddItineraryItemParams) (persistence.ItineraryItem, error)
}

// ItineraryHandler serves the computed trip plan.
type ItineraryHandler struct {
	service   itineraryService
	responder responder
	logger    *slog.Logger
}

func NewItineraryHandler(service itineraryService, logger *slog.Logger) *ItineraryHandler {
	base := defaultLogger(logger)
	return &ItineraryHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ItineraryHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ItineraryHandler", operation, attrs...)
}

func (h *ItineraryHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	query := r.URL.Query()
	tripID := query.Get("trip_id")
	if tripID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingTripID)
		return
	}

	params := application.ListItineraryParams{
		Principal: principal,
		TripID:    tripID,
	}
	if raw := query.Get("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errors.New("day must be an integer"))
			return
		}
		params.Day = &day
	}

	view, err := h.service.ListItinerary(r.Context(), params)
	if err != nil {
		if !errors.Is(err, application.ErrNotFound) {
			h.log(r.Context(), "List", "trip_id", tripID).ErrorContext(r.Context(), "failed to list itinerary", "error", err, "error_kind", application.ErrorKind(err))
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	items := make([]itineraryItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, toItineraryItemResponse(item))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, itineraryResponse{
		Items:    items,
		Warnings: view.Warnings,
	})
}

func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	var req itineraryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode itinerary request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	item, err := h.service.AddItem(r.Context(), application.AddItineraryItemParams{
		Principal: principal,
		Input: application.ItineraryItemInput{
			TripID:          req.TripID,
			AttractionID:    req.AttractionID,
			DayNumber:       req.DayNumber,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			OrderIndex:      req.OrderIndex,
			Notes:           req.Notes,
		},
	})
	if err != nil {
		h.log(r.Context(), "Create", "trip_id", req.TripID).ErrorContext(r.Context(), "failed to add itinerary item", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toItineraryItemResponse(item))
}

type itineraryItemRequest struct {
	TripID          string  `json:"trip_id"`
	AttractionID    *string `json:"attraction_id,omitempty"`
	DayNumber       int     `json:"day_number"`
	StartTime       *string `json:"start_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	OrderIndex      int     `json:"order_index"`
	Notes           *string `json:"notes,omitempty"`
}

type itineraryResponse struct {
	Items    []itineraryItemResponse `json:"items"`
	Warnings []string                `json:"warnings"`
}

type itineraryItemResponse struct {
	ID              string  `json:"id"`
	TripID          string  `json:"trip_id"`
	AttractionID    *string `json:"attraction_id,omitempty"`
	DayNumber       int     `json:"day_number"`
	StartTime       *string `json:"start_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	OrderIndex      int     `json:"order_index"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func toItineraryItemResponse(item persistence.ItineraryItem) itineraryItemResponse {
	return itineraryItemResponse{
		ID:              item.ID,
		TripID:          item.TripID,
		AttractionID:    item.AttractionID,
		DayNumber:       item.DayNumber,
		StartTime:       item.StartTime,
		DurationMinutes: item.DurationMinutes,
		OrderIndex:      item.OrderIndex,
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
