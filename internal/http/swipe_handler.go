package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/travel-planner/internal/application"
	"github.com/example/travel-planner/internal/persistence"
	"github.com/example/travel-planner/internal/planner"
)

type swipeService interface {
	RecordSwipe(ctx context.Context, params application.RecordSwipeParams) (persistence.Swipe, *planner.Assignment, error)
	ListLikes(ctx context.Context, principal application.Principal, tripID string) ([]persistence.Swipe, error)
}

// SwipeHandler records like/pass decisions.
type SwipeHandler struct {
	service   swipeService
	responder responder
	logger    *slog.Logger
}

func NewSwipeHandler(service swipeService, logger *slog.Logger) *SwipeHandler {
	base := defaultLogger(logger)
	return &SwipeHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *SwipeHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "SwipeHandler", operation, attrs...)
}

func (h *SwipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	var req swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode swipe request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	swipe, assignment, err := h.service.RecordSwipe(r.Context(), application.RecordSwipeParams{
		Principal: principal,
		Input: application.SwipeInput{
			TripID:       req.TripID,
			AttractionID: req.AttractionID,
			IsLiked:      req.IsLiked,
		},
	})
	if err != nil {
		h.log(r.Context(), "Create", "trip_id", req.TripID).ErrorContext(r.Context(), "failed to record swipe", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	resp := swipeResponse{
		ID:           swipe.ID,
		TripID:       swipe.TripID,
		AttractionID: swipe.AttractionID,
		IsLiked:      swipe.IsLiked,
	}
	if assignment != nil {
		resp.Assignment = &assignmentResponse{
			DayNumber: assignment.DayNumber,
			TimeSlot:  assignment.TimeSlot,
		}
	}
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, resp)
}

func (h *SwipeHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	tripID := r.URL.Query().Get("trip_id")
	if tripID == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingTripID)
		return
	}

	likes, err := h.service.ListLikes(r.Context(), principal, tripID)
	if err != nil {
		if !errors.Is(err, application.ErrNotFound) {
			h.log(r.Context(), "ListLikes", "trip_id", tripID).ErrorContext(r.Context(), "failed to list likes", "error", err, "error_kind", application.ErrorKind(err))
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	responses := make([]swipeResponse, 0, len(likes))
	for _, like := range likes {
		responses = append(responses, swipeResponse{
			ID:           like.ID,
			TripID:       like.TripID,
			AttractionID: like.AttractionID,
			IsLiked:      like.IsLiked,
		})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, responses)
}

type swipeRequest struct {
	TripID       string `json:"trip_id"`
	AttractionID string `json:"attraction_id"`
	IsLiked      bool   `json:"is_liked"`
}

type swipeResponse struct {
	ID           string              `json:"id"`
	TripID       string              `json:"trip_id"`
	AttractionID string              `json:"attraction_id"`
	IsLiked      bool                `json:"is_liked"`
	Assignment   *assignmentResponse `json:"assignment,omitempty"`
}

type assignmentResponse struct {
	DayNumber int    `json:"day_number"`
	TimeSlot  string `json:"time_slot"`
}
