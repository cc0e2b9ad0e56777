package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/example/travel-planner/internal/application"
	"github.com/example/travel-planner/internal/persistence"
)

const dateLayout = "2006-01-02"

type tripService interface {
	CreateTrip(ctx context.Context, params application.CreateTripParams) (persistence.Trip, error)
	GetTrip(ctx context.Context, principal application.Principal, tripID string) (persistence.Trip, error)
	ListTrips(ctx context.Context, principal application.Principal) ([]persistence.Trip, error)
}

// TripHandler serves trip CRUD endpoints.
type TripHandler struct {
	service   tripService
	responder responder
	logger    *slog.Logger
}

func NewTripHandler(service tripService, logger *slog.Logger) *TripHandler {
	base := defaultLogger(logger)
	return &TripHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *TripHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "TripHandler", operation, attrs...)
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode trip request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	input, vErr := req.toInput()
	if vErr != nil {
		h.responder.handleServiceError(r.Context(), w, vErr)
		return
	}

	trip, err := h.service.CreateTrip(r.Context(), application.CreateTripParams{
		Principal: principal,
		Input:     input,
	})
	if err != nil {
		h.log(r.Context(), "Create").ErrorContext(r.Context(), "failed to create trip", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toTripResponse(trip))
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	tripID := chi.URLParam(r, "tripID")
	trip, err := h.service.GetTrip(r.Context(), principal, tripID)
	if err != nil {
		if !errors.Is(err, application.ErrNotFound) {
			h.log(r.Context(), "Get", "trip_id", tripID).ErrorContext(r.Context(), "failed to load trip", "error", err, "error_kind", application.ErrorKind(err))
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toTripResponse(trip))
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusUnauthorized, errMissingSessionToken)
		return
	}

	trips, err := h.service.ListTrips(r.Context(), principal)
	if err != nil {
		h.log(r.Context(), "List").ErrorContext(r.Context(), "failed to list trips", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	responses := make([]tripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, toTripResponse(trip))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, responses)
}

type tripRequest struct {
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	BudgetLimit float64 `json:"budget_limit"`
}

func (req tripRequest) toInput() (application.TripInput, *application.ValidationError) {
	vErr := &application.ValidationError{FieldErrors: map[string]string{}}

	var start, end time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			vErr.FieldErrors["start_date"] = "start date must be in YYYY-MM-DD form"
		} else {
			start = parsed
		}
	}
	if req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			vErr.FieldErrors["end_date"] = "end date must be in YYYY-MM-DD form"
		} else {
			end = parsed
		}
	}
	if len(vErr.FieldErrors) > 0 {
		return application.TripInput{}, vErr
	}

	return application.TripInput{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		BudgetLimit: req.BudgetLimit,
	}, nil
}

type tripResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	BudgetLimit float64 `json:"budget_limit"`
	CreatedAt   string  `json:"created_at"`
}

func toTripResponse(trip persistence.Trip) tripResponse {
	return tripResponse{
		ID:          trip.ID,
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   trip.StartDate.Format(dateLayout),
		EndDate:     trip.EndDate.Format(dateLayout),
		BudgetLimit: trip.BudgetLimit,
		CreatedAt:   trip.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
