package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// TripService orchestrates validation and persistence for trip operations.
type TripService struct {
	trips       persistence.TripRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewTripService wires dependencies for trip operations.
func NewTripService(trips persistence.TripRepository, idGenerator func() string, now func() time.Time) *TripService {
	return NewTripServiceWithLogger(trips, idGenerator, now, nil)
}

// NewTripServiceWithLogger constructs a TripService with a specified logger.
func NewTripServiceWithLogger(trips persistence.TripRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *TripService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &TripService{
		trips:       trips,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *TripService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "TripService", operation, attrs...)
}

// CreateTrip validates the request before delegating to persistence.
func (s *TripService) CreateTrip(ctx context.Context, params CreateTripParams) (persistence.Trip, error) {
	if s == nil || s.trips == nil {
		return persistence.Trip{}, fmt.Errorf("trip repository not configured")
	}

	input := params.Input
	principal := params.Principal

	if principal.UserID == "" {
		return persistence.Trip{}, ErrUnauthorized
	}

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if strings.TrimSpace(input.Destination) == "" {
		vErr.add("destination", "destination is required")
	}
	if input.StartDate.IsZero() {
		vErr.add("start_date", "start date is required")
	}
	if input.EndDate.IsZero() {
		vErr.add("end_date", "end date is required")
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		vErr.add("end_date", "end date must not precede start date")
	}
	if input.BudgetLimit < 0 {
		vErr.add("budget_limit", "budget limit must not be negative")
	}
	if vErr.HasErrors() {
		return persistence.Trip{}, vErr
	}

	createdAt := s.now().UTC()
	trip := persistence.Trip{
		ID:          s.idGenerator(),
		UserID:      principal.UserID,
		Name:        strings.TrimSpace(input.Name),
		Destination: strings.TrimSpace(input.Destination),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		BudgetLimit: input.BudgetLimit,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	logger := s.loggerWith(ctx, "CreateTrip", "trip_id", trip.ID, "user_id", principal.UserID)

	if err := s.trips.CreateTrip(ctx, trip); err != nil {
		logger.ErrorContext(ctx, "failed to create trip", "error", err, "error_kind", ErrorKind(err))
		return persistence.Trip{}, mapRepoError(err)
	}

	logger.InfoContext(ctx, "trip created", "destination", trip.Destination)
	return trip, nil
}

// GetTrip retrieves a trip owned by the principal. Trips belonging to other
// travelers surface as not found rather than forbidden.
func (s *TripService) GetTrip(ctx context.Context, principal Principal, tripID string) (persistence.Trip, error) {
	if s == nil || s.trips == nil {
		return persistence.Trip{}, fmt.Errorf("trip repository not configured")
	}

	trip, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return persistence.Trip{}, mapRepoError(err)
	}
	if trip.UserID != principal.UserID {
		return persistence.Trip{}, ErrNotFound
	}

	return trip, nil
}

// ListTrips returns the principal's trips ordered newest first.
func (s *TripService) ListTrips(ctx context.Context, principal Principal) ([]persistence.Trip, error) {
	if s == nil || s.trips == nil {
		return nil, fmt.Errorf("trip repository not configured")
	}
	if principal.UserID == "" {
		return nil, ErrUnauthorized
	}

	trips, err := s.trips.ListTripsByUser(ctx, principal.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return trips, nil
}

// mapRepoError translates persistence sentinels to application sentinels.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistence.ErrDuplicate):
		return ErrAlreadyExists
	default:
		return err
	}
}
