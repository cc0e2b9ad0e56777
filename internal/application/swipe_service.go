package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/travel-planner/internal/persistence"
	"github.com/example/travel-planner/internal/planner"
)

// SwipeService records like/pass decisions and grows the itinerary from likes.
type SwipeService struct {
	trips       persistence.TripRepository
	attractions persistence.AttractionRepository
	swipes      persistence.SwipeRepository
	itinerary   persistence.ItineraryRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewSwipeService wires dependencies for swipe recording.
func NewSwipeService(
	trips persistence.TripRepository,
	attractions persistence.AttractionRepository,
	swipes persistence.SwipeRepository,
	itinerary persistence.ItineraryRepository,
	idGenerator func() string,
	now func() time.Time,
) *SwipeService {
	return NewSwipeServiceWithLogger(trips, attractions, swipes, itinerary, idGenerator, now, nil)
}

// NewSwipeServiceWithLogger constructs a SwipeService with a specified logger.
func NewSwipeServiceWithLogger(
	trips persistence.TripRepository,
	attractions persistence.AttractionRepository,
	swipes persistence.SwipeRepository,
	itinerary persistence.ItineraryRepository,
	idGenerator func() string,
	now func() time.Time,
	logger *slog.Logger,
) *SwipeService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &SwipeService{
		trips:       trips,
		attractions: attractions,
		swipes:      swipes,
		itinerary:   itinerary,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

func (s *SwipeService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SwipeService", operation, attrs...)
}

// RecordSwipe upserts the decision for (trip, attraction, user). A like also
// appends the attraction to the trip itinerary at the next free slot: the n-th
// like of the trip lands on day (n-1)/4+1 at the (n-1)%4-th daily slot.
// Returns the slot assignment when the swipe produced a new itinerary item,
// nil otherwise.
func (s *SwipeService) RecordSwipe(ctx context.Context, params RecordSwipeParams) (persistence.Swipe, *planner.Assignment, error) {
	if s == nil || s.swipes == nil {
		return persistence.Swipe{}, nil, fmt.Errorf("swipe repository not configured")
	}

	input := params.Input
	principal := params.Principal

	if principal.UserID == "" {
		return persistence.Swipe{}, nil, ErrUnauthorized
	}

	vErr := &ValidationError{}
	if input.TripID == "" {
		vErr.add("trip_id", "trip id is required")
	}
	if input.AttractionID == "" {
		vErr.add("attraction_id", "attraction id is required")
	}
	if vErr.HasErrors() {
		return persistence.Swipe{}, nil, vErr
	}

	trip, err := s.trips.GetTrip(ctx, input.TripID)
	if err != nil {
		return persistence.Swipe{}, nil, mapRepoError(err)
	}
	if trip.UserID != principal.UserID {
		return persistence.Swipe{}, nil, ErrNotFound
	}

	if _, err := s.attractions.GetAttraction(ctx, input.AttractionID); err != nil {
		return persistence.Swipe{}, nil, mapRepoError(err)
	}

	logger := s.loggerWith(ctx, "RecordSwipe",
		"trip_id", input.TripID, "attraction_id", input.AttractionID, "liked", input.IsLiked)

	swipe := persistence.Swipe{
		ID:           s.idGenerator(),
		TripID:       input.TripID,
		AttractionID: input.AttractionID,
		UserID:       principal.UserID,
		IsLiked:      input.IsLiked,
		CreatedAt:    s.now().UTC(),
	}
	stored, err := s.swipes.UpsertSwipe(ctx, swipe)
	if err != nil {
		logger.ErrorContext(ctx, "failed to record swipe", "error", err, "error_kind", ErrorKind(err))
		return persistence.Swipe{}, nil, mapRepoError(err)
	}

	if !input.IsLiked {
		logger.InfoContext(ctx, "swipe recorded")
		return stored, nil, nil
	}

	assignment, err := s.appendLikeToItinerary(ctx, trip, input.AttractionID, principal.UserID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to extend itinerary", "error", err, "error_kind", ErrorKind(err))
		return persistence.Swipe{}, nil, err
	}
	if assignment != nil {
		logger.InfoContext(ctx, "swipe recorded and itinerary extended",
			"day_number", assignment.DayNumber, "time_slot", assignment.TimeSlot)
	} else {
		logger.InfoContext(ctx, "swipe recorded, itinerary item already present")
	}
	return stored, assignment, nil
}

// appendLikeToItinerary creates the itinerary item for a liked attraction.
// Re-liking an attraction that already has an item is a no-op.
func (s *SwipeService) appendLikeToItinerary(ctx context.Context, trip persistence.Trip, attractionID, userID string) (*planner.Assignment, error) {
	exists, err := s.itinerary.ItemExistsForAttraction(ctx, trip.ID, attractionID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if exists {
		return nil, nil
	}

	// The upsert above already counts, so the total equals this like's ordinal.
	ordinal, err := s.swipes.CountLikedSwipes(ctx, trip.ID, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	assignment, err := planner.AssignSlot(ordinal)
	if err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	attractionRef := attractionID
	startTime := assignment.TimeSlot
	item := persistence.ItineraryItem{
		ID:           s.idGenerator(),
		TripID:       trip.ID,
		AttractionID: &attractionRef,
		DayNumber:    assignment.DayNumber,
		StartTime:    &startTime,
		OrderIndex:   assignment.SlotIndex(),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := s.itinerary.CreateItem(ctx, item); err != nil {
		return nil, mapRepoError(err)
	}
	return &assignment, nil
}

// ListLikes returns the trip's liked swipes in the order they were made.
func (s *SwipeService) ListLikes(ctx context.Context, principal Principal, tripID string) ([]persistence.Swipe, error) {
	if s == nil || s.swipes == nil {
		return nil, fmt.Errorf("swipe repository not configured")
	}

	trip, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if trip.UserID != principal.UserID {
		return nil, ErrNotFound
	}

	likes, err := s.swipes.ListLikedSwipes(ctx, tripID, principal.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return likes, nil
}
