package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/example/travel-planner/internal/persistence"
	"github.com/example/travel-planner/internal/planner"
)

// ItineraryService reads and extends trip plans and evaluates opening-hours
// warnings for scheduled visits.
type ItineraryService struct {
	trips       persistence.TripRepository
	attractions persistence.AttractionRepository
	itinerary   persistence.ItineraryRepository
	idGenerator func() string
	now         func() time.Time
	warnings    *warningCache
	logger      *slog.Logger
}

// NewItineraryService wires dependencies for itinerary operations.
func NewItineraryService(
	trips persistence.TripRepository,
	attractions persistence.AttractionRepository,
	itinerary persistence.ItineraryRepository,
	idGenerator func() string,
	now func() time.Time,
	warningTTL time.Duration,
) *ItineraryService {
	return NewItineraryServiceWithLogger(trips, attractions, itinerary, idGenerator, now, warningTTL, nil)
}

// NewItineraryServiceWithLogger constructs an ItineraryService with a specified logger.
func NewItineraryServiceWithLogger(
	trips persistence.TripRepository,
	attractions persistence.AttractionRepository,
	itinerary persistence.ItineraryRepository,
	idGenerator func() string,
	now func() time.Time,
	warningTTL time.Duration,
	logger *slog.Logger,
) *ItineraryService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ItineraryService{
		trips:       trips,
		attractions: attractions,
		itinerary:   itinerary,
		idGenerator: idGenerator,
		now:         now,
		warnings:    newWarningCache(warningTTL, now),
		logger:      defaultLogger(logger),
	}
}

func (s *ItineraryService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ItineraryService", operation, attrs...)
}

// ItineraryView is an itinerary listing together with the opening-hours
// warnings computed for the listed items.
type ItineraryView struct {
	Items    []persistence.ItineraryItem
	Warnings []string
}

// ListItinerary returns a trip's plan ordered by day and slot, optionally
// narrowed to one day, along with opening-hours warnings for the returned
// items.
func (s *ItineraryService) ListItinerary(ctx context.Context, params ListItineraryParams) (ItineraryView, error) {
	if s == nil || s.itinerary == nil {
		return ItineraryView{}, fmt.Errorf("itinerary repository not configured")
	}

	vErr := &ValidationError{}
	if params.TripID == "" {
		vErr.add("trip_id", "trip id is required")
	}
	if params.Day != nil && *params.Day < 1 {
		vErr.add("day", "day must be 1 or greater")
	}
	if vErr.HasErrors() {
		return ItineraryView{}, vErr
	}

	trip, err := s.trips.GetTrip(ctx, params.TripID)
	if err != nil {
		return ItineraryView{}, mapRepoError(err)
	}
	if trip.UserID != params.Principal.UserID {
		return ItineraryView{}, ErrNotFound
	}

	items, err := s.itinerary.ListItems(ctx, persistence.ItineraryFilter{
		TripID: params.TripID,
		Day:    params.Day,
	})
	if err != nil {
		return ItineraryView{}, mapRepoError(err)
	}

	warnings, err := s.warningsForItems(ctx, trip, params.Day, items)
	if err != nil {
		logger := s.loggerWith(ctx, "ListItinerary", "trip_id", trip.ID)
		logger.ErrorContext(ctx, "failed to evaluate opening hours", "error", err, "error_kind", ErrorKind(err))
		return ItineraryView{}, err
	}

	return ItineraryView{Items: items, Warnings: warnings}, nil
}

// AddItem appends a manual entry to a trip plan.
func (s *ItineraryService) AddItem(ctx context.Context, params AddItineraryItemParams) (persistence.ItineraryItem, error) {
	if s == nil || s.itinerary == nil {
		return persistence.ItineraryItem{}, fmt.Errorf("itinerary repository not configured")
	}

	input := params.Input

	vErr := &ValidationError{}
	if input.TripID == "" {
		vErr.add("trip_id", "trip id is required")
	}
	if input.DayNumber < 1 {
		vErr.add("day_number", "day number must be 1 or greater")
	}
	if input.StartTime != nil {
		if _, ok := planner.ParseClock(*input.StartTime); !ok {
			vErr.add("start_time", "start time must be in HH:MM form")
		}
	}
	if input.DurationMinutes != nil && *input.DurationMinutes < 0 {
		vErr.add("duration_minutes", "duration must not be negative")
	}
	if input.OrderIndex < 0 {
		vErr.add("order_index", "order index must not be negative")
	}
	if vErr.HasErrors() {
		return persistence.ItineraryItem{}, vErr
	}

	trip, err := s.trips.GetTrip(ctx, input.TripID)
	if err != nil {
		return persistence.ItineraryItem{}, mapRepoError(err)
	}
	if trip.UserID != params.Principal.UserID {
		return persistence.ItineraryItem{}, ErrNotFound
	}

	if input.AttractionID != nil {
		if _, err := s.attractions.GetAttraction(ctx, *input.AttractionID); err != nil {
			return persistence.ItineraryItem{}, mapRepoError(err)
		}
	}

	createdAt := s.now().UTC()
	item := persistence.ItineraryItem{
		ID:              s.idGenerator(),
		TripID:          input.TripID,
		AttractionID:    input.AttractionID,
		DayNumber:       input.DayNumber,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		OrderIndex:      input.OrderIndex,
		Notes:           input.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}

	logger := s.loggerWith(ctx, "AddItem", "trip_id", trip.ID, "item_id", item.ID)
	if err := s.itinerary.CreateItem(ctx, item); err != nil {
		logger.ErrorContext(ctx, "failed to add itinerary item", "error", err, "error_kind", ErrorKind(err))
		return persistence.ItineraryItem{}, mapRepoError(err)
	}

	logger.InfoContext(ctx, "itinerary item added", "day_number", item.DayNumber)
	return item, nil
}

// warningsForItems evaluates every scheduled visit against the attraction's
// weekly hours. The sweep is memoized per trip listing for the cache TTL.
func (s *ItineraryService) warningsForItems(ctx context.Context, trip persistence.Trip, day *int, items []persistence.ItineraryItem) ([]string, error) {
	scheduled := lo.Filter(items, func(item persistence.ItineraryItem, _ int) bool {
		return item.AttractionID != nil && item.StartTime != nil
	})
	if len(scheduled) == 0 {
		return nil, nil
	}

	cacheKey := warningKey(trip.ID, day, len(scheduled))
	if cached, ok := s.warnings.get(cacheKey); ok {
		return cached, nil
	}

	attractionIDs := lo.Uniq(lo.Map(scheduled, func(item persistence.ItineraryItem, _ int) string {
		return *item.AttractionID
	}))

	byID := make(map[string]persistence.Attraction, len(attractionIDs))
	for _, id := range attractionIDs {
		attraction, err := s.attractions.GetAttraction(ctx, id)
		if err != nil {
			return nil, mapRepoError(err)
		}
		byID[id] = attraction
	}

	warnings := make([]string, 0)
	for _, item := range scheduled {
		attraction := byID[*item.AttractionID]
		at, ok := planner.ParseClock(*item.StartTime)
		if !ok {
			continue
		}
		weekday := trip.StartDate.AddDate(0, 0, item.DayNumber-1).Weekday()
		if message, conflict := planner.DescribeConflict(attraction.Name, attraction.OpeningHours, weekday, at); conflict {
			warnings = append(warnings, message)
		}
	}

	s.warnings.set(cacheKey, warnings)
	return warnings, nil
}

func warningKey(tripID string, day *int, itemCount int) string {
	if day == nil {
		return fmt.Sprintf("%s/all/%d", tripID, itemCount)
	}
	return fmt.Sprintf("%s/%d/%d", tripID, *day, itemCount)
}
