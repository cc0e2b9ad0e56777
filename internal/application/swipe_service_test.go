package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

func newSwipeFixture(likeCount int) (*tripRepositoryStub, *attractionRepositoryStub, *swipeRepositoryStub, *itineraryRepositoryStub, *SwipeService) {
	trips := newTripRepositoryStub(persistence.Trip{ID: "trip-1", UserID: "user-1"})
	attractions := newAttractionRepositoryStub(persistence.Attraction{ID: "attr-1", Name: "Senso-ji"})
	swipes := &swipeRepositoryStub{likeCount: likeCount}
	itinerary := &itineraryRepositoryStub{}

	ids := 0
	svc := NewSwipeService(trips, attractions, swipes, itinerary,
		func() string { ids++; return fmt.Sprintf("id-%d", ids) },
		func() time.Time { return time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC) },
	)
	return trips, attractions, swipes, itinerary, svc
}

func TestSwipeService_RecordSwipe(t *testing.T) {
	t.Parallel()

	t.Run("a like appends the attraction to the next free slot", func(t *testing.T) {
		t.Parallel()

		_, _, swipes, itinerary, svc := newSwipeFixture(5)

		swipe, assignment, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
			Input:     SwipeInput{TripID: "trip-1", AttractionID: "attr-1", IsLiked: true},
		})
		if err != nil {
			t.Fatalf("RecordSwipe failed: %v", err)
		}
		if !swipe.IsLiked {
			t.Fatalf("expected liked swipe, got %#v", swipe)
		}
		if assignment == nil {
			t.Fatal("expected a slot assignment for a fresh like")
		}
		// Fifth like of the trip: day 2, first slot of the day.
		if assignment.DayNumber != 2 || assignment.TimeSlot != "09:00" {
			t.Fatalf("unexpected assignment %#v", assignment)
		}
		if len(swipes.swipes) != 1 {
			t.Fatalf("expected one recorded swipe, got %d", len(swipes.swipes))
		}
		if len(itinerary.items) != 1 {
			t.Fatalf("expected one itinerary item, got %d", len(itinerary.items))
		}
		item := itinerary.items[0]
		if item.DayNumber != 2 || item.OrderIndex != 0 {
			t.Fatalf("unexpected item placement %#v", item)
		}
		if item.StartTime == nil || *item.StartTime != "09:00" {
			t.Fatalf("expected start time 09:00, got %#v", item.StartTime)
		}
		if item.AttractionID == nil || *item.AttractionID != "attr-1" {
			t.Fatalf("expected attraction reference, got %#v", item.AttractionID)
		}
	})

	t.Run("a pass records the swipe without touching the itinerary", func(t *testing.T) {
		t.Parallel()

		_, _, swipes, itinerary, svc := newSwipeFixture(0)

		_, assignment, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
			Input:     SwipeInput{TripID: "trip-1", AttractionID: "attr-1", IsLiked: false},
		})
		if err != nil {
			t.Fatalf("RecordSwipe failed: %v", err)
		}
		if assignment != nil {
			t.Fatalf("expected no assignment for a pass, got %#v", assignment)
		}
		if len(swipes.swipes) != 1 || len(itinerary.items) != 0 {
			t.Fatalf("unexpected state: %d swipes, %d items", len(swipes.swipes), len(itinerary.items))
		}
	})

	t.Run("re-liking an already planned attraction does not duplicate the item", func(t *testing.T) {
		t.Parallel()

		_, _, _, itinerary, svc := newSwipeFixture(3)
		itinerary.exists = true

		_, assignment, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
			Input:     SwipeInput{TripID: "trip-1", AttractionID: "attr-1", IsLiked: true},
		})
		if err != nil {
			t.Fatalf("RecordSwipe failed: %v", err)
		}
		if assignment != nil {
			t.Fatalf("expected no assignment for an existing item, got %#v", assignment)
		}
		if len(itinerary.items) != 0 {
			t.Fatalf("expected no new itinerary item, got %d", len(itinerary.items))
		}
	})

	t.Run("hides trips owned by other travelers", func(t *testing.T) {
		t.Parallel()

		trips, _, _, _, svc := newSwipeFixture(0)
		trips.trips["trip-1"] = persistence.Trip{ID: "trip-1", UserID: "someone-else"}

		_, _, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
			Input:     SwipeInput{TripID: "trip-1", AttractionID: "attr-1", IsLiked: true},
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rejects unknown attractions", func(t *testing.T) {
		t.Parallel()

		_, _, _, _, svc := newSwipeFixture(0)

		_, _, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
			Input:     SwipeInput{TripID: "trip-1", AttractionID: "absent", IsLiked: true},
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("collects field validation errors", func(t *testing.T) {
		t.Parallel()

		_, _, _, _, svc := newSwipeFixture(0)
		_, _, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
		})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := vErr.FieldErrors["trip_id"]; !ok {
			t.Fatalf("expected trip_id error, got %#v", vErr.FieldErrors)
		}
		if _, ok := vErr.FieldErrors["attraction_id"]; !ok {
			t.Fatalf("expected attraction_id error, got %#v", vErr.FieldErrors)
		}
	})

	t.Run("propagates upsert failures", func(t *testing.T) {
		t.Parallel()

		expected := errors.New("boom")
		_, _, swipes, _, svc := newSwipeFixture(0)
		swipes.upsertErr = expected

		_, _, err := svc.RecordSwipe(context.Background(), RecordSwipeParams{
			Principal: Principal{UserID: "user-1"},
			Input:     SwipeInput{TripID: "trip-1", AttractionID: "attr-1", IsLiked: true},
		})
		if !errors.Is(err, expected) {
			t.Fatalf("expected %v, got %v", expected, err)
		}
	})
}

func TestSwipeService_ListLikes(t *testing.T) {
	t.Parallel()

	t.Run("returns only liked swipes for the trip", func(t *testing.T) {
		t.Parallel()

		_, _, swipes, _, svc := newSwipeFixture(0)
		swipes.swipes = []persistence.Swipe{
			{ID: "s-1", TripID: "trip-1", UserID: "user-1", AttractionID: "attr-1", IsLiked: true},
			{ID: "s-2", TripID: "trip-1", UserID: "user-1", AttractionID: "attr-2", IsLiked: false},
		}

		likes, err := svc.ListLikes(context.Background(), Principal{UserID: "user-1"}, "trip-1")
		if err != nil {
			t.Fatalf("ListLikes failed: %v", err)
		}
		if len(likes) != 1 || likes[0].ID != "s-1" {
			t.Fatalf("unexpected likes %#v", likes)
		}
	})

	t.Run("hides trips owned by other travelers", func(t *testing.T) {
		t.Parallel()

		trips, _, _, _, svc := newSwipeFixture(0)
		trips.trips["trip-1"] = persistence.Trip{ID: "trip-1", UserID: "someone-else"}

		_, err := svc.ListLikes(context.Background(), Principal{UserID: "user-1"}, "trip-1")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
