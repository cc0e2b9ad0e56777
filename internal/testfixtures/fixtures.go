package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

var (
	userCounter       uint64
	tripCounter       uint64
	attractionCounter uint64
)

var referenceTime = time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// UserOption configures a generated user record.
type UserOption func(*persistence.User)

// NewUser returns a deterministic user record with optional overrides.
func NewUser(opts ...UserOption) persistence.User {
	idx := atomic.AddUint64(&userCounter, 1)
	id := fmt.Sprintf("user-%03d", idx)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	user := persistence.User{
		ID:           id,
		Email:        fmt.Sprintf("%s@example.com", id),
		DisplayName:  fmt.Sprintf("Traveler %03d", idx),
		PasswordHash: fmt.Sprintf("hash-%03d", idx),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	for _, opt := range opts {
		opt(&user)
	}
	return user
}

// TripOption configures a generated trip record.
type TripOption func(*persistence.Trip)

// NewTrip returns a deterministic week-long trip with optional overrides.
func NewTrip(opts ...TripOption) persistence.Trip {
	idx := atomic.AddUint64(&tripCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	start := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	trip := persistence.Trip{
		ID:          fmt.Sprintf("trip-%03d", idx),
		UserID:      "user-001",
		Name:        fmt.Sprintf("Trip %03d", idx),
		Destination: "Tokyo",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 6),
		BudgetLimit: 1000,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	for _, opt := range opts {
		opt(&trip)
	}
	return trip
}

// WithTripOwner overrides the trip's owning user.
func WithTripOwner(userID string) TripOption {
	return func(t *persistence.Trip) { t.UserID = userID }
}

// AttractionOption configures a generated attraction record.
type AttractionOption func(*persistence.Attraction)

// NewAttraction returns a deterministic catalog entry with optional overrides.
func NewAttraction(opts ...AttractionOption) persistence.Attraction {
	idx := atomic.AddUint64(&attractionCounter, 1)
	created := referenceTime.Add(time.Duration(idx) * time.Minute)
	attraction := persistence.Attraction{
		ID:          fmt.Sprintf("attraction-%03d", idx),
		Name:        fmt.Sprintf("Attraction %03d", idx),
		Destination: "Tokyo",
		Category:    "Adventure",
		Rating:      4.5,
		ReviewCount: 100,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	for _, opt := range opts {
		opt(&attraction)
	}
	return attraction
}

// WithOpeningHours sets the attraction's weekly hours entries.
func WithOpeningHours(entries ...string) AttractionOption {
	return func(a *persistence.Attraction) { a.OpeningHours = entries }
}
