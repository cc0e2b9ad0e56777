package application

import "time"

// Principal identifies the traveler performing an operation.
type Principal struct {
	UserID string
}

// TripInput carries the caller-supplied fields of a trip.
type TripInput struct {
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	BudgetLimit float64
}

// CreateTripParams bundles the acting principal with the trip to create.
type CreateTripParams struct {
	Principal Principal
	Input     TripInput
}

// ListAttractionsParams narrows catalog queries for the swipe deck.
type ListAttractionsParams struct {
	Destination string
	Category    string
	Limit       int
}

// SwipeInput carries one like/pass decision.
type SwipeInput struct {
	TripID       string
	AttractionID string
	IsLiked      bool
}

// RecordSwipeParams bundles the acting principal with the swipe to record.
type RecordSwipeParams struct {
	Principal Principal
	Input     SwipeInput
}

// ItineraryItemInput carries a manually added plan entry.
type ItineraryItemInput struct {
	TripID          string
	AttractionID    *string
	DayNumber       int
	StartTime       *string
	DurationMinutes *int
	OrderIndex      int
	Notes           *string
}

// AddItineraryItemParams bundles the acting principal with the entry to add.
type AddItineraryItemParams struct {
	Principal Principal
	Input     ItineraryItemInput
}

// ListItineraryParams narrows itinerary queries to one trip and optionally
// one day.
type ListItineraryParams struct {
	Principal Principal
	TripID    string
	Day       *int
}

// AuthenticateParams carries login credentials.
type AuthenticateParams struct {
	Email    string
	Password string
}
