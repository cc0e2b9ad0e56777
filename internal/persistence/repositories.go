package persistence

import "context"

// UserRepository exposes CRUD operations for traveler accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

// SessionRepository stores authentication session state.
type SessionRepository interface {
	CreateSession(ctx context.Context, session Session) (Session, error)
	GetSession(ctx context.Context, token string) (Session, error)
	RevokeSession(ctx context.Context, token string) (Session, error)
	DeleteExpiredSessions(ctx context.Context) error
}

// TripRepository exposes operations for trips.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip Trip) error
	GetTrip(ctx context.Context, id string) (Trip, error)
	ListTripsByUser(ctx context.Context, userID string) ([]Trip, error)
}

// AttractionFilter narrows catalog queries. A zero Limit applies the
// repository default.
type AttractionFilter struct {
	Destination string
	Category    string
	Limit       int
}

// AttractionRepository exposes read operations for the swipe catalog plus the
// inserts used by seeding.
type AttractionRepository interface {
	CreateAttraction(ctx context.Context, attraction Attraction) error
	GetAttraction(ctx context.Context, id string) (Attraction, error)
	ListAttractions(ctx context.Context, filter AttractionFilter) ([]Attraction, error)
}

// SwipeRepository stores like/pass decisions. UpsertSwipe overwrites any
// previous decision for the same (trip, attraction, user) triple.
type SwipeRepository interface {
	UpsertSwipe(ctx context.Context, swipe Swipe) (Swipe, error)
	GetSwipe(ctx context.Context, tripID, attractionID, userID string) (Swipe, error)
	ListLikedSwipes(ctx context.Context, tripID, userID string) ([]Swipe, error)
	CountLikedSwipes(ctx context.Context, tripID, userID string) (int, error)
}

// ItineraryFilter narrows itinerary queries to one trip and optionally one day.
type ItineraryFilter struct {
	TripID string
	Day    *int
}

// ItineraryRepository stores the scheduled plan entries of a trip.
type ItineraryRepository interface {
	CreateItem(ctx context.Context, item ItineraryItem) error
	ListItems(ctx context.Context, filter ItineraryFilter) ([]ItineraryItem, error)
	ItemExistsForAttraction(ctx context.Context, tripID, attractionID string) (bool, error)
}
