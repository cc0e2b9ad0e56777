package persistence

import "time"

// User represents a traveler account.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session represents an authentication session persisted for a user.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	RevokedAt *time.Time
}

// Trip represents a planned journey owned by a user.
type Trip struct {
	ID          string
	UserID      string
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	BudgetLimit float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Attraction represents a place in the swipe catalog. OpeningHours holds the
// raw weekly entries as supplied by the catalog provider; the planner package
// interprets them and tolerates malformed lines.
type Attraction struct {
	ID              string
	Name            string
	Destination     string
	Category        string
	Rating          float64
	ReviewCount     int
	PricePoint      *string
	ImageURL        *string
	Description     *string
	ScoutTip        *string
	IsLocalFavorite bool
	Lat             *float64
	Lng             *float64
	Views           int
	OpeningHours    []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Swipe represents a recorded like or pass for an attraction within a trip.
// One row exists per (trip, attraction, user); repeated swipes overwrite it.
type Swipe struct {
	ID           string
	TripID       string
	AttractionID string
	UserID       string
	IsLiked      bool
	CreatedAt    time.Time
}

// ItineraryItem represents one scheduled entry of a trip plan.
type ItineraryItem struct {
	ID              string
	TripID          string
	AttractionID    *string
	DayNumber       int
	StartTime       *string
	DurationMinutes *int
	OrderIndex      int
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
