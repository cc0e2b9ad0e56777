package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/travel-planner/internal/application"
	"github.com/example/travel-planner/internal/persistence"
)

// DemoUserID is the fixed account used when demo mode is enabled; the seeded
// demo trip belongs to it.
const DemoUserID = "00000000-0000-0000-0000-000000000001"

// DemoUserEmail and DemoUserPassword are the demo account's login
// credentials.
const (
	DemoUserEmail    = "demo@navi.example"
	DemoUserPassword = "demo-password"
)

// Seeder populates the database with the demo account, a starter trip, and
// the Tokyo attraction catalog.
type Seeder struct {
	users       persistence.UserRepository
	trips       persistence.TripRepository
	attractions persistence.AttractionRepository
	now         func() time.Time
	logger      *slog.Logger
}

func New(users persistence.UserRepository, trips persistence.TripRepository, attractions persistence.AttractionRepository, now func() time.Time, logger *slog.Logger) *Seeder {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		users:       users,
		trips:       trips,
		attractions: attractions,
		now:         now,
		logger:      logger,
	}
}

// Run seeds everything. It is idempotent: records that already exist are left
// untouched.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedDemoUser(ctx); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	if err := s.seedAttractions(ctx); err != nil {
		return fmt.Errorf("seed attractions: %w", err)
	}
	if err := s.seedDemoTrip(ctx); err != nil {
		return fmt.Errorf("seed demo trip: %w", err)
	}
	return nil
}

func (s *Seeder) seedDemoUser(ctx context.Context) error {
	_, err := s.users.GetUserByEmail(ctx, DemoUserEmail)
	if err == nil {
		s.logger.InfoContext(ctx, "demo user already present")
		return nil
	}
	if !errors.Is(err, persistence.ErrNotFound) {
		return err
	}

	hash, err := application.CreatePasswordHash(DemoUserPassword, application.DefaultArgon2idParams)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	user := persistence.User{
		ID:           DemoUserID,
		Email:        DemoUserEmail,
		DisplayName:  "Demo Traveler",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "demo user created", "email", DemoUserEmail)
	return nil
}

func (s *Seeder) seedAttractions(ctx context.Context) error {
	existing, err := s.attractions.ListAttractions(ctx, persistence.AttractionFilter{Destination: "Tokyo", Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "attraction catalog already present")
		return nil
	}

	now := s.now().UTC()
	count := 0
	for _, attraction := range tokyoAttractions() {
		attraction.ID = uuid.NewString()
		attraction.CreatedAt = now
		attraction.UpdatedAt = now
		if err := s.attractions.CreateAttraction(ctx, attraction); err != nil {
			return fmt.Errorf("insert %q: %w", attraction.Name, err)
		}
		count++
	}
	s.logger.InfoContext(ctx, "attraction catalog seeded", "count", count)
	return nil
}

func (s *Seeder) seedDemoTrip(ctx context.Context) error {
	trips, err := s.trips.ListTripsByUser(ctx, DemoUserID)
	if err != nil {
		return err
	}
	for _, trip := range trips {
		if trip.Name == "Tokyo Fall" {
			s.logger.InfoContext(ctx, "demo trip already present")
			return nil
		}
	}

	now := s.now().UTC()
	// October 12 of the current year, or next year once October has passed.
	start := time.Date(now.Year(), time.October, 12, 0, 0, 0, 0, time.UTC)
	if now.After(start) {
		start = start.AddDate(1, 0, 0)
	}

	trip := persistence.Trip{
		ID:          uuid.NewString(),
		UserID:      DemoUserID,
		Name:        "Tokyo Fall",
		Destination: "Tokyo",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 8),
		BudgetLimit: 1200,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.trips.CreateTrip(ctx, trip); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "demo trip created", "trip_id", trip.ID)
	return nil
}
