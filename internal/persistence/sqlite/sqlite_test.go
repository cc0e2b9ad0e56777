package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/travel-planner/internal/persistence"
)

func newTestPool(t *testing.T) *ConnectionPool {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	pool, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Close()
	})

	require.NoError(t, Migrate(context.Background(), pool))

	return pool
}

func seedUser(t *testing.T, pool *ConnectionPool, id, email string) persistence.User {
	t.Helper()

	user := persistence.User{
		ID:           id,
		Email:        email,
		DisplayName:  "Test Traveler",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(pool).CreateUser(context.Background(), user))

	return user
}

func seedTrip(t *testing.T, pool *ConnectionPool, id, userID string) persistence.Trip {
	t.Helper()

	trip := persistence.Trip{
		ID:          id,
		UserID:      userID,
		Name:        "Tokyo Fall",
		Destination: "Tokyo",
		StartDate:   time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC),
		BudgetLimit: 1200,
	}
	require.NoError(t, NewTripRepository(pool).CreateTrip(context.Background(), trip))

	return trip
}

func seedAttraction(t *testing.T, pool *ConnectionPool, id string, hours []string) persistence.Attraction {
	t.Helper()

	attraction := persistence.Attraction{
		ID:           id,
		Name:         "Attraction " + id,
		Destination:  "Tokyo",
		Category:     "Culture",
		Rating:       4.5,
		ReviewCount:  100,
		OpeningHours: hours,
	}
	require.NoError(t, NewAttractionRepository(pool).CreateAttraction(context.Background(), attraction))

	return attraction
}
