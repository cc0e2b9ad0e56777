package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// dateLayout stores trip dates without time components.
const dateLayout = "2006-01-02"

// TripRepository implements persistence.TripRepository using SQLite.
type TripRepository struct {
	pool   *ConnectionPool
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewTripRepository creates a new SQLite trip repository.
func NewTripRepository(pool *ConnectionPool) *TripRepository {
	return &TripRepository{
		pool:   pool,
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// CreateTrip inserts a new trip.
func (r *TripRepository) CreateTrip(ctx context.Context, trip persistence.Trip) error {
	if trip.ID == "" || trip.UserID == "" {
		return persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = now
	}
	trip.UpdatedAt = now

	query := `
		INSERT INTO trips (id, user_id, name, destination, start_date, end_date, budget_limit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.helper.Exec(ctx, query,
		trip.ID,
		trip.UserID,
		trip.Name,
		trip.Destination,
		trip.StartDate.Format(dateLayout),
		trip.EndDate.Format(dateLayout),
		trip.BudgetLimit,
		trip.CreatedAt.Format(time.RFC3339),
		trip.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return r.mapper.MapError(err)
	}

	return nil
}

// GetTrip retrieves a trip by ID.
func (r *TripRepository) GetTrip(ctx context.Context, id string) (persistence.Trip, error) {
	if id == "" {
		return persistence.Trip{}, persistence.ErrNotFound
	}

	query := `
		SELECT id, user_id, name, destination, start_date, end_date, budget_limit, created_at, updated_at
		FROM trips
		WHERE id = ?
	`

	trip, err := scanTrip(r.helper.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Trip{}, persistence.ErrNotFound
		}
		return persistence.Trip{}, r.mapper.MapError(err)
	}

	return trip, nil
}

// ListTripsByUser returns the user's trips ordered newest first.
func (r *TripRepository) ListTripsByUser(ctx context.Context, userID string) ([]persistence.Trip, error) {
	query := `
		SELECT id, user_id, name, destination, start_date, end_date, budget_limit, created_at, updated_at
		FROM trips
		WHERE user_id = ?
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.helper.Query(ctx, query, userID)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var trips []persistence.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, r.mapper.MapError(err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return trips, nil
}

func scanTrip(row rowScanner) (persistence.Trip, error) {
	var trip persistence.Trip
	var startStr, endStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Name,
		&trip.Destination,
		&startStr,
		&endStr,
		&trip.BudgetLimit,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.Trip{}, err
	}

	if trip.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return persistence.Trip{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	if trip.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return persistence.Trip{}, fmt.Errorf("failed to parse end_date: %w", err)
	}
	if trip.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Trip{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if trip.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.Trip{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return trip, nil
}
