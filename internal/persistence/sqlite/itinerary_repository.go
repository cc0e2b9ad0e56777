package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// ItineraryRepository implements persistence.ItineraryRepository using SQLite.
type ItineraryRepository struct {
	pool   *ConnectionPool
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewItineraryRepository creates a new SQLite itinerary repository.
func NewItineraryRepository(pool *ConnectionPool) *ItineraryRepository {
	return &ItineraryRepository{
		pool:   pool,
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// CreateItem inserts a plan entry.
func (r *ItineraryRepository) CreateItem(ctx context.Context, item persistence.ItineraryItem) error {
	if item.ID == "" || item.TripID == "" {
		return persistence.ErrConstraintViolation
	}
	if item.DayNumber < 1 {
		return persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	query := `
		INSERT INTO itinerary_items (
			id, trip_id, attraction_id, day_number, start_time,
			duration_minutes, order_index, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.helper.Exec(ctx, query,
		item.ID,
		item.TripID,
		item.AttractionID,
		item.DayNumber,
		item.StartTime,
		item.DurationMinutes,
		item.OrderIndex,
		item.Notes,
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return r.mapper.MapError(err)
	}

	return nil
}

// ListItems returns plan entries for a trip ordered by day then slot order.
func (r *ItineraryRepository) ListItems(ctx context.Context, filter persistence.ItineraryFilter) ([]persistence.ItineraryItem, error) {
	query := `
		SELECT id, trip_id, attraction_id, day_number, start_time,
			duration_minutes, order_index, notes, created_at, updated_at
		FROM itinerary_items
		WHERE trip_id = ?
	`
	args := []any{filter.TripID}

	if filter.Day != nil {
		query += " AND day_number = ?"
		args = append(args, *filter.Day)
	}
	query += " ORDER BY day_number ASC, order_index ASC, id ASC"

	rows, err := r.helper.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var items []persistence.ItineraryItem
	for rows.Next() {
		item, err := scanItineraryItem(rows)
		if err != nil {
			return nil, r.mapper.MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return items, nil
}

// ItemExistsForAttraction reports whether the trip already schedules the
// attraction. Used to keep repeated likes from duplicating plan entries.
func (r *ItineraryRepository) ItemExistsForAttraction(ctx context.Context, tripID, attractionID string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM itinerary_items
		WHERE trip_id = ? AND attraction_id = ?
	`

	var count int
	if err := r.helper.QueryRow(ctx, query, tripID, attractionID).Scan(&count); err != nil {
		return false, r.mapper.MapError(err)
	}

	return count > 0, nil
}

func scanItineraryItem(row rowScanner) (persistence.ItineraryItem, error) {
	var item persistence.ItineraryItem
	var attractionID, startTime, notes sql.NullString
	var durationMinutes sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&item.ID,
		&item.TripID,
		&attractionID,
		&item.DayNumber,
		&startTime,
		&durationMinutes,
		&item.OrderIndex,
		&notes,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.ItineraryItem{}, err
	}

	item.AttractionID = nullableString(attractionID)
	item.StartTime = nullableString(startTime)
	item.Notes = nullableString(notes)
	if durationMinutes.Valid {
		minutes := int(durationMinutes.Int64)
		item.DurationMinutes = &minutes
	}

	if item.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.ItineraryItem{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.ItineraryItem{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return item, nil
}
