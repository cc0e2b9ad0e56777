package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// SwipeRepository implements persistence.SwipeRepository using SQLite.
type SwipeRepository struct {
	pool   *ConnectionPool
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewSwipeRepository creates a new SQLite swipe repository.
func NewSwipeRepository(pool *ConnectionPool) *SwipeRepository {
	return &SwipeRepository{
		pool:   pool,
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// UpsertSwipe records a decision, overwriting any previous swipe for the same
// (trip, attraction, user) triple. The stored row is returned.
func (r *SwipeRepository) UpsertSwipe(ctx context.Context, swipe persistence.Swipe) (persistence.Swipe, error) {
	if swipe.ID == "" || swipe.TripID == "" || swipe.AttractionID == "" || swipe.UserID == "" {
		return persistence.Swipe{}, persistence.ErrConstraintViolation
	}

	if swipe.CreatedAt.IsZero() {
		swipe.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO swipes (id, trip_id, attraction_id, user_id, is_liked, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (trip_id, attraction_id, user_id)
		DO UPDATE SET is_liked = excluded.is_liked
	`

	_, err := r.helper.Exec(ctx, query,
		swipe.ID,
		swipe.TripID,
		swipe.AttractionID,
		swipe.UserID,
		boolToInt(swipe.IsLiked),
		swipe.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return persistence.Swipe{}, r.mapper.MapError(err)
	}

	return r.GetSwipe(ctx, swipe.TripID, swipe.AttractionID, swipe.UserID)
}

// GetSwipe retrieves the decision recorded for an attraction within a trip.
func (r *SwipeRepository) GetSwipe(ctx context.Context, tripID, attractionID, userID string) (persistence.Swipe, error) {
	query := `
		SELECT id, trip_id, attraction_id, user_id, is_liked, created_at
		FROM swipes
		WHERE trip_id = ? AND attraction_id = ? AND user_id = ?
	`

	swipe, err := scanSwipe(r.helper.QueryRow(ctx, query, tripID, attractionID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Swipe{}, persistence.ErrNotFound
		}
		return persistence.Swipe{}, r.mapper.MapError(err)
	}

	return swipe, nil
}

// ListLikedSwipes returns the trip's likes in swipe order.
func (r *SwipeRepository) ListLikedSwipes(ctx context.Context, tripID, userID string) ([]persistence.Swipe, error) {
	query := `
		SELECT id, trip_id, attraction_id, user_id, is_liked, created_at
		FROM swipes
		WHERE trip_id = ? AND user_id = ? AND is_liked = 1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.helper.Query(ctx, query, tripID, userID)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var swipes []persistence.Swipe
	for rows.Next() {
		swipe, err := scanSwipe(rows)
		if err != nil {
			return nil, r.mapper.MapError(err)
		}
		swipes = append(swipes, swipe)
	}
	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return swipes, nil
}

// CountLikedSwipes returns the number of likes recorded for the trip.
func (r *SwipeRepository) CountLikedSwipes(ctx context.Context, tripID, userID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM swipes
		WHERE trip_id = ? AND user_id = ? AND is_liked = 1
	`

	var count int
	if err := r.helper.QueryRow(ctx, query, tripID, userID).Scan(&count); err != nil {
		return 0, r.mapper.MapError(err)
	}

	return count, nil
}

func scanSwipe(row rowScanner) (persistence.Swipe, error) {
	var swipe persistence.Swipe
	var isLiked int
	var createdAtStr string

	err := row.Scan(
		&swipe.ID,
		&swipe.TripID,
		&swipe.AttractionID,
		&swipe.UserID,
		&isLiked,
		&createdAtStr,
	)
	if err != nil {
		return persistence.Swipe{}, err
	}

	swipe.IsLiked = isLiked != 0
	if swipe.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Swipe{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return swipe, nil
}
