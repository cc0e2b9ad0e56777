package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/travel-planner/internal/persistence"
)

// defaultAttractionLimit bounds catalog queries when the caller supplies none.
const defaultAttractionLimit = 100

// AttractionRepository implements persistence.AttractionRepository using SQLite.
type AttractionRepository struct {
	pool   *ConnectionPool
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewAttractionRepository creates a new SQLite attraction repository.
func NewAttractionRepository(pool *ConnectionPool) *AttractionRepository {
	return &AttractionRepository{
		pool:   pool,
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// CreateAttraction inserts an attraction together with its opening-hours rows.
func (r *AttractionRepository) CreateAttraction(ctx context.Context, attraction persistence.Attraction) error {
	if attraction.ID == "" {
		return persistence.ErrConstraintViolation
	}

	now := time.Now().UTC()
	if attraction.CreatedAt.IsZero() {
		attraction.CreatedAt = now
	}
	attraction.UpdatedAt = now

	return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO attractions (
				id, name, destination, category, rating, review_count,
				price_point, image_url, description, scout_tip,
				is_local_favorite, lat, lng, views, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := r.helper.ExecTx(tx, query,
			attraction.ID,
			attraction.Name,
			attraction.Destination,
			attraction.Category,
			attraction.Rating,
			attraction.ReviewCount,
			attraction.PricePoint,
			attraction.ImageURL,
			attraction.Description,
			attraction.ScoutTip,
			boolToInt(attraction.IsLocalFavorite),
			attraction.Lat,
			attraction.Lng,
			attraction.Views,
			attraction.CreatedAt.Format(time.RFC3339),
			attraction.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return r.mapper.MapError(err)
		}

		for i, entry := range attraction.OpeningHours {
			_, err := r.helper.ExecTx(tx,
				"INSERT INTO attraction_hours (id, attraction_id, entry) VALUES (?, ?, ?)",
				fmt.Sprintf("%s-h%d", attraction.ID, i),
				attraction.ID,
				entry,
			)
			if err != nil {
				return r.mapper.MapError(err)
			}
		}

		return nil
	})
}

// GetAttraction retrieves an attraction by ID, including its opening hours.
func (r *AttractionRepository) GetAttraction(ctx context.Context, id string) (persistence.Attraction, error) {
	if id == "" {
		return persistence.Attraction{}, persistence.ErrNotFound
	}

	query := `
		SELECT id, name, destination, category, rating, review_count,
			price_point, image_url, description, scout_tip,
			is_local_favorite, lat, lng, views, created_at, updated_at
		FROM attractions
		WHERE id = ?
	`

	attraction, err := scanAttraction(r.helper.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Attraction{}, persistence.ErrNotFound
		}
		return persistence.Attraction{}, r.mapper.MapError(err)
	}

	hours, err := r.hoursFor(ctx, []string{id})
	if err != nil {
		return persistence.Attraction{}, err
	}
	attraction.OpeningHours = hours[id]

	return attraction, nil
}

// ListAttractions returns catalog entries matching the filter, best rated
// first.
func (r *AttractionRepository) ListAttractions(ctx context.Context, filter persistence.AttractionFilter) ([]persistence.Attraction, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAttractionLimit
	}

	query := `
		SELECT id, name, destination, category, rating, review_count,
			price_point, image_url, description, scout_tip,
			is_local_favorite, lat, lng, views, created_at, updated_at
		FROM attractions
	`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if filter.Destination != "" {
		conditions = append(conditions, "destination = ?")
		args = append(args, filter.Destination)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY rating DESC, id ASC LIMIT ?"
	args = append(args, limit)

	rows, err := r.helper.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	var attractions []persistence.Attraction
	ids := make([]string, 0)

	for rows.Next() {
		attraction, err := scanAttraction(rows)
		if err != nil {
			return nil, r.mapper.MapError(err)
		}
		attractions = append(attractions, attraction)
		ids = append(ids, attraction.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	hours, err := r.hoursFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range attractions {
		attractions[i].OpeningHours = hours[attractions[i].ID]
	}

	return attractions, nil
}

// hoursFor loads opening-hours entries for the given attraction IDs, keyed by
// attraction. Entries keep insertion order.
func (r *AttractionRepository) hoursFor(ctx context.Context, ids []string) (map[string][]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := ""
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, id)
	}

	query := `
		SELECT attraction_id, entry
		FROM attraction_hours
		WHERE attraction_id IN (` + placeholders + `)
		ORDER BY id ASC
	`

	rows, err := r.helper.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	hours := make(map[string][]string, len(ids))
	for rows.Next() {
		var attractionID, entry string
		if err := rows.Scan(&attractionID, &entry); err != nil {
			return nil, r.mapper.MapError(err)
		}
		hours[attractionID] = append(hours[attractionID], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return hours, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttraction(row rowScanner) (persistence.Attraction, error) {
	var attraction persistence.Attraction
	var pricePoint, imageURL, description, scoutTip sql.NullString
	var lat, lng sql.NullFloat64
	var isLocalFavorite int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&attraction.ID,
		&attraction.Name,
		&attraction.Destination,
		&attraction.Category,
		&attraction.Rating,
		&attraction.ReviewCount,
		&pricePoint,
		&imageURL,
		&description,
		&scoutTip,
		&isLocalFavorite,
		&lat,
		&lng,
		&attraction.Views,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.Attraction{}, err
	}

	attraction.PricePoint = nullableString(pricePoint)
	attraction.ImageURL = nullableString(imageURL)
	attraction.Description = nullableString(description)
	attraction.ScoutTip = nullableString(scoutTip)
	attraction.Lat = nullableFloat(lat)
	attraction.Lng = nullableFloat(lng)
	attraction.IsLocalFavorite = isLocalFavorite != 0

	if attraction.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return persistence.Attraction{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if attraction.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return persistence.Attraction{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return attraction, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	copied := value.String
	return &copied
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	copied := value.Float64
	return &copied
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
