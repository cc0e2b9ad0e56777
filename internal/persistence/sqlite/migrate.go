package sqlite

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	display_name TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	token TEXT UNIQUE NOT NULL,
	expires_at TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	revoked_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

CREATE TABLE IF NOT EXISTS trips (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	destination TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	budget_limit REAL NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trips_user ON trips(user_id);

CREATE TABLE IF NOT EXISTS attractions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	destination TEXT NOT NULL,
	category TEXT NOT NULL,
	rating REAL NOT NULL CHECK (rating >= 0 AND rating <= 5),
	review_count INTEGER NOT NULL CHECK (review_count >= 0),
	price_point TEXT,
	image_url TEXT,
	description TEXT,
	scout_tip TEXT,
	is_local_favorite INTEGER NOT NULL DEFAULT 0,
	lat REAL,
	lng REAL,
	views INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attractions_destination_category
	ON attractions(destination, category);

CREATE TABLE IF NOT EXISTS attraction_hours (
	id TEXT PRIMARY KEY,
	attraction_id TEXT NOT NULL REFERENCES attractions(id) ON DELETE CASCADE,
	entry TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attraction_hours_attraction
	ON attraction_hours(attraction_id);

CREATE TABLE IF NOT EXISTS swipes (
	id TEXT PRIMARY KEY,
	trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	attraction_id TEXT NOT NULL REFERENCES attractions(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	is_liked INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL,
	UNIQUE (trip_id, attraction_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_swipes_trip ON swipes(trip_id);

CREATE TABLE IF NOT EXISTS itinerary_items (
	id TEXT PRIMARY KEY,
	trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	attraction_id TEXT REFERENCES attractions(id) ON DELETE SET NULL,
	day_number INTEGER NOT NULL CHECK (day_number >= 1),
	start_time TEXT,
	duration_minutes INTEGER,
	order_index INTEGER NOT NULL DEFAULT 0,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_itinerary_items_trip_day
	ON itinerary_items(trip_id, day_number);
`

// Migrate applies the schema. Statements are idempotent so repeated calls are
// safe.
func Migrate(ctx context.Context, pool *ConnectionPool) error {
	if _, err := pool.DB().ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
