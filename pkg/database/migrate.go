package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every startup; all statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rides (
		id              UUID PRIMARY KEY,
		rider_id        TEXT NOT NULL,
		driver_id       TEXT,
		pickup_location TEXT NOT NULL,
		drop_location   TEXT NOT NULL,
		status          TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rides_status ON rides (status)`,
	`CREATE INDEX IF NOT EXISTS idx_rides_rider_id ON rides (rider_id)`,
}

// Migrate creates the application tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
