package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS drivers (
		seq    BIGSERIAL,
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		status TEXT NOT NULL,
		lat    DOUBLE PRECISION NOT NULL,
		lng    DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS riders (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rides (
		id        TEXT PRIMARY KEY,
		rider_id  TEXT NOT NULL,
		pickup_lat DOUBLE PRECISION NOT NULL,
		pickup_lng DOUBLE PRECISION NOT NULL,
		drop_lat  DOUBLE PRECISION NOT NULL,
		drop_lng  DOUBLE PRECISION NOT NULL,
		driver_id TEXT,
		status    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ride_events (
		ride_id TEXT NOT NULL REFERENCES rides (id) ON DELETE CASCADE,
		seq     INTEGER NOT NULL,
		status  TEXT NOT NULL,
		at      TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (ride_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS receipts (
		ride_id      TEXT PRIMARY KEY,
		amount       DOUBLE PRECISION NOT NULL,
		method       TEXT NOT NULL,
		status       TEXT NOT NULL,
		reference_id TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates the tables used by this package if they are missing.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
