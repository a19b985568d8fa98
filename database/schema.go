package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// schema is applied idempotently at startup. The partial unique index backs the
// service's website check so concurrent creates cannot both insert.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		cuisine TEXT,
		address TEXT,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		contact_number BIGINT NOT NULL DEFAULT 0,
		website TEXT,
		average_delivery_time_in_minutes INTEGER NOT NULL DEFAULT 0,
		delivery_fee INTEGER NOT NULL,
		minimum_order_amount INTEGER NOT NULL,
		currency_used TEXT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS restaurants_website_key ON restaurants (website) WHERE website IS NOT NULL AND website <> ''`,
	`CREATE INDEX IF NOT EXISTS restaurants_cuisine_idx ON restaurants (cuisine)`,
}

// Migrate creates the restaurants table and its indexes if they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	slog.Debug("database schema applied", slog.Int("statements", len(schema)))
	return nil
}
