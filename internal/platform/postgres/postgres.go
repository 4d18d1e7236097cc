// Package postgres owns the database connection and schema for the
// Postgres-backed stores.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Schema is the full DDL for the trustgate tables. Idempotent so it can run
// at startup and in test containers alike.
const Schema = `
CREATE TABLE IF NOT EXISTS suspicious_activity (
	id UUID PRIMARY KEY,
	identity TEXT NOT NULL DEFAULT '',
	activity_type TEXT NOT NULL,
	details JSONB,
	network_origin TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_suspicious_activity_origin
	ON suspicious_activity (network_origin, activity_type, created_at);

CREATE TABLE IF NOT EXISTS banned_identities (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL DEFAULT '',
	reason TEXT NOT NULL DEFAULT '',
	evidence JSONB,
	network_origin TEXT NOT NULL DEFAULT '',
	banned_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_banned_identities_email ON banned_identities (email);
CREATE INDEX IF NOT EXISTS idx_banned_identities_origin ON banned_identities (network_origin);
`

// Open connects to Postgres and verifies the connection. Returns nil if the
// URL is empty (Postgres not configured).
func Open(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, nil
	}
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema applies the DDL.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
