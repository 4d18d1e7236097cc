package ban

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists the ban ledger in the banned_identities table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Add(ctx context.Context, b BannedIdentity) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO banned_identities (id, email, reason, evidence, network_origin, banned_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Email, b.Reason, b.Evidence, b.NetworkOrigin, b.BannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ban entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) Exists(ctx context.Context, email, origin string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM banned_identities
			WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND network_origin = $2)
		)`,
		email, origin,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check ban entry: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]BannedIdentity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, reason, evidence, network_origin, banned_at
		FROM banned_identities
		ORDER BY banned_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query ban entries: %w", err)
	}
	defer rows.Close()

	var entries []BannedIdentity
	for rows.Next() {
		var b BannedIdentity
		if err := rows.Scan(&b.ID, &b.Email, &b.Reason, &b.Evidence, &b.NetworkOrigin, &b.BannedAt); err != nil {
			return nil, fmt.Errorf("scan ban entry: %w", err)
		}
		entries = append(entries, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ban entries: %w", err)
	}
	return entries, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM banned_identities`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ban entries: %w", err)
	}
	return count, nil
}
