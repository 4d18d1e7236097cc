package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresStore persists activity records in the suspicious_activity table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO suspicious_activity (id, identity, activity_type, details, network_origin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Identity, rec.Type, rec.Details, rec.NetworkOrigin, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity record: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountByOriginSince(ctx context.Context, origin string, t Type, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM suspicious_activity
		WHERE network_origin = $1 AND activity_type = $2 AND created_at >= $3`,
		origin, t, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count activity records: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, identity, activity_type, details, network_origin, created_at
		FROM suspicious_activity
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query activity records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Identity, &rec.Type, &rec.Details, &rec.NetworkOrigin, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) CountByType(ctx context.Context, t Type) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM suspicious_activity WHERE activity_type = $1`, t,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count activity by type: %w", err)
	}
	return count, nil
}
