package activity

import (
	"context"
	"time"
)

// Store persists activity records. Append-only: there is deliberately no
// update or delete.
type Store interface {
	Append(ctx context.Context, rec Record) error
	// CountByOriginSince counts records of the given type from one network
	// origin since the cutoff. Used by the signup rate limiter.
	CountByOriginSince(ctx context.Context, origin string, t Type, since time.Time) (int, error)
	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	CountByType(ctx context.Context, t Type) (int, error)
}
