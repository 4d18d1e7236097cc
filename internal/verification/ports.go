package verification

import (
	"context"

	"trustgate/internal/activity"
)

// Publisher emits activity records to an external stream for downstream
// consumers. Publishing is best-effort: verification never fails on it.
type Publisher interface {
	Publish(ctx context.Context, rec activity.Record) error
}

// BanChecker reports whether an email or network origin is on the ban
// ledger. Either field may be empty; a match on one suffices.
type BanChecker interface {
	Exists(ctx context.Context, email, origin string) (bool, error)
}
