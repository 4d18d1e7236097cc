package ban

import "context"

// Store persists the ban ledger.
type Store interface {
	Add(ctx context.Context, b BannedIdentity) error
	// Exists reports whether either the email or the origin is banned.
	// Empty arguments never match.
	Exists(ctx context.Context, email, origin string) (bool, error)
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]BannedIdentity, error)
	Count(ctx context.Context) (int, error)
}
