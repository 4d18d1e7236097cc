// Package ratelimit throttles signup attempts per network origin. Limiters
// fail open: when the backing store cannot be read, the attempt is allowed
// rather than blocking legitimate signups on infrastructure trouble.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"trustgate/internal/activity"
)

const (
	DefaultMaxAttempts = 3
	DefaultWindow      = time.Hour
)

// SignupLimiter decides whether a signup attempt from an origin may proceed.
type SignupLimiter interface {
	Allow(ctx context.Context, origin string) bool
}

// LogBacked derives the attempt count from the activity log itself, so the
// limiter needs no storage of its own and restarts carry no state loss.
type LogBacked struct {
	store       activity.Store
	maxAttempts int
	window      time.Duration
	logger      *slog.Logger
}

func NewLogBacked(store activity.Store, maxAttempts int, window time.Duration, logger *slog.Logger) *LogBacked {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &LogBacked{
		store:       store,
		maxAttempts: maxAttempts,
		window:      window,
		logger:      logger,
	}
}

func (l *LogBacked) Allow(ctx context.Context, origin string) bool {
	since := time.Now().UTC().Add(-l.window)
	count, err := l.store.CountByOriginSince(ctx, origin, activity.TypeSignupAttempt, since)
	if err != nil {
		l.logger.WarnContext(ctx, "rate limit read failed, failing open",
			slog.String("network_origin", origin),
			slog.String("error", err.Error()),
		)
		return true
	}
	return count < l.maxAttempts
}
