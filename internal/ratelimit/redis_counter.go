package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const signupCounterKeyPrefix = "signup:origin:"

// RedisCounter is a fixed-window counter in Redis, for deployments where
// multiple instances share one limit. Same fail-open contract as LogBacked.
type RedisCounter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
	logger      *slog.Logger
}

func NewRedisCounter(client *redis.Client, maxAttempts int, window time.Duration, logger *slog.Logger) *RedisCounter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisCounter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
		logger:      logger,
	}
}

func (r *RedisCounter) Allow(ctx context.Context, origin string) bool {
	key := signupCounterKeyPrefix + origin
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.logger.WarnContext(ctx, "rate limit counter failed, failing open",
			slog.String("network_origin", origin),
			slog.String("error", err.Error()),
		)
		return true
	}
	if count == 1 {
		// First attempt in the window starts the clock.
		r.client.Expire(ctx, key, r.window)
	}
	return count <= int64(r.maxAttempts)
}
