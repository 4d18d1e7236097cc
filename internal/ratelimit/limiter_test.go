package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustgate/internal/activity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingStore simulates an unavailable activity store.
type failingStore struct{}

func (failingStore) Append(context.Context, activity.Record) error { return errors.New("down") }
func (failingStore) CountByOriginSince(context.Context, string, activity.Type, time.Time) (int, error) {
	return 0, errors.New("down")
}
func (failingStore) ListRecent(context.Context, int) ([]activity.Record, error) {
	return nil, errors.New("down")
}
func (failingStore) CountByType(context.Context, activity.Type) (int, error) {
	return 0, errors.New("down")
}

func TestLogBacked_AllowsUpToLimit(t *testing.T) {
	ctx := context.Background()
	store := activity.NewInMemoryStore()
	limiter := NewLogBacked(store, 0, 0, discardLogger())

	for i := 0; i < DefaultMaxAttempts; i++ {
		assert.True(t, limiter.Allow(ctx, "203.0.113.7"), "attempt %d should be allowed", i+1)
		require.NoError(t, store.Append(ctx, activity.New("", activity.TypeSignupAttempt, nil, "203.0.113.7")))
	}

	assert.False(t, limiter.Allow(ctx, "203.0.113.7"), "attempt over the limit should be blocked")
}

func TestLogBacked_OriginsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := activity.NewInMemoryStore()
	limiter := NewLogBacked(store, 0, 0, discardLogger())

	for i := 0; i < DefaultMaxAttempts; i++ {
		require.NoError(t, store.Append(ctx, activity.New("", activity.TypeSignupAttempt, nil, "203.0.113.7")))
	}

	assert.False(t, limiter.Allow(ctx, "203.0.113.7"))
	assert.True(t, limiter.Allow(ctx, "198.51.100.4"), "other origins keep their own budget")
}

func TestLogBacked_OnlySignupAttemptsCount(t *testing.T) {
	ctx := context.Background()
	store := activity.NewInMemoryStore()
	limiter := NewLogBacked(store, 0, 0, discardLogger())

	for i := 0; i < DefaultMaxAttempts; i++ {
		require.NoError(t, store.Append(ctx, activity.New("", activity.TypeVerificationFailed, nil, "203.0.113.7")))
	}

	assert.True(t, limiter.Allow(ctx, "203.0.113.7"))
}

func TestLogBacked_FailsOpenOnStoreError(t *testing.T) {
	limiter := NewLogBacked(failingStore{}, 0, 0, discardLogger())
	assert.True(t, limiter.Allow(context.Background(), "203.0.113.7"))
}

func TestNewLogBacked_Defaults(t *testing.T) {
	limiter := NewLogBacked(activity.NewInMemoryStore(), 0, 0, discardLogger())
	assert.Equal(t, DefaultMaxAttempts, limiter.maxAttempts)
	assert.Equal(t, DefaultWindow, limiter.window)
}
