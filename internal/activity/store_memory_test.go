package activity

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	first := New("a@example.com", TypeSignupAttempt, nil, "203.0.113.7")
	first.CreatedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := New("b@example.com", TypeVerificationFailed, json.RawMessage(`{"riskScore":130}`), "203.0.113.8")
	second.CreatedAt = time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	records, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID, "newest first")
	assert.Equal(t, first.ID, records[1].ID)
}

func TestInMemoryStore_ListRecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := New("", TypeSignupAttempt, nil, "203.0.113.7")
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Append(ctx, rec))
	}

	records, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, base.Add(4*time.Minute), records[0].CreatedAt)
}

func TestInMemoryStore_CountByOriginSince(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	now := time.Now().UTC()

	inWindow := New("", TypeSignupAttempt, nil, "203.0.113.7")
	outOfWindow := New("", TypeSignupAttempt, nil, "203.0.113.7")
	outOfWindow.CreatedAt = now.Add(-2 * time.Hour)
	otherOrigin := New("", TypeSignupAttempt, nil, "198.51.100.4")
	otherType := New("", TypeCaptchaCompleted, nil, "203.0.113.7")

	for _, rec := range []Record{inWindow, outOfWindow, otherOrigin, otherType} {
		require.NoError(t, store.Append(ctx, rec))
	}

	count, err := store.CountByOriginSince(ctx, "203.0.113.7", TypeSignupAttempt, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInMemoryStore_CountByType(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.Append(ctx, New("", TypeSignupAttempt, nil, "")))
	require.NoError(t, store.Append(ctx, New("", TypeSignupAttempt, nil, "")))
	require.NoError(t, store.Append(ctx, New("", TypeVerificationPassed, nil, "")))

	count, err := store.CountByType(ctx, TypeSignupAttempt)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
