//go:build integration

package activity_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustgate/internal/activity"
	"trustgate/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	store := activity.NewPostgresStore(pg.DB)
	ctx := context.Background()

	t.Run("append and list", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		rec := activity.New("bot@example.com", activity.TypeVerificationFailed,
			json.RawMessage(`{"riskScore":130}`), "203.0.113.7")
		require.NoError(t, store.Append(ctx, rec))

		records, err := store.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, rec.ID, records[0].ID)
		assert.Equal(t, activity.TypeVerificationFailed, records[0].Type)
		assert.JSONEq(t, `{"riskScore":130}`, string(records[0].Details))
	})

	t.Run("list orders newest first and honors limit", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			rec := activity.New("", activity.TypeSignupAttempt, nil, "203.0.113.7")
			rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, store.Append(ctx, rec))
		}

		records, err := store.ListRecent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
	})

	t.Run("count by origin since", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		now := time.Now().UTC()
		recent := activity.New("", activity.TypeSignupAttempt, nil, "203.0.113.7")
		stale := activity.New("", activity.TypeSignupAttempt, nil, "203.0.113.7")
		stale.CreatedAt = now.Add(-2 * time.Hour)
		other := activity.New("", activity.TypeSignupAttempt, nil, "198.51.100.4")

		for _, rec := range []activity.Record{recent, stale, other} {
			require.NoError(t, store.Append(ctx, rec))
		}

		count, err := store.CountByOriginSince(ctx, "203.0.113.7", activity.TypeSignupAttempt, now.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("count by type", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		require.NoError(t, store.Append(ctx, activity.New("", activity.TypeSignupAttempt, nil, "")))
		require.NoError(t, store.Append(ctx, activity.New("", activity.TypeCaptchaCompleted, nil, "")))

		count, err := store.CountByType(ctx, activity.TypeSignupAttempt)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
