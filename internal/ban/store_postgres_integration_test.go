//go:build integration

package ban_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustgate/internal/ban"
	"trustgate/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	store := ban.NewPostgresStore(pg.DB)
	ctx := context.Background()

	t.Run("add and exists", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		entry := ban.New("bad@example.com", "abuse",
			json.RawMessage(`{"riskScore":130}`), "203.0.113.7")
		require.NoError(t, store.Add(ctx, entry))

		byEmail, err := store.Exists(ctx, "bad@example.com", "")
		require.NoError(t, err)
		assert.True(t, byEmail)

		byOrigin, err := store.Exists(ctx, "", "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, byOrigin)

		neither, err := store.Exists(ctx, "other@example.com", "198.51.100.4")
		require.NoError(t, err)
		assert.False(t, neither)
	})

	t.Run("empty arguments never match", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		require.NoError(t, store.Add(ctx, ban.New("", "abuse", nil, "")))

		got, err := store.Exists(ctx, "", "")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("list and count", func(t *testing.T) {
		require.NoError(t, pg.Truncate(ctx))

		require.NoError(t, store.Add(ctx, ban.New("a@example.com", "abuse", nil, "")))
		require.NoError(t, store.Add(ctx, ban.New("b@example.com", "fraud", nil, "")))

		entries, err := store.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
