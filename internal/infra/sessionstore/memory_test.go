//go:build unit

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/infra/sessionstore"
	"pro-stock-editor/internal/pkg/clock"
	"pro-stock-editor/internal/usecase/stockedit"
	"pro-stock-editor/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *stockedit.Session {
	return &stockedit.Session{
		ID:       uuid.New(),
		OfferID:  42,
		OwnerID:  uuid.New(),
		Offer:    builder.NewOfferBuilder().Build(),
		Filter:   stocklist.Default(),
		Baseline: builder.Page(1, 2),
		Live:     builder.Page(1, 2),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixedClock(time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC))
	store := sessionstore.NewMemoryStore(time.Hour, clk)

	s := newSession()
	require.NoError(t, store.Save(ctx, s))

	t.Run("load returns an isolated copy", func(t *testing.T) {
		got, err := store.Load(ctx, s.ID)
		require.NoError(t, err)
		got.Live[0].BeginningTime = "23:00"

		again, err := store.Load(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "20:00", again.Live[0].BeginningTime)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Load(ctx, uuid.New())
		assert.ErrorIs(t, err, stockedit.ErrSessionNotFound)
	})

	t.Run("expires after ttl and is purged", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		_, err := store.Load(ctx, s.ID)
		assert.ErrorIs(t, err, stockedit.ErrSessionNotFound)

		ids, err := store.Purge(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{s.ID}, ids)
	})

	t.Run("delete", func(t *testing.T) {
		other := newSession()
		require.NoError(t, store.Save(ctx, other))
		require.NoError(t, store.Delete(ctx, other.ID))

		_, err := store.Load(ctx, other.ID)
		assert.ErrorIs(t, err, stockedit.ErrSessionNotFound)
	})
}
