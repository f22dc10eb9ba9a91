//go:build unit

package stockedit_test

import (
	"testing"

	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/pkg/patch"
	"pro-stock-editor/internal/pkg/ptr"
	"pro-stock-editor/internal/usecase/stockedit"
	"pro-stock-editor/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedSession(entries ...stock.Entry) *stockedit.Session {
	return &stockedit.Session{
		Offer:      builder.NewOfferBuilder().Build(),
		Filter:     stocklist.Default(),
		TotalCount: len(entries),
		Baseline:   stock.CloneEntries(entries),
		Live:       stock.CloneEntries(entries),
	}
}

func reduce(t *testing.T, s *stockedit.Session, actions ...stockedit.Action) *stockedit.Session {
	t.Helper()
	for _, a := range actions {
		next, err := stockedit.Reduce(s, a)
		require.NoError(t, err)
		s = next
	}
	return s
}

func TestReduceLeavesInputUntouched(t *testing.T) {
	s := loadedSession(builder.Page(1, 2)...)
	before := s.Clone()

	_ = reduce(t, s,
		stockedit.RowsEdited{Edits: []stockedit.RowEdit{{Row: 0, BeginningTime: ptr.Of("21:00")}}},
		stockedit.RowAdded{},
	)

	if diff := cmp.Diff(before.Live, s.Live, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("input rows mutated (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(before.Baseline, s.Baseline, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("input baseline mutated (-before +after):\n%s", diff)
	}
}

func TestFetchGeneration(t *testing.T) {
	s := loadedSession()
	first := reduce(t, s, stockedit.FetchStarted{})
	second := reduce(t, first, stockedit.FetchStarted{})
	assert.True(t, second.Loading)

	t.Run("response to an older fetch is stale", func(t *testing.T) {
		_, err := stockedit.Reduce(second, stockedit.FetchSucceeded{Generation: first.Generation, Entries: builder.Page(1, 1)})
		assert.ErrorIs(t, err, stockedit.ErrStaleFetch)

		_, err = stockedit.Reduce(second, stockedit.FetchFailed{Generation: first.Generation})
		assert.ErrorIs(t, err, stockedit.ErrStaleFetch)
	})

	t.Run("latest response replaces rows and baseline", func(t *testing.T) {
		page := builder.Page(5, 3)
		got := reduce(t, second, stockedit.FetchSucceeded{Generation: second.Generation, Entries: page, TotalCount: 43})

		assert.False(t, got.Loading)
		assert.Equal(t, 43, got.TotalCount)
		assert.Equal(t, page, got.Live)
		assert.Equal(t, page, got.Baseline)
		assert.False(t, got.IsDirty())
	})
}

func TestRowsEdited(t *testing.T) {
	s := loadedSession(
		builder.NewStockEntryBuilder().WithID(1).Build(),
		builder.NewStockEntryBuilder().WithID(2).WithReadOnly(stock.FieldPriceCategoryID).Build(),
	)

	t.Run("applies set fields only", func(t *testing.T) {
		got := reduce(t, s, stockedit.RowsEdited{Edits: []stockedit.RowEdit{{
			Row:               0,
			BeginningTime:     ptr.Of("18:30"),
			RemainingQuantity: patch.Optional[int]{Set: true},
		}}})

		assert.Equal(t, "18:30", got.Live[0].BeginningTime)
		assert.Equal(t, "2030-06-01", got.Live[0].BeginningDate)
		assert.Nil(t, got.Live[0].RemainingQuantity)
		assert.True(t, got.IsDirty())
	})

	t.Run("read-only field is refused", func(t *testing.T) {
		_, err := stockedit.Reduce(s, stockedit.RowsEdited{Edits: []stockedit.RowEdit{{Row: 1, PriceCategoryID: ptr.Of(int64(11))}}})
		assert.ErrorIs(t, err, stockedit.ErrReadOnlyField)
	})

	t.Run("unknown row", func(t *testing.T) {
		_, err := stockedit.Reduce(s, stockedit.RowsEdited{Edits: []stockedit.RowEdit{{Row: 5, BeginningTime: ptr.Of("10:00")}}})
		assert.ErrorIs(t, err, stockedit.ErrRowNotFound)
	})
}

func TestPageRequested(t *testing.T) {
	s := loadedSession(builder.Page(1, 2)...)
	s.TotalCount = 45

	t.Run("clean session moves", func(t *testing.T) {
		got := reduce(t, s, stockedit.PageRequested{Direction: stocklist.DirectionNext, PageCount: 3})
		assert.Equal(t, 2, got.Filter.Page)
		assert.Equal(t, stockedit.DialogNone, got.Pending.Dialog)
	})

	t.Run("dirty session asks first", func(t *testing.T) {
		dirty := reduce(t, s, stockedit.RowAdded{}, stockedit.RowsEdited{Edits: []stockedit.RowEdit{{Row: 2, BeginningDate: ptr.Of("2030-07-01")}}})
		got := reduce(t, dirty, stockedit.PageRequested{Direction: stocklist.DirectionNext, PageCount: 3})

		assert.Equal(t, 1, got.Filter.Page)
		assert.Equal(t, stockedit.DialogDiscardChanges, got.Pending.Dialog)
		assert.Equal(t, stocklist.DirectionNext, got.Pending.Direction)
	})
}

func TestStockDeleted(t *testing.T) {
	s := loadedSession(builder.Page(1, 3)...)
	s.TotalCount = 23
	s.Pending = stockedit.Pending{Dialog: stockedit.DialogDeleteBooked, StockID: ptr.Of(int64(2))}

	got := reduce(t, s, stockedit.StockDeleted{StockID: 2})

	require.Len(t, got.Live, 2)
	require.Len(t, got.Baseline, 2)
	for _, e := range got.Live {
		assert.NotEqual(t, int64(2), *e.ID)
	}
	assert.Equal(t, 22, got.TotalCount)
	assert.Equal(t, stockedit.DialogNone, got.Pending.Dialog)
	assert.False(t, got.IsDirty())
}

func TestSubmitted(t *testing.T) {
	s := loadedSession(builder.Page(1, 1)...)
	s = reduce(t, s,
		stockedit.RowsEdited{Edits: []stockedit.RowEdit{{Row: 0, BeginningTime: ptr.Of("22:00")}}},
		stockedit.RowAdded{},
	)
	require.True(t, s.IsDirty())

	got := reduce(t, s, stockedit.Submitted{Saved: s.Live})

	assert.Len(t, got.Live, 1, "blank rows are dropped")
	assert.False(t, got.IsDirty())
	assert.Equal(t, "22:00", got.Baseline[0].BeginningTime)
}

func TestSubmittedAfterRefetch(t *testing.T) {
	s := loadedSession(builder.Page(1, 1)...)
	s = reduce(t, s, stockedit.RowsEdited{Edits: []stockedit.RowEdit{{Row: 0, BeginningTime: ptr.Of("22:00")}}})
	saved := stock.CloneEntries(s.Live)
	readAt := s.Generation

	fetched := []stock.Entry{builder.NewStockEntryBuilder().WithID(200).WithBookings(3).Build()}
	s = reduce(t, s, stockedit.FetchStarted{})
	s = reduce(t, s, stockedit.FetchSucceeded{Generation: s.Generation, Entries: fetched, TotalCount: 1})

	got := reduce(t, s, stockedit.Submitted{Generation: readAt, Saved: saved})

	require.Len(t, got.Baseline, 1)
	assert.Equal(t, int64(200), *got.Baseline[0].ID)
	assert.Equal(t, int64(200), *got.Live[0].ID)
	assert.False(t, got.IsDirty())
}

func TestRowRemoved(t *testing.T) {
	s := reduce(t, loadedSession(builder.Page(1, 1)...), stockedit.RowAdded{})
	require.Len(t, s.Live, 2)

	got := reduce(t, s, stockedit.RowRemoved{Row: 1})
	assert.Len(t, got.Live, 1)
	assert.False(t, got.IsDirty())
}
