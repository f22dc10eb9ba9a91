//go:build unit

package stock_test

import (
	"testing"

	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/pkg/ptr"
	"pro-stock-editor/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestIsBookingImpacted(t *testing.T) {
	booked := builder.NewStockEntryBuilder().WithBookings(3)

	testCases := []struct {
		name    string
		base    *builder.StockEntryBuilder
		current *builder.StockEntryBuilder
		want    bool
	}{
		{
			name:    "price tier changed on a booked stock",
			base:    builder.NewStockEntryBuilder().WithBookings(3).WithPriceCategory(10),
			current: builder.NewStockEntryBuilder().WithBookings(3).WithPriceCategory(11),
			want:    true,
		},
		{
			name:    "date changed on a booked stock",
			base:    booked,
			current: builder.NewStockEntryBuilder().WithBookings(3).WithBeginning("2030-06-02", "20:00"),
			want:    true,
		},
		{
			name:    "time changed on a booked stock",
			base:    booked,
			current: builder.NewStockEntryBuilder().WithBookings(3).WithBeginning("2030-06-01", "21:00"),
			want:    true,
		},
		{
			name:    "quantity raised on a booked stock",
			base:    booked,
			current: builder.NewStockEntryBuilder().WithBookings(3).WithRemaining(ptr.Of(80)),
			want:    false,
		},
		{
			name:    "quantity below bookings",
			base:    booked,
			current: builder.NewStockEntryBuilder().WithBookings(3).WithRemaining(ptr.Of(-1)),
			want:    true,
		},
		{
			name:    "booking limit moved on a booked stock",
			base:    booked,
			current: builder.NewStockEntryBuilder().WithBookings(3).WithBookingLimit("2030-05-30"),
			want:    false,
		},
		{
			name:    "price tier changed without bookings",
			base:    builder.NewStockEntryBuilder().WithPriceCategory(10),
			current: builder.NewStockEntryBuilder().WithPriceCategory(11),
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.IsBookingImpacted(tc.current.Build(), tc.base.Build()))
		})
	}
}

func TestImpactedRows(t *testing.T) {
	baseline := []stock.Entry{
		builder.NewStockEntryBuilder().WithID(1).WithBookings(2).Build(),
		builder.NewStockEntryBuilder().WithID(2).Build(),
		builder.NewStockEntryBuilder().WithID(3).WithBookings(1).Build(),
	}

	t.Run("matched by id regardless of order", func(t *testing.T) {
		live := []stock.Entry{
			builder.NewStockEntryBuilder().WithID(3).WithBookings(1).WithPriceCategory(11).Build(),
			builder.NewStockEntryBuilder().WithID(2).WithPriceCategory(11).Build(),
			builder.NewStockEntryBuilder().WithID(1).WithBookings(2).Build(),
		}
		assert.Equal(t, []int{0}, stock.ImpactedRows(live, baseline))
		assert.True(t, stock.HasChangesOnBookedStocks(live, baseline))
	})

	t.Run("unchanged rows are not impacted", func(t *testing.T) {
		assert.Empty(t, stock.ImpactedRows(stock.CloneEntries(baseline), baseline))
		assert.False(t, stock.HasChangesOnBookedStocks(baseline, baseline))
	})

	t.Run("new rows are matched by position", func(t *testing.T) {
		base := []stock.Entry{stock.EmptyEntry()}
		live := []stock.Entry{builder.NewStockEntryBuilder().WithoutID().Build()}
		assert.Empty(t, stock.ImpactedRows(live, base))
	})

	t.Run("booked row missing from the baseline is impacted", func(t *testing.T) {
		live := []stock.Entry{
			builder.NewStockEntryBuilder().WithID(200).WithBookings(3).Build(),
			builder.NewStockEntryBuilder().WithID(201).Build(),
		}
		assert.Equal(t, []int{0}, stock.ImpactedRows(live, baseline))
	})
}
