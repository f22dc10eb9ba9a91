//go:build unit

package stock_test

import (
	"testing"

	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/pkg/ptr"
	"pro-stock-editor/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rules = stock.Rules{PriceCategoryIDs: []int64{10, 11}}

type validationCase struct {
	name       string
	mutate     func(*builder.StockEntryBuilder)
	wantFields []stock.Field
}

func TestValidateEntry(t *testing.T) {
	testCases := []validationCase{
		{name: "valid row", mutate: func(*builder.StockEntryBuilder) {}},
		{
			name:   "booking limit on the event day",
			mutate: func(b *builder.StockEntryBuilder) { b.WithBookingLimit("2030-06-01") },
		},
		{
			name:       "booking limit after the event",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithBookingLimit("2030-06-02") },
			wantFields: []stock.Field{stock.FieldBookingLimitDatetime},
		},
		{
			name:       "date without time",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithBeginning("2030-06-01", "") },
			wantFields: []stock.Field{stock.FieldBeginningTime},
		},
		{
			name:       "time without date",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithBeginning("", "20:00") },
			wantFields: []stock.Field{stock.FieldBeginningDate},
		},
		{
			name:   "neither date nor time",
			mutate: func(b *builder.StockEntryBuilder) { b.WithBeginning("", "") },
		},
		{
			name:       "unparseable time",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithBeginning("2030-06-01", "8pm") },
			wantFields: []stock.Field{stock.FieldBeginningTime},
		},
		{
			name:   "unlimited quantity",
			mutate: func(b *builder.StockEntryBuilder) { b.WithRemaining(nil) },
		},
		{
			name:   "zero quantity",
			mutate: func(b *builder.StockEntryBuilder) { b.WithRemaining(ptr.Of(0)) },
		},
		{
			name:       "negative quantity",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithRemaining(ptr.Of(-1)) },
			wantFields: []stock.Field{stock.FieldRemainingQuantity},
		},
		{
			name:   "maximum quantity",
			mutate: func(b *builder.StockEntryBuilder) { b.WithRemaining(ptr.Of(stock.MaxQuantity)) },
		},
		{
			name:       "quantity above one million",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithRemaining(ptr.Of(stock.MaxQuantity + 1)) },
			wantFields: []stock.Field{stock.FieldRemainingQuantity},
		},
		{
			name:       "missing price category",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithPriceCategory(0) },
			wantFields: []stock.Field{stock.FieldPriceCategoryID},
		},
		{
			name:       "price category of another offer",
			mutate:     func(b *builder.StockEntryBuilder) { b.WithPriceCategory(99) },
			wantFields: []stock.Field{stock.FieldPriceCategoryID},
		},
		{
			name: "read-only fields are not reported",
			mutate: func(b *builder.StockEntryBuilder) {
				b.WithPriceCategory(99).WithReadOnly(stock.FieldPriceCategoryID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := builder.NewStockEntryBuilder().With(tc.mutate).Build()
			got := stock.ValidateEntry(3, e, rules)

			var fields []stock.Field
			for _, ve := range got {
				assert.Equal(t, 3, ve.Row)
				assert.NotEmpty(t, ve.Message)
				fields = append(fields, ve.Field)
			}
			assert.Equal(t, tc.wantFields, fields)
		})
	}

	t.Run("blank template row is valid", func(t *testing.T) {
		assert.Empty(t, stock.ValidateEntry(0, stock.EmptyEntry(), rules))
	})
}

func TestValidateField(t *testing.T) {
	e := builder.NewStockEntryBuilder().WithPriceCategory(0).WithRemaining(ptr.Of(-3)).Build()

	got := stock.ValidateField(0, e, stock.FieldRemainingQuantity, rules)
	require.Len(t, got, 1)
	assert.Equal(t, stock.FieldRemainingQuantity, got[0].Field)

	assert.Empty(t, stock.ValidateField(0, e, stock.FieldBeginningDate, rules))
}

func TestValidateAll(t *testing.T) {
	entries := []stock.Entry{
		builder.NewStockEntryBuilder().Build(),
		builder.NewStockEntryBuilder().WithID(2).WithRemaining(ptr.Of(-1)).Build(),
	}

	got := stock.ValidateAll(entries, rules)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Row)

	err := got.Err()
	require.Error(t, err)
	assert.True(t, errs.Is(err, stock.ErrValidation))
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))

	var ve stock.ValidationErrors
	require.True(t, errs.As(err, &ve))
	assert.Len(t, ve, 1)

	assert.NoError(t, stock.ValidateAll(entries[:1], rules).Err())
}
