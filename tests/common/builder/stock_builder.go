//go:build unit || e2e

package builder

import (
	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/pkg/ptr"
)

type StockEntryBuilder struct {
	ID                *int64
	BeginningDate     string
	BeginningTime     string
	BookingLimit      string
	PriceCategoryID   int64
	RemainingQuantity *int
	BookingsQuantity  int
	IsDeletable       bool
	ReadOnlyFields    stock.FieldSet
	ActivationExpiry  string
}

func NewStockEntryBuilder() *StockEntryBuilder {
	return &StockEntryBuilder{
		ID:                ptr.Of(int64(1)),
		BeginningDate:     "2030-06-01",
		BeginningTime:     "20:00",
		PriceCategoryID:   10,
		RemainingQuantity: ptr.Of(50),
		IsDeletable:       true,
	}
}

func (b *StockEntryBuilder) With(mutate func(*StockEntryBuilder)) *StockEntryBuilder {
	mutate(b)
	return b
}

func (b *StockEntryBuilder) WithID(id int64) *StockEntryBuilder {
	b.ID = ptr.Of(id)
	return b
}

func (b *StockEntryBuilder) WithoutID() *StockEntryBuilder {
	b.ID = nil
	return b
}

func (b *StockEntryBuilder) WithBeginning(date, clock string) *StockEntryBuilder {
	b.BeginningDate = date
	b.BeginningTime = clock
	return b
}

func (b *StockEntryBuilder) WithBookingLimit(date string) *StockEntryBuilder {
	b.BookingLimit = date
	return b
}

func (b *StockEntryBuilder) WithPriceCategory(id int64) *StockEntryBuilder {
	b.PriceCategoryID = id
	return b
}

func (b *StockEntryBuilder) WithRemaining(q *int) *StockEntryBuilder {
	b.RemainingQuantity = q
	return b
}

func (b *StockEntryBuilder) WithBookings(n int) *StockEntryBuilder {
	b.BookingsQuantity = n
	return b
}

func (b *StockEntryBuilder) WithReadOnly(fields ...stock.Field) *StockEntryBuilder {
	b.ReadOnlyFields = stock.NewFieldSet(fields...)
	return b
}

func (b *StockEntryBuilder) NotDeletable() *StockEntryBuilder {
	b.IsDeletable = false
	return b
}

func (b *StockEntryBuilder) Build() stock.Entry {
	return stock.Entry{
		ID:                        ptr.Clone(b.ID),
		BeginningDate:             b.BeginningDate,
		BeginningTime:             b.BeginningTime,
		BookingLimitDatetime:      b.BookingLimit,
		PriceCategoryID:           b.PriceCategoryID,
		RemainingQuantity:         ptr.Clone(b.RemainingQuantity),
		BookingsQuantity:          b.BookingsQuantity,
		IsDeletable:               b.IsDeletable,
		ReadOnlyFields:            b.ReadOnlyFields,
		ActivationCodesExpiration: b.ActivationExpiry,
	}
}

// BuildSnapshot renders the entry the way the server reports it for a venue in dept.
func (b *StockEntryBuilder) BuildSnapshot(dept string) stock.Snapshot {
	beginning, err := localtime.LocalToUTCInstant(b.BeginningDate, b.BeginningTime, dept)
	if err != nil {
		panic(err)
	}
	var limit string
	if b.BookingLimit != "" {
		if limit, err = localtime.EndOfDayUTCInstant(b.BookingLimit, dept); err != nil {
			panic(err)
		}
	}
	return stock.Snapshot{
		ID:                   ptr.Deref(b.ID),
		BeginningDatetime:    beginning,
		BookingLimitDatetime: limit,
		PriceCategoryID:      b.PriceCategoryID,
		RemainingQuantity:    ptr.Clone(b.RemainingQuantity),
		BookingsQuantity:     b.BookingsQuantity,
		IsEventDeletable:     b.IsDeletable,
	}
}

// Page builds n consecutive entries with ids starting at firstID, one day apart.
func Page(firstID int64, n int) []stock.Entry {
	out := make([]stock.Entry, 0, n)
	for i := range n {
		date, _ := localtime.AddDays("2030-06-01", i)
		out = append(out, NewStockEntryBuilder().WithID(firstID+int64(i)).WithBeginning(date, "20:00").Build())
	}
	return out
}
