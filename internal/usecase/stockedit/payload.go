package stockedit

import (
	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/pkg/patch"
	"pro-stock-editor/internal/pkg/ptr"
	"pro-stock-editor/internal/usecase/shared"
)

// BuildUpsertRows serializes the live rows for the bulk upsert. Read-only
// fields never reach the payload: when only one half of the beginning is
// read-only, the other half is combined with the baseline value.
func BuildUpsertRows(live, baseline []stock.Entry, departementCode string) ([]shared.UpsertRow, error) {
	byID := make(map[int64]stock.Entry, len(baseline))
	for _, b := range baseline {
		if b.ID != nil {
			byID[*b.ID] = b
		}
	}

	rows := make([]shared.UpsertRow, 0, len(live))
	for _, e := range live {
		if e.IsEmptyTemplate() {
			continue
		}
		base := e
		if e.ID != nil {
			if b, ok := byID[*e.ID]; ok {
				base = b
			}
		}
		row, err := upsertRow(e, base, departementCode)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func upsertRow(e, base stock.Entry, dept string) (shared.UpsertRow, error) {
	ro := e.ReadOnlyFields
	row := shared.UpsertRow{ID: ptr.Clone(e.ID)}

	if !ro.Has(stock.FieldBeginningDate) || !ro.Has(stock.FieldBeginningTime) {
		date, clock := e.BeginningDate, e.BeginningTime
		if ro.Has(stock.FieldBeginningDate) {
			date = base.BeginningDate
		}
		if ro.Has(stock.FieldBeginningTime) {
			clock = base.BeginningTime
		}
		if date != "" || clock != "" {
			instant, err := localtime.LocalToUTCInstant(date, clock, dept)
			if err != nil {
				return shared.UpsertRow{}, err
			}
			row.BeginningDatetime = &instant
		}
	}

	if !ro.Has(stock.FieldBookingLimitDatetime) {
		row.BookingLimitDatetime = patch.Optional[string]{Set: true}
		if e.BookingLimitDatetime != "" {
			limit, err := localtime.EndOfDayUTCInstant(e.BookingLimitDatetime, dept)
			if err != nil {
				return shared.UpsertRow{}, err
			}
			row.BookingLimitDatetime.Value = &limit
		}
	}

	if !ro.Has(stock.FieldPriceCategoryID) {
		row.PriceCategoryID = ptr.Of(e.PriceCategoryID)
	}

	if !ro.Has(stock.FieldRemainingQuantity) {
		row.Quantity = patch.Optional[int]{Set: true, Value: e.TotalQuantity()}
	}

	return row, nil
}
