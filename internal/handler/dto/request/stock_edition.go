package request

import (
	"net/url"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/pkg/patch"
	"pro-stock-editor/internal/usecase/stockedit"
)

// OpenSessionQuery is the query of the page the operator opened; the filter
// keys are passed through so a reload restores the same table.
type OpenSessionQuery struct {
	Mode string `form:"mode" binding:"omitempty,oneof=creation edition"`
}

func (q OpenSessionQuery) ToDomain(offerID int64, query url.Values) stockedit.OpenParams {
	filters := url.Values{}
	for k, v := range query {
		if k == "mode" {
			continue
		}
		filters[k] = v
	}
	return stockedit.OpenParams{
		OfferID: offerID,
		Mode:    offer.WizardMode(q.Mode),
		Query:   filters,
	}
}

type FiltersRequest struct {
	Date            string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time            string `json:"time"`
	PriceCategoryID int64  `json:"priceCategoryId" binding:"omitempty,min=0"`
}

func (r FiltersRequest) ToDomain() stockedit.FilterParams {
	return stockedit.FilterParams{
		Date:            r.Date,
		Time:            r.Time,
		PriceCategoryID: r.PriceCategoryID,
	}
}

type SortRequest struct {
	Column string `json:"column" binding:"required"`
}

type PageRequest struct {
	Direction string `json:"direction" binding:"required,oneof=previous next"`
}

type DialogRequest struct {
	Confirm *bool `json:"confirm" binding:"required"`
}

// ConfirmQuery carries ?confirmed=true, sent once the operator accepted the warning dialog.
type ConfirmQuery struct {
	Confirmed bool `form:"confirmed"`
}

type RowEditRequest struct {
	Row                  *int                `json:"row" binding:"required,min=0"`
	BeginningDate        *string             `json:"beginningDate"`
	BeginningTime        *string             `json:"beginningTime"`
	BookingLimitDatetime *string             `json:"bookingLimitDatetime"`
	PriceCategoryID      *int64              `json:"priceCategoryId" binding:"omitempty,min=0"`
	RemainingQuantity    QuantityField       `json:"remainingQuantity" swaggertype:"integer"`
}

// QuantityField is a remaining quantity edit. An empty string is what a
// cleared quantity input sends and means unlimited, like null.
type QuantityField struct {
	patch.Optional[int]
}

func (q *QuantityField) UnmarshalJSON(data []byte) error {
	if string(data) == `""` {
		q.Set, q.Value = true, nil
		return nil
	}
	return q.Optional.UnmarshalJSON(data)
}

type EditRowsRequest struct {
	Edits []RowEditRequest `json:"edits" binding:"required,min=1,dive"`
}

func (r EditRowsRequest) ToDomain() []stockedit.RowEdit {
	edits := make([]stockedit.RowEdit, 0, len(r.Edits))
	for _, e := range r.Edits {
		edits = append(edits, stockedit.RowEdit{
			Row:                  *e.Row,
			BeginningDate:        e.BeginningDate,
			BeginningTime:        e.BeginningTime,
			BookingLimitDatetime: e.BookingLimitDatetime,
			PriceCategoryID:      e.PriceCategoryID,
			RemainingQuantity:    e.RemainingQuantity.Optional,
		})
	}
	return edits
}

type TierQuantityRequest struct {
	PriceCategoryID int64 `json:"priceCategoryId" binding:"required,min=1"`
	// omitted or null means unlimited
	Quantity *int `json:"quantity" binding:"omitempty,min=0,max=1000000"`
}

type RecurrenceRequest struct {
	Dates                  []string              `json:"dates" binding:"required,min=1,dive,datetime=2006-01-02"`
	Times                  []string              `json:"times" binding:"required,min=1,dive,datetime=15:04"`
	Quantities             []TierQuantityRequest `json:"quantities" binding:"required,min=1,dive"`
	BookingLimitDaysBefore *int                  `json:"bookingLimitDaysBefore" binding:"omitempty,min=0"`
}

func (r RecurrenceRequest) ToDomain() stockedit.Recurrence {
	quantities := make([]stockedit.TierQuantity, 0, len(r.Quantities))
	for _, q := range r.Quantities {
		quantities = append(quantities, stockedit.TierQuantity{
			PriceCategoryID: q.PriceCategoryID,
			Quantity:        q.Quantity,
		})
	}
	return stockedit.Recurrence{
		Dates:                  r.Dates,
		Times:                  r.Times,
		Quantities:             quantities,
		BookingLimitDaysBefore: r.BookingLimitDaysBefore,
	}
}
