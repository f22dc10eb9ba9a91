package stockedit

import (
	"time"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

type Dialog string

const (
	DialogNone           Dialog = ""
	DialogBookingImpact  Dialog = "booking_impact"
	DialogDeleteBooked   Dialog = "delete_with_bookings"
	DialogDiscardChanges Dialog = "discard_changes"
)

// Pending is a confirmation the operator has to answer before the blocked
// action goes on.
type Pending struct {
	Dialog    Dialog              `json:"dialog"`
	Direction stocklist.Direction `json:"direction,omitempty"`
	StockID   *int64              `json:"stockId,omitempty"`
	Rows      []int               `json:"rows,omitempty"`
}

// Session is one operator's editing state for the stocks of one offer.
type Session struct {
	ID         uuid.UUID             `json:"id"`
	OfferID    int64                 `json:"offerId"`
	OwnerID    uuid.UUID             `json:"ownerId"`
	Mode       offer.WizardMode      `json:"mode"`
	Offer      offer.Summary         `json:"offer"`
	Filter     stocklist.FilterState `json:"filter"`
	TotalCount int                   `json:"totalCount"`
	Baseline   []stock.Entry         `json:"baseline"`
	Live       []stock.Entry         `json:"live"`
	Generation uint64                `json:"generation"`
	Loading    bool                  `json:"loading"`
	Pending    Pending               `json:"pending"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// IsDirty reports whether the live rows differ from what was last fetched or saved.
func (s *Session) IsDirty() bool {
	return !cmp.Equal(s.Live, s.Baseline, cmpopts.EquateEmpty())
}

func (s *Session) PageCount(pageSize int) int {
	return stocklist.PageCount(s.TotalCount, pageSize)
}

func (s *Session) Clone() *Session {
	c := *s
	c.Offer.PriceCategories = append([]offer.PriceCategory(nil), s.Offer.PriceCategories...)
	c.Baseline = stock.CloneEntries(s.Baseline)
	c.Live = stock.CloneEntries(s.Live)
	c.Pending.Rows = append([]int(nil), s.Pending.Rows...)
	if s.Pending.StockID != nil {
		id := *s.Pending.StockID
		c.Pending.StockID = &id
	}
	return &c
}

func (s *Session) rules() stock.Rules {
	return stock.Rules{PriceCategoryIDs: s.Offer.PriceCategoryIDs()}
}

func (s *Session) rowByStockID(id int64) int {
	for i, e := range s.Live {
		if e.ID != nil && *e.ID == id {
			return i
		}
	}
	return -1
}
