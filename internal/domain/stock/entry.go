package stock

import (
	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/pkg/ptr"
)

// Entry is one row of the editing table: a dated occurrence of an event with
// a price tier and a capacity. Dates and times are in the venue's local zone.
type Entry struct {
	ID                   *int64   `json:"id,omitempty"`
	BeginningDate        string   `json:"beginningDate"`
	BeginningTime        string   `json:"beginningTime"`
	BookingLimitDatetime string   `json:"bookingLimitDatetime"`
	PriceCategoryID      int64    `json:"priceCategoryId"`
	RemainingQuantity    *int     `json:"remainingQuantity"` // nil means unlimited
	BookingsQuantity     int      `json:"bookingsQuantity"`
	IsDeletable          bool     `json:"isDeletable"`
	ReadOnlyFields       FieldSet `json:"readOnlyFields"`
	// local date after which activation codes attached to the stock expire
	ActivationCodesExpiration string `json:"activationCodesExpiration,omitempty"`
}

// EmptyEntry is the row template used when a blank row is added.
func EmptyEntry() Entry {
	return Entry{IsDeletable: true}
}

// IsEmptyTemplate reports whether e holds nothing an operator typed in.
func (e Entry) IsEmptyTemplate() bool {
	return e.ID == nil &&
		e.BeginningDate == "" &&
		e.BeginningTime == "" &&
		e.BookingLimitDatetime == "" &&
		e.PriceCategoryID == 0 &&
		e.RemainingQuantity == nil &&
		e.BookingsQuantity == 0 &&
		e.ReadOnlyFields.IsEmpty() &&
		e.ActivationCodesExpiration == ""
}

func (e Entry) IsNew() bool { return e.ID == nil }

// TotalQuantity is the stock's capacity including what is already booked.
func (e Entry) TotalQuantity() *int {
	if e.RemainingQuantity == nil {
		return nil
	}
	return ptr.Of(*e.RemainingQuantity + e.BookingsQuantity)
}

func (e Entry) Clone() Entry {
	c := e
	c.ID = ptr.Clone(e.ID)
	c.RemainingQuantity = ptr.Clone(e.RemainingQuantity)
	return c
}

func CloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func AllEmptyTemplates(entries []Entry) bool {
	for _, e := range entries {
		if !e.IsEmptyTemplate() {
			return false
		}
	}
	return true
}

// Snapshot is a stock as the server reports it, instants in UTC.
type Snapshot struct {
	ID                                int64
	BeginningDatetime                 string
	BookingLimitDatetime              string
	PriceCategoryID                   int64
	RemainingQuantity                 *int
	BookingsQuantity                  int
	IsEventDeletable                  bool
	HasActivationCode                 bool
	ActivationCodesExpirationDatetime string
}

// FromSnapshot builds the editable row for a server stock. today is the
// venue-local current date.
func FromSnapshot(s Snapshot, summary offer.Summary, today string) (Entry, error) {
	dept := summary.DepartementCode

	date, clock, err := localtime.UTCToLocalDateTime(s.BeginningDatetime, dept)
	if err != nil {
		return Entry{}, err
	}

	var bookingLimit string
	if s.BookingLimitDatetime != "" {
		if bookingLimit, err = localtime.UTCToLocalDate(s.BookingLimitDatetime, dept); err != nil {
			return Entry{}, err
		}
	}

	var expiration string
	if s.HasActivationCode && s.ActivationCodesExpirationDatetime != "" {
		if expiration, err = localtime.UTCToLocalDate(s.ActivationCodesExpirationDatetime, dept); err != nil {
			return Entry{}, err
		}
	}

	id := s.ID
	return Entry{
		ID:                        &id,
		BeginningDate:             date,
		BeginningTime:             clock,
		BookingLimitDatetime:      bookingLimit,
		PriceCategoryID:           s.PriceCategoryID,
		RemainingQuantity:         ptr.Clone(s.RemainingQuantity),
		BookingsQuantity:          s.BookingsQuantity,
		IsDeletable:               s.IsEventDeletable && !summary.IsDisabled(),
		ReadOnlyFields:            readOnlyFields(summary, date, today),
		ActivationCodesExpiration: expiration,
	}, nil
}

func readOnlyFields(summary offer.Summary, date, today string) FieldSet {
	switch {
	case summary.IsDisabled(), date < today:
		return AllFieldSet
	case summary.IsSynchronized():
		return ProviderFieldSet
	default:
		return 0
	}
}
