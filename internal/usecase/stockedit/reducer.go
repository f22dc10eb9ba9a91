package stockedit

import (
	"slices"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/pkg/patch"
)

// Action is a state transition of a Session. Transitions never perform I/O;
// the Service runs them around its upstream calls.
type Action interface {
	apply(s *Session) error
}

// Reduce returns the session after a, leaving s untouched. On error the
// returned session is s unchanged.
func Reduce(s *Session, a Action) (*Session, error) {
	next := s.Clone()
	if err := a.apply(next); err != nil {
		return s, err
	}
	return next, nil
}

// FetchStarted tags a new fetch; any response to an older tag is stale.
type FetchStarted struct{}

func (FetchStarted) apply(s *Session) error {
	s.Generation++
	s.Loading = true
	return nil
}

// FetchSucceeded replaces both the live rows and the baseline with a fetched page.
type FetchSucceeded struct {
	Generation uint64
	Entries    []stock.Entry
	TotalCount int
	Offer      *offer.Summary
}

func (a FetchSucceeded) apply(s *Session) error {
	if a.Generation != s.Generation {
		return ErrStaleFetch
	}
	s.Baseline = stock.CloneEntries(a.Entries)
	s.Live = stock.CloneEntries(a.Entries)
	s.TotalCount = a.TotalCount
	if a.Offer != nil {
		s.Offer = *a.Offer
	}
	s.Loading = false
	s.Pending = Pending{}
	return nil
}

type FetchFailed struct {
	Generation uint64
}

func (a FetchFailed) apply(s *Session) error {
	if a.Generation != s.Generation {
		return ErrStaleFetch
	}
	s.Loading = false
	return nil
}

type FiltersChanged struct {
	Filter stocklist.FilterState
}

func (a FiltersChanged) apply(s *Session) error {
	s.Filter = a.Filter
	s.Pending = Pending{}
	return nil
}

// PageRequested moves one page, or asks for confirmation first when edits
// would be lost.
type PageRequested struct {
	Direction stocklist.Direction
	PageCount int
}

func (a PageRequested) apply(s *Session) error {
	if s.IsDirty() {
		s.Pending = Pending{Dialog: DialogDiscardChanges, Direction: a.Direction}
		return nil
	}
	s.Filter = s.Filter.Step(a.Direction, a.PageCount)
	return nil
}

type ConfirmationRequested struct {
	Pending Pending
}

func (a ConfirmationRequested) apply(s *Session) error {
	s.Pending = a.Pending
	return nil
}

type DialogClosed struct{}

func (DialogClosed) apply(s *Session) error {
	s.Pending = Pending{}
	return nil
}

// RowEdit carries the fields the operator changed on one row; nil fields are untouched.
type RowEdit struct {
	Row                  int
	BeginningDate        *string
	BeginningTime        *string
	BookingLimitDatetime *string
	PriceCategoryID      *int64
	RemainingQuantity    patch.Optional[int]
}

func (e RowEdit) Fields() []stock.Field {
	var out []stock.Field
	if e.BeginningDate != nil {
		out = append(out, stock.FieldBeginningDate)
	}
	if e.BeginningTime != nil {
		out = append(out, stock.FieldBeginningTime)
	}
	if e.BookingLimitDatetime != nil {
		out = append(out, stock.FieldBookingLimitDatetime)
	}
	if e.PriceCategoryID != nil {
		out = append(out, stock.FieldPriceCategoryID)
	}
	if e.RemainingQuantity.Set {
		out = append(out, stock.FieldRemainingQuantity)
	}
	return out
}

type RowsEdited struct {
	Edits []RowEdit
}

func (a RowsEdited) apply(s *Session) error {
	for _, edit := range a.Edits {
		if edit.Row < 0 || edit.Row >= len(s.Live) {
			return errs.Wrapf(ErrRowNotFound, "row %d", edit.Row)
		}
		e := &s.Live[edit.Row]
		for _, f := range edit.Fields() {
			if e.ReadOnlyFields.Has(f) {
				return errs.Wrapf(ErrReadOnlyField, "row %d %s", edit.Row, f)
			}
		}
		e.BeginningDate = patch.Coalesce(edit.BeginningDate, e.BeginningDate)
		e.BeginningTime = patch.Coalesce(edit.BeginningTime, e.BeginningTime)
		e.BookingLimitDatetime = patch.Coalesce(edit.BookingLimitDatetime, e.BookingLimitDatetime)
		e.PriceCategoryID = patch.Coalesce(edit.PriceCategoryID, e.PriceCategoryID)
		e.RemainingQuantity = edit.RemainingQuantity.Apply(e.RemainingQuantity)
	}
	return nil
}

type RowAdded struct{}

func (RowAdded) apply(s *Session) error {
	s.Live = append(s.Live, stock.EmptyEntry())
	return nil
}

// RowRemoved drops a row that was never saved.
type RowRemoved struct {
	Row int
}

func (a RowRemoved) apply(s *Session) error {
	if a.Row < 0 || a.Row >= len(s.Live) {
		return errs.Wrapf(ErrRowNotFound, "row %d", a.Row)
	}
	s.Live = slices.Delete(s.Live, a.Row, a.Row+1)
	return nil
}

// StockDeleted removes a deleted stock from both the live rows and the
// baseline so it no longer takes part in diffing.
type StockDeleted struct {
	StockID int64
	Offer   *offer.Summary
}

func (a StockDeleted) apply(s *Session) error {
	deleted := func(e stock.Entry) bool { return e.ID != nil && *e.ID == a.StockID }
	s.Live = slices.DeleteFunc(s.Live, deleted)
	s.Baseline = slices.DeleteFunc(s.Baseline, deleted)
	s.TotalCount = max(s.TotalCount-1, 0)
	if a.Offer != nil {
		s.Offer = *a.Offer
	}
	s.Pending = Pending{}
	return nil
}

// Submitted makes the saved rows the new baseline. Blank rows were not sent
// and are dropped. Edits made while the request was in flight stay dirty.
// Generation is the session generation the saved rows were read at; when a
// fetch replaced the rows since, the fetched page is kept as is.
type Submitted struct {
	Generation uint64
	Saved      []stock.Entry
	Offer      *offer.Summary
}

func (a Submitted) apply(s *Session) error {
	if a.Offer != nil {
		s.Offer = *a.Offer
	}
	s.Pending = Pending{}
	if a.Generation != s.Generation {
		return nil
	}
	s.Live = slices.DeleteFunc(s.Live, stock.Entry.IsEmptyTemplate)
	s.Baseline = slices.DeleteFunc(stock.CloneEntries(a.Saved), stock.Entry.IsEmptyTemplate)
	return nil
}

type OfferRefreshed struct {
	Offer offer.Summary
}

func (a OfferRefreshed) apply(s *Session) error {
	s.Offer = a.Offer
	return nil
}
