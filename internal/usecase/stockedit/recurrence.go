package stockedit

import (
	"context"
	"log/slog"
	"slices"

	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/pkg/patch"
	"pro-stock-editor/internal/pkg/ptr"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxRecurrenceRows caps how many stocks one recurrence may create.
const MaxRecurrenceRows = 500

type TierQuantity struct {
	PriceCategoryID int64
	Quantity        *int
}

// Recurrence creates one stock per date, time and price tier. Dates and
// times are local to the venue.
type Recurrence struct {
	Dates                  []string
	Times                  []string
	Quantities             []TierQuantity
	BookingLimitDaysBefore *int
}

func (r Recurrence) size() int {
	return len(r.Dates) * len(r.Times) * len(r.Quantities)
}

func (r Recurrence) validate(today string, knownTier func(int64) bool) error {
	if r.size() == 0 {
		return errs.Wrap(ErrInvalidRecurrence, "at least one date, time and price category is required")
	}
	if r.size() > MaxRecurrenceRows {
		return errs.Wrapf(ErrInvalidRecurrence, "%d stocks requested, at most %d allowed", r.size(), MaxRecurrenceRows)
	}
	for _, d := range r.Dates {
		if _, err := localtime.ParseDate(d); err != nil {
			return errs.Wrapf(ErrInvalidRecurrence, "date %q", d)
		}
		if d < today {
			return errs.Wrapf(ErrInvalidRecurrence, "date %s is in the past", d)
		}
	}
	for _, t := range r.Times {
		if !localtime.IsValidClock(t) {
			return errs.Wrapf(ErrInvalidRecurrence, "time %q", t)
		}
	}
	for _, q := range r.Quantities {
		if !knownTier(q.PriceCategoryID) {
			return errs.Wrapf(ErrInvalidRecurrence, "unknown price category %d", q.PriceCategoryID)
		}
		if q.Quantity != nil && (*q.Quantity < 0 || *q.Quantity > stock.MaxQuantity) {
			return errs.Wrapf(ErrInvalidRecurrence, "quantity %d", *q.Quantity)
		}
	}
	if r.BookingLimitDaysBefore != nil && *r.BookingLimitDaysBefore < 0 {
		return errs.Wrap(ErrInvalidRecurrence, "booking limit must be before the event")
	}
	return nil
}

func (r Recurrence) rows(dept string) ([]shared.UpsertRow, error) {
	dates := slices.Clone(r.Dates)
	slices.Sort(dates)
	dates = slices.Compact(dates)

	rows := make([]shared.UpsertRow, 0, r.size())
	for _, date := range dates {
		limit := patch.Optional[string]{Set: true}
		if r.BookingLimitDaysBefore != nil {
			day, err := localtime.AddDays(date, -*r.BookingLimitDaysBefore)
			if err != nil {
				return nil, err
			}
			instant, err := localtime.EndOfDayUTCInstant(day, dept)
			if err != nil {
				return nil, err
			}
			limit.Value = &instant
		}
		for _, clock := range r.Times {
			beginning, err := localtime.LocalToUTCInstant(date, clock, dept)
			if err != nil {
				return nil, err
			}
			for _, q := range r.Quantities {
				rows = append(rows, shared.UpsertRow{
					BeginningDatetime:    ptr.Of(beginning),
					BookingLimitDatetime: limit,
					PriceCategoryID:      ptr.Of(q.PriceCategoryID),
					Quantity:             patch.Optional[int]{Set: true, Value: ptr.Clone(q.Quantity)},
				})
			}
		}
	}
	return rows, nil
}

// SubmitRecurrence creates the stocks described by r, then reloads the
// current page and the offer summary.
func (s *service) SubmitRecurrence(ctx context.Context, id, ownerID uuid.UUID, r Recurrence) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	sess, err := s.load(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if sess.Offer.IsDisabled() {
		return nil, errs.Wrapf(ErrInvalidRecurrence, "offer %d cannot be edited", sess.OfferID)
	}
	dept := sess.Offer.DepartementCode
	if err := r.validate(localtime.Today(s.clock.Now(), dept), sess.Offer.HasPriceCategory); err != nil {
		return nil, err
	}
	rows, err := r.rows(dept)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRecurrence)
	}

	created, err := s.stocks.BulkCreate(ctx, sess.OfferID, rows)
	if err != nil {
		s.logger.Error("failed to create recurrence",
			slog.String("session_id", id.String()),
			slog.Int64("offer_id", sess.OfferID),
			slog.Int("rows", len(rows)),
			slog.Any("error", err))
		res := s.result(sess)
		res.Notification = &Notification{Kind: NotificationError, Message: msgRecurrenceFailed}
		return res, nil
	}
	s.logger.Info("recurrence created",
		slog.String("session_id", id.String()),
		slog.Int64("offer_id", sess.OfferID),
		slog.Int("created", created))

	if summary := s.refreshOffer(ctx, sess.OfferID); summary != nil {
		if _, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
			return OfferRefreshed{Offer: *summary}, nil
		}); err != nil {
			return nil, err
		}
	}

	after, err := s.fetch(ctx, id, ownerID)
	if err != nil {
		s.logger.Warn("failed to reload stocks after recurrence", slog.String("session_id", id.String()), slog.Any("error", err))
		if after, err = s.load(ctx, id, ownerID); err != nil {
			return nil, err
		}
	}
	res := s.result(after)
	res.Notification = &Notification{Kind: NotificationSuccess, Message: msgRecurrenceSaved}
	return res, nil
}
