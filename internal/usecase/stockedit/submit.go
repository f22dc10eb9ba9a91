package stockedit

import (
	"context"
	"log/slog"

	"pro-stock-editor/internal/domain/stock"

	"github.com/google/uuid"
)

// Submit validates the live rows and saves them upstream in a single bulk
// upsert. Rows whose edits touch booked stock require confirmed, otherwise
// the booking-impact dialog is opened and nothing is sent.
func (s *service) Submit(ctx context.Context, id, ownerID uuid.UUID, confirmed bool) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	sess, err := s.load(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if !sess.IsDirty() || stock.AllEmptyTemplates(sess.Live) {
		res := s.result(sess)
		res.Notification = &Notification{Kind: NotificationSuccess, Message: successMessage(sess.Mode)}
		res.RedirectTo = ReadOnlyURL(sess.OfferID, sess.Mode)
		return res, nil
	}

	if verrs := stock.ValidateAll(sess.Live, sess.rules()); len(verrs) > 0 {
		res := s.result(sess)
		res.ValidationErrors = verrs
		res.Notification = &Notification{Kind: NotificationError, Message: msgFormErrors}
		return res, nil
	}

	if !confirmed {
		if rows := stock.ImpactedRows(sess.Live, sess.Baseline); len(rows) > 0 {
			gated, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
				return ConfirmationRequested{Pending: Pending{Dialog: DialogBookingImpact, Rows: rows}}, nil
			})
			if err != nil {
				return nil, err
			}
			return s.result(gated), nil
		}
	}

	saved := stock.CloneEntries(sess.Live)
	payload, err := BuildUpsertRows(saved, sess.Baseline, sess.Offer.DepartementCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.stocks.BulkUpsert(ctx, sess.OfferID, payload); err != nil {
		s.logger.Error("failed to save stocks",
			slog.String("session_id", id.String()),
			slog.Int64("offer_id", sess.OfferID),
			slog.Int("rows", len(payload)),
			slog.Any("error", err))
		failed, merr := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
			return DialogClosed{}, nil
		})
		if merr != nil {
			return nil, merr
		}
		res := s.result(failed)
		res.Notification = &Notification{Kind: NotificationError, Message: msgSubmitFailed}
		return res, nil
	}

	summary := s.refreshOffer(ctx, sess.OfferID)
	after, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
		return Submitted{Generation: sess.Generation, Saved: saved, Offer: summary}, nil
	})
	if err != nil {
		return nil, err
	}

	if hasNewRows(saved) {
		// created rows only get their ids from a fresh page
		if after, err = s.fetch(ctx, id, ownerID); err != nil {
			s.logger.Warn("failed to reload stocks after save", slog.String("session_id", id.String()), slog.Any("error", err))
			if after, err = s.load(ctx, id, ownerID); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Info("stocks saved",
		slog.String("session_id", id.String()),
		slog.Int64("offer_id", sess.OfferID),
		slog.Int("rows", len(payload)))

	res := s.result(after)
	res.Notification = &Notification{Kind: NotificationSuccess, Message: successMessage(after.Mode)}
	res.RedirectTo = ReadOnlyURL(after.OfferID, after.Mode)
	return res, nil
}

func hasNewRows(entries []stock.Entry) bool {
	for _, e := range entries {
		if e.IsNew() && !e.IsEmptyTemplate() {
			return true
		}
	}
	return false
}

