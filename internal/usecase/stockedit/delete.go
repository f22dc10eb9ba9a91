package stockedit

import (
	"context"
	"log/slog"

	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/google/uuid"
)

// DeleteRow removes one row. Unsaved rows are dropped locally; saved stocks
// are deleted upstream, after confirmation when they carry bookings.
func (s *service) DeleteRow(ctx context.Context, id, ownerID uuid.UUID, row int, confirmed bool) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	sess, err := s.load(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if row < 0 || row >= len(sess.Live) {
		return nil, errs.Wrapf(ErrRowNotFound, "row %d", row)
	}
	entry := sess.Live[row]

	if entry.ID == nil {
		removed, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
			return RowRemoved{Row: row}, nil
		})
		if err != nil {
			return nil, err
		}
		return s.result(removed), nil
	}
	if !entry.IsDeletable {
		return nil, errs.Wrapf(ErrStockNotDeletable, "stock %d", *entry.ID)
	}
	stockID := *entry.ID

	if entry.BookingsQuantity > 0 && !confirmed {
		gated, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
			return ConfirmationRequested{Pending: Pending{Dialog: DialogDeleteBooked, StockID: &stockID}}, nil
		})
		if err != nil {
			return nil, err
		}
		return s.result(gated), nil
	}

	delErr := s.stocks.DeleteStock(ctx, stockID)
	summary := s.refreshOffer(ctx, sess.OfferID)

	if delErr != nil {
		s.logger.Error("failed to delete stock",
			slog.String("session_id", id.String()),
			slog.Int64("stock_id", stockID),
			slog.Any("error", delErr))
		if summary != nil {
			if _, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
				return OfferRefreshed{Offer: *summary}, nil
			}); err != nil {
				return nil, err
			}
		}
		failed, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
			return DialogClosed{}, nil
		})
		if err != nil {
			return nil, err
		}
		res := s.result(failed)
		res.Notification = &Notification{Kind: NotificationError, Message: deleteFailureMessage(delErr)}
		return res, nil
	}

	after, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
		return StockDeleted{StockID: stockID, Offer: summary}, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("stock deleted",
		slog.String("session_id", id.String()),
		slog.Int64("offer_id", sess.OfferID),
		slog.Int64("stock_id", stockID))

	after, err = s.repaginate(ctx, after)
	if err != nil {
		return nil, err
	}
	res := s.result(after)
	res.Notification = &Notification{Kind: NotificationSuccess, Message: msgStockDeleted}
	return res, nil
}

// repaginate reloads the view after a deletion. An emptied page moves back
// one page; otherwise the page is refetched to backfill, unless unsaved edits
// remain on it.
func (s *service) repaginate(ctx context.Context, sess *Session) (*Session, error) {
	switch {
	case len(sess.Live) == 0 && sess.Filter.Page > 1:
		if _, err := s.mutate(ctx, sess.ID, sess.OwnerID, func(cur *Session) (Action, error) {
			return FiltersChanged{Filter: cur.Filter.WithPage(cur.Filter.Page - 1)}, nil
		}); err != nil {
			return nil, err
		}
	case len(sess.Live) > 0 && sess.IsDirty():
		return sess, nil
	}

	fetched, err := s.fetch(ctx, sess.ID, sess.OwnerID)
	if err != nil {
		// the deletion itself succeeded
		s.logger.Warn("failed to reload stocks after delete", slog.String("session_id", sess.ID.String()), slog.Any("error", err))
		return s.load(ctx, sess.ID, sess.OwnerID)
	}
	return fetched, nil
}

func deleteFailureMessage(err error) string {
	if errs.Is(err, shared.ErrSynchronizedStockDeletion) {
		return msgDeleteSynchronized
	}
	return msgDeleteFailed
}
