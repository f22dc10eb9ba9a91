package stockedit

import (
	"context"
	"log/slog"
	"net/url"

	"pro-stock-editor/internal/domain/localtime"
	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/domain/stock"
	"pro-stock-editor/internal/domain/stocklist"
	"pro-stock-editor/internal/pkg/clock"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenParams struct {
	OfferID int64
	OwnerID uuid.UUID
	Mode    offer.WizardMode
	Query   url.Values
}

type FilterParams struct {
	Date            string
	Time            string
	PriceCategoryID int64
}

type Service interface {
	Open(ctx context.Context, p OpenParams) (*Result, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*Result, error)
	Close(ctx context.Context, id, ownerID uuid.UUID) error
	ChangeFilters(ctx context.Context, id, ownerID uuid.UUID, p FilterParams) (*Result, error)
	ResetFilters(ctx context.Context, id, ownerID uuid.UUID) (*Result, error)
	ToggleSort(ctx context.Context, id, ownerID uuid.UUID, col stocklist.SortColumn) (*Result, error)
	NavigatePage(ctx context.Context, id, ownerID uuid.UUID, dir stocklist.Direction) (*Result, error)
	ResolveDialog(ctx context.Context, id, ownerID uuid.UUID, confirm bool) (*Result, error)
	AddRow(ctx context.Context, id, ownerID uuid.UUID) (*Result, error)
	EditRows(ctx context.Context, id, ownerID uuid.UUID, edits []RowEdit) (*Result, error)
	DeleteRow(ctx context.Context, id, ownerID uuid.UUID, row int, confirmed bool) (*Result, error)
	Submit(ctx context.Context, id, ownerID uuid.UUID, confirmed bool) (*Result, error)
	SubmitRecurrence(ctx context.Context, id, ownerID uuid.UUID, r Recurrence) (*Result, error)
}

type Options struct {
	PageSize int
	// Locks is shared with whatever purges sessions; a private set is used
	// when nil.
	Locks *Locks
}

type service struct {
	store  SessionStore
	stocks shared.StockGateway
	offers shared.OfferSummaries
	events shared.EventLogger
	clock  clock.Clock
	logger *slog.Logger
	opts   Options
	locks  *Locks
}

func NewService(
	store SessionStore,
	stocks shared.StockGateway,
	offers shared.OfferSummaries,
	events shared.EventLogger,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) Service {
	if opts.PageSize <= 0 {
		opts.PageSize = stocklist.DefaultPageSize
	}
	if opts.Locks == nil {
		opts.Locks = NewLocks()
	}
	return &service{
		store:  store,
		stocks: stocks,
		offers: offers,
		events: events,
		clock:  clk,
		logger: logger,
		opts:   opts,
		locks:  opts.Locks,
	}
}

func (s *service) Open(ctx context.Context, p OpenParams) (*Result, error) {
	summary, err := s.offers.Get(ctx, p.OfferID)
	if err != nil {
		return nil, err
	}
	if !summary.IsEvent {
		return nil, errs.Wrapf(ErrNotEventOffer, "offer %d", p.OfferID)
	}
	if !p.Mode.Valid() {
		p.Mode = offer.ModeEdition
	}

	now := s.clock.Now()
	sess := &Session{
		ID:        uuid.New(),
		OfferID:   p.OfferID,
		OwnerID:   p.OwnerID,
		Mode:      p.Mode,
		Offer:     *summary,
		Filter:    stocklist.ParseQuery(p.Query),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("stock edit session opened",
		slog.String("session_id", sess.ID.String()),
		slog.Int64("offer_id", p.OfferID),
		slog.String("mode", string(p.Mode)))

	sess, err = s.fetch(ctx, sess.ID, p.OwnerID)
	if err != nil {
		return nil, err
	}
	return s.result(sess), nil
}

func (s *service) Get(ctx context.Context, id, ownerID uuid.UUID) (*Result, error) {
	sess, err := s.load(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.result(sess), nil
}

func (s *service) Close(ctx context.Context, id, ownerID uuid.UUID) error {
	lock := s.locks.get(id)
	lock.state.Lock()
	defer lock.state.Unlock()

	if _, err := s.load(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.locks.Forget(id)
	return nil
}

func (s *service) ChangeFilters(ctx context.Context, id, ownerID uuid.UUID, p FilterParams) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	sess, err := s.mutate(ctx, id, ownerID, func(sess *Session) (Action, error) {
		return FiltersChanged{Filter: sess.Filter.WithFilters(p.Date, p.Time, p.PriceCategoryID)}, nil
	})
	if err != nil {
		return nil, err
	}
	s.logEvent(ctx, sess, shared.EventUpdatedStockFilters, map[string]any{
		"hasDateFilter":          p.Date != "",
		"hasTimeFilter":          p.Time != "",
		"hasPriceCategoryFilter": p.PriceCategoryID != 0,
	})
	return s.refetch(ctx, id, ownerID)
}

func (s *service) ResetFilters(ctx context.Context, id, ownerID uuid.UUID) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	if _, err := s.mutate(ctx, id, ownerID, func(sess *Session) (Action, error) {
		return FiltersChanged{Filter: sess.Filter.Reset()}, nil
	}); err != nil {
		return nil, err
	}
	return s.refetch(ctx, id, ownerID)
}

func (s *service) ToggleSort(ctx context.Context, id, ownerID uuid.UUID, col stocklist.SortColumn) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	sess, err := s.mutate(ctx, id, ownerID, func(sess *Session) (Action, error) {
		return FiltersChanged{Filter: sess.Filter.ToggleSort(col)}, nil
	})
	if err != nil {
		return nil, err
	}
	s.logEvent(ctx, sess, shared.EventSortStocksTable, map[string]any{
		"sortBy":   string(sess.Filter.SortColumn),
		"sortDesc": sess.Filter.SortDesc,
	})
	return s.refetch(ctx, id, ownerID)
}

func (s *service) NavigatePage(ctx context.Context, id, ownerID uuid.UUID, dir stocklist.Direction) (*Result, error) {
	lock := s.locks.get(id)
	lock.op.Lock()
	defer lock.op.Unlock()

	var before int
	sess, err := s.mutate(ctx, id, ownerID, func(sess *Session) (Action, error) {
		before = sess.Filter.Page
		return PageRequested{Direction: dir, PageCount: sess.PageCount(s.opts.PageSize)}, nil
	})
	if err != nil {
		return nil, err
	}
	if sess.Pending.Dialog == DialogDiscardChanges || sess.Filter.Page == before {
		return s.result(sess), nil
	}
	return s.refetch(ctx, id, ownerID)
}

func (s *service) ResolveDialog(ctx context.Context, id, ownerID uuid.UUID, confirm bool) (*Result, error) {
	var pending Pending
	sess, err := s.mutate(ctx, id, ownerID, func(sess *Session) (Action, error) {
		if sess.Pending.Dialog == DialogNone {
			return nil, ErrNoPendingDialog
		}
		pending = sess.Pending
		return DialogClosed{}, nil
	})
	if err != nil {
		return nil, err
	}
	if !confirm {
		return s.result(sess), nil
	}

	switch pending.Dialog {
	case DialogDiscardChanges:
		lock := s.locks.get(id)
		lock.op.Lock()
		defer lock.op.Unlock()

		if _, err := s.mutate(ctx, id, ownerID, func(sess *Session) (Action, error) {
			return FiltersChanged{Filter: sess.Filter.Step(pending.Direction, sess.PageCount(s.opts.PageSize))}, nil
		}); err != nil {
			return nil, err
		}
		return s.refetch(ctx, id, ownerID)
	case DialogBookingImpact:
		return s.Submit(ctx, id, ownerID, true)
	case DialogDeleteBooked:
		row := -1
		if pending.StockID != nil {
			row = sess.rowByStockID(*pending.StockID)
		}
		if row < 0 {
			return nil, ErrRowNotFound
		}
		return s.DeleteRow(ctx, id, ownerID, row, true)
	default:
		return nil, ErrNoPendingDialog
	}
}

func (s *service) AddRow(ctx context.Context, id, ownerID uuid.UUID) (*Result, error) {
	sess, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
		return RowAdded{}, nil
	})
	if err != nil {
		return nil, err
	}
	return s.result(sess), nil
}

// EditRows applies in-memory edits and reports the validation state of the
// fields that were touched.
func (s *service) EditRows(ctx context.Context, id, ownerID uuid.UUID, edits []RowEdit) (*Result, error) {
	sess, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
		return RowsEdited{Edits: edits}, nil
	})
	if err != nil {
		return nil, err
	}

	res := s.result(sess)
	rules := sess.rules()
	for _, edit := range edits {
		for _, f := range edit.Fields() {
			res.ValidationErrors = append(res.ValidationErrors, stock.ValidateField(edit.Row, sess.Live[edit.Row], f, rules)...)
		}
	}
	return res, nil
}

// load reads a session and checks that ownerID may use it.
func (s *service) load(ctx context.Context, id, ownerID uuid.UUID) (*Session, error) {
	sess, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.OwnerID != ownerID {
		return nil, ErrSessionForbidden
	}
	return sess, nil
}

// mutate reduces the stored session with the action built by fn and saves it,
// all under the session's state lock.
func (s *service) mutate(ctx context.Context, id, ownerID uuid.UUID, fn func(*Session) (Action, error)) (*Session, error) {
	lock := s.locks.get(id)
	lock.state.Lock()
	defer lock.state.Unlock()

	sess, err := s.load(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	action, err := fn(sess)
	if err != nil {
		return nil, err
	}
	next, err := Reduce(sess, action)
	if err != nil {
		return nil, err
	}
	next.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) refetch(ctx context.Context, id, ownerID uuid.UUID) (*Result, error) {
	sess, err := s.fetch(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.result(sess), nil
}

// fetch loads the page described by the session's filter and replaces the
// session rows with it. The state lock is released during the upstream call;
// if another fetch started meanwhile, this response is dropped and the
// current session returned.
func (s *service) fetch(ctx context.Context, id, ownerID uuid.UUID) (*Session, error) {
	started, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) {
		return FetchStarted{}, nil
	})
	if err != nil {
		return nil, err
	}
	gen := started.Generation
	dept := started.Offer.DepartementCode
	now := s.clock.Now()

	page, err := s.stocks.ListStocks(ctx, started.OfferID, started.Filter.ServerQuery(dept, now, s.opts.PageSize))
	if err == nil {
		var entries []stock.Entry
		entries, err = s.toEntries(page.Stocks, started.Offer, localtime.Today(now, dept))
		if err == nil {
			return s.applyFetch(ctx, id, ownerID, FetchSucceeded{Generation: gen, Entries: entries, TotalCount: page.TotalCount})
		}
	}

	s.logger.Error("failed to fetch stocks",
		slog.String("session_id", id.String()),
		slog.Int64("offer_id", started.OfferID),
		slog.Any("error", err))
	if _, ferr := s.applyFetch(ctx, id, ownerID, FetchFailed{Generation: gen}); ferr != nil {
		return nil, ferr
	}
	return nil, err
}

func (s *service) applyFetch(ctx context.Context, id, ownerID uuid.UUID, a Action) (*Session, error) {
	sess, err := s.mutate(ctx, id, ownerID, func(*Session) (Action, error) { return a, nil })
	if errs.Is(err, ErrStaleFetch) {
		s.logger.Debug("discarding stale stock page", slog.String("session_id", id.String()))
		return s.load(ctx, id, ownerID)
	}
	return sess, err
}

func (s *service) toEntries(snaps []stock.Snapshot, summary offer.Summary, today string) ([]stock.Entry, error) {
	entries := make([]stock.Entry, 0, len(snaps))
	for _, snap := range snaps {
		e, err := stock.FromSnapshot(snap, summary, today)
		if err != nil {
			return nil, errs.Wrapf(err, "stock %d", snap.ID)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// refreshOffer re-reads the offer summary after a mutation. A failure only
// leaves the previous summary in place.
func (s *service) refreshOffer(ctx context.Context, offerID int64) *offer.Summary {
	summary, err := s.offers.Refresh(ctx, offerID)
	if err != nil {
		s.logger.Warn("failed to refresh offer summary", slog.Int64("offer_id", offerID), slog.Any("error", err))
		return nil
	}
	return summary
}

func (s *service) logEvent(ctx context.Context, sess *Session, name string, props map[string]any) {
	s.events.Log(ctx, shared.Event{
		Name:       name,
		OfferID:    sess.OfferID,
		UserID:     sess.OwnerID,
		Properties: props,
		OccurredAt: s.clock.Now(),
	})
}

func (s *service) result(sess *Session) *Result {
	today := localtime.Today(s.clock.Now(), sess.Offer.DepartementCode)
	return &Result{View: buildView(sess, today, s.opts.PageSize)}
}
