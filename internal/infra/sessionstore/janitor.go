package sessionstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pro-stock-editor/internal/usecase/stockedit"

	"github.com/google/uuid"
)

// Store is a session store that can drop expired sessions.
type Store interface {
	stockedit.SessionStore
	Purge(ctx context.Context) ([]uuid.UUID, error)
}

// LockReleaser drops in-process state kept for a session.
type LockReleaser interface {
	Forget(id uuid.UUID)
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PostgresStore)(nil)
)

// Janitor purges expired sessions on a fixed interval until stopped and
// releases their locks.
type Janitor struct {
	store    Store
	locks    LockReleaser
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewJanitor(store Store, locks LockReleaser, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{store: store, locks: locks, interval: interval, logger: logger}
}

func (j *Janitor) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.sweep(ctx)
			}
		}
	}()
}

func (j *Janitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()
}

func (j *Janitor) sweep(ctx context.Context) {
	ids, err := j.store.Purge(ctx)
	if err != nil {
		j.logger.Warn("failed to purge expired edit sessions", "error", err)
		return
	}
	for _, id := range ids {
		j.locks.Forget(id)
	}
	if len(ids) > 0 {
		j.logger.Info("purged expired edit sessions", "count", len(ids))
	}
}
