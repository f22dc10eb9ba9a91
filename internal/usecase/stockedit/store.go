package stockedit

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// SessionStore persists sessions between requests. Load returns
// ErrSessionNotFound for unknown or expired sessions.
type SessionStore interface {
	Load(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Locks holds two mutexes per session: state guards load/reduce/save and is
// never held across upstream calls; op serializes actions that write
// upstream or replace the rows (submit, delete, recurrence, refetches) for
// their whole duration. Entries are dropped when a session is closed or
// purged.
type Locks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sessionLock
}

type sessionLock struct {
	state sync.Mutex
	op    sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{locks: make(map[uuid.UUID]*sessionLock)}
}

func (l *Locks) get(id uuid.UUID) *sessionLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sessionLock)
	}
	lock, ok := l.locks[id]
	if !ok {
		lock = &sessionLock{}
		l.locks[id] = lock
	}
	return lock
}

// Forget drops the locks of a session that no longer exists.
func (l *Locks) Forget(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}

func (l *Locks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
