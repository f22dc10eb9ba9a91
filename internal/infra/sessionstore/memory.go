package sessionstore

import (
	"context"
	"sync"
	"time"

	"pro-stock-editor/internal/pkg/clock"
	"pro-stock-editor/internal/usecase/stockedit"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   *stockedit.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Sessions expire ttl after their
// last save.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]memoryEntry
	ttl      time.Duration
	clock    clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]memoryEntry),
		ttl:      ttl,
		clock:    clk,
	}
}

func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (*stockedit.Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || !m.clock.Now().Before(entry.expiresAt) {
		return nil, stockedit.ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, s *stockedit.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = memoryEntry{session: s.Clone(), expiresAt: m.clock.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Purge drops expired sessions and returns their ids.
func (m *MemoryStore) Purge(_ context.Context) ([]uuid.UUID, error) {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []uuid.UUID
	for id, entry := range m.sessions {
		if !now.Before(entry.expiresAt) {
			delete(m.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
