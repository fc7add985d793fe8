package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// sweepInterval is the minimum gap between two expiry sweeps.
const sweepInterval = time.Minute

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used when no Redis URL is set.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	sessions  map[string]memoryEntry
	lastSweep time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.sessions, id)
		return nil, nil
	}
	s := e.session
	s.SavedCrops = append([]string(nil), e.session.SavedCrops...)
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	if s.ID == "" {
		return fmt.Errorf("session: missing session id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	s.SavedCrops = append([]string(nil), s.SavedCrops...)
	m.sessions[s.ID] = memoryEntry{session: s, expiresAt: m.now().Add(m.ttl)}
	m.sweepLocked()
	return nil
}

func (m *MemoryStore) Touch(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.sessions[id]; ok && m.now().Before(e.expiresAt) {
		e.expiresAt = m.now().Add(m.ttl)
		m.sessions[id] = e
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// sweepLocked drops expired sessions at most once per sweepInterval, so the
// full scan is amortised over all writes in that window.
func (m *MemoryStore) sweepLocked() {
	now := m.now()
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, id)
		}
	}
}

var _ Store = (*MemoryStore)(nil)
