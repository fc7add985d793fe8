package market

import (
	"context"
	"sync"
	"time"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
)

// Snapshot is the content of the single cache slot.
type Snapshot struct {
	Prices    []model.PriceEntry `json:"prices"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Slot persists the one Snapshot the cache works with.
type Slot interface {
	// Load reports ok=false when the slot has never been filled.
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
	Store(ctx context.Context, snap Snapshot) error
}

// MemorySlot keeps the snapshot in process memory.
type MemorySlot struct {
	mu   sync.RWMutex
	snap Snapshot
	ok   bool
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Load(_ context.Context) (Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Prices: model.ClonePrices(s.snap.Prices), FetchedAt: s.snap.FetchedAt}, s.ok, nil
}

func (s *MemorySlot) Store(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{Prices: model.ClonePrices(snap.Prices), FetchedAt: snap.FetchedAt}
	s.ok = true
	return nil
}

var _ Slot = (*MemorySlot)(nil)
