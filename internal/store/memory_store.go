package store

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-roster-service/internal/cache"
)

// MemoryStore keeps the cached roster entry in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	entry *cache.Entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored entry.
func (s *MemoryStore) Load(ctx context.Context) (cache.Entry, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.entry == nil {
		return cache.Entry{}, false, nil
	}
	entry := *s.entry
	entry.Roster = entry.Roster.Clone()
	return entry, true, nil
}

// Save replaces the stored entry.
func (s *MemoryStore) Save(ctx context.Context, entry cache.Entry) error {
	_ = ctx
	entry.Roster = entry.Roster.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = &entry
	return nil
}

// Clear drops the stored entry.
func (s *MemoryStore) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = nil
	return nil
}
