package memory

import (
	"context"
	"sync"

	"github.com/mwhitmore/ledgerlens/internal/common"
	"github.com/mwhitmore/ledgerlens/internal/model"
)

// MapStore is an in-memory Store for tests and embedding callers that
// manage persistence themselves.
type MapStore struct {
	entries map[string]model.Vendor
	mu      sync.RWMutex
}

// NewMapStore creates an empty in-memory vendor store.
func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[string]model.Vendor)}
}

// Get returns the entry for a normalized key, or common.ErrNotFound.
func (s *MapStore) Get(_ context.Context, key string) (*model.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &entry, nil
}

// Put stores an entry under its normalized name, replacing any prior value.
func (s *MapStore) Put(_ context.Context, vendor *model.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[vendor.Name] = *vendor
	return nil
}

// Len reports how many vendors have been learned.
func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
