package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/pulse/internal/domain/model"
)

// MemoryStore is an insertion-ordered in-memory store. It backs dev mode
// (no project key configured) and tests. Keys are uuid-assigned to mirror
// the opaque keys of the real base.
type MemoryStore struct {
	mu       sync.RWMutex
	readings []model.Reading
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// FetchAll returns a copy of every stored reading in insertion order.
func (s *MemoryStore) FetchAll(_ context.Context) ([]model.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Reading, len(s.readings))
	copy(out, s.readings)
	return out, nil
}

// Insert appends one reading and returns its generated key.
func (s *MemoryStore) Insert(_ context.Context, r model.Reading) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Key = uuid.NewString()
	s.readings = append(s.readings, r)
	return r.Key, nil
}

// Len returns the number of stored readings.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}
