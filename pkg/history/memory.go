package history

import (
	"context"
	"slices"
	"sync"
)

// DefaultCapacity bounds a MemoryStore created with a non-positive capacity.
const DefaultCapacity = 1000

// MemoryStore keeps the most recent records in memory. When full, the oldest
// record is evicted.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]*Record
	order    []string // IDs, oldest first
	capacity int
}

// NewMemoryStore creates an empty store holding at most capacity records.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		records:  make(map[string]*Record),
		capacity: capacity,
	}
}

// Save stores a copy of rec.
func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	if _, ok := s.records[rec.ID]; ok {
		s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == rec.ID })
	}
	for len(s.order) >= s.capacity {
		delete(s.records, s.order[0])
		s.order = s.order[1:]
	}
	s.records[rec.ID] = &cp
	s.order = append(s.order, rec.ID)
	return nil
}

// Get returns a copy of the record with id.
func (s *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *rec
	return &cp, nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns every record.
func (s *MemoryStore) List(_ context.Context, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]*Record, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *s.records[s.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Close does nothing.
func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
