package store

import (
	"context"
	"sync"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

// MemoryStore keeps every saved record in memory, in save order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.Record
	saves   int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveObjects appends the records. Nil entries are skipped.
func (s *MemoryStore) SaveObjects(ctx context.Context, records []*domain.Record) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves++
	for _, r := range records {
		if r == nil {
			continue
		}
		s.records = append(s.records, *r)
	}
	return nil
}

// Records returns a copy of everything saved so far.
func (s *MemoryStore) Records() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Record, len(s.records))
	copy(result, s.records)
	return result
}

// Saves returns how many times SaveObjects has been called.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Reset drops all saved records and the save counter.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.saves = 0
}
