package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

// GoodLookup returns the provided records with no error and counts calls.
type GoodLookup struct {
	Records []*domain.Record

	mu    sync.Mutex
	calls int
}

func (l *GoodLookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	_ = ctx
	_ = searchKey
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return l.Records, nil
}

// Calls returns how many lookups were made.
func (l *GoodLookup) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// ErrLookup always returns the provided error.
type ErrLookup struct {
	Err error
}

func (l ErrLookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	return nil, l.Err
}

// RecordingPersister remembers every batch it was asked to save.
type RecordingPersister struct {
	Err error

	mu      sync.Mutex
	batches [][]*domain.Record
}

func (p *RecordingPersister) SaveObjects(ctx context.Context, records []*domain.Record) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, records)
	return p.Err
}

// Batches returns the batches saved so far.
func (p *RecordingPersister) Batches() [][]*domain.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]*domain.Record, len(p.batches))
	copy(out, p.batches)
	return out
}
