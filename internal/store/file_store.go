package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

// FileStore appends saved records to a JSON array on disk.
type FileStore struct {
	mu       sync.Mutex
	filename string
}

func NewFileStore(filename string) *FileStore {
	return &FileStore{filename: filename}
}

// SaveObjects reads the existing array, appends the non-nil records and rewrites the file.
// An empty save still creates the file so callers can see the store was touched.
func (s *FileStore) SaveObjects(ctx context.Context, records []*domain.Record) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		existing = append(existing, *r)
	}

	data, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(s.filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}

// Records returns everything saved to the file so far.
func (s *FileStore) Records() ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]domain.Record, error) {
	data, err := os.ReadFile(s.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read from file: %w", err)
	}
	if len(data) == 0 {
		return []domain.Record{}, nil
	}

	var existing []domain.Record
	if err := json.Unmarshal(data, &existing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal existing records: %w", err)
	}
	return existing, nil
}
