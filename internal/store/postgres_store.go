package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

const (
	createRecordsTableSQL = `CREATE TABLE IF NOT EXISTS filtered_records (
	id BIGSERIAL PRIMARY KEY,
	property_one TEXT NOT NULL,
	property_two TEXT NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	insertRecordSQL = `INSERT INTO filtered_records (property_one, property_two) VALUES ($1, $2)`
)

type batchExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresStore inserts saved records into the filtered_records table.
type PostgresStore struct {
	db batchExecer
}

// NewPostgresStore wires a store backed by pgxpool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool}
}

// EnsureSchema creates the filtered_records table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("postgres store not initialized")
	}
	if _, err := s.db.Exec(ctx, createRecordsTableSQL); err != nil {
		return fmt.Errorf("failed to create filtered_records table: %w", err)
	}
	return nil
}

// SaveObjects inserts every complete record in one batch. Records the service
// hands over are always complete; anything else is skipped.
func (s *PostgresStore) SaveObjects(ctx context.Context, records []*domain.Record) error {
	if s.db == nil {
		return fmt.Errorf("postgres store not initialized")
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		if !r.Complete() {
			continue
		}
		batch.Queue(insertRecordSQL, *r.PropertyOne, *r.PropertyTwo)
	}
	if batch.Len() == 0 {
		return nil
	}

	results := s.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close insert batch: %w", err)
	}
	return nil
}
