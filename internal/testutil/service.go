package testutil

import (
	"github.com/preston-bernstein/record-filter-service/internal/app/records"
	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/store"
)

// NewServiceWithRecords builds a records service whose lookup always returns r
// and whose saves land in the returned in-memory store.
func NewServiceWithRecords(r []*domain.Record) (*records.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	return records.NewService(&GoodLookup{Records: r}, ms, nil, nil), ms
}
