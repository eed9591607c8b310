package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/lookups"
)

const sourceName = "file"

// Lookup reads records from a JSON document keyed by search key:
//
//	{"colors": [{"propertyOne": "red", "propertyTwo": "blue"}, null]}
//
// The file is read on every call so edits are picked up without a restart.
type Lookup struct {
	filename string
}

func New(filename string) *Lookup {
	return &Lookup{filename: filename}
}

func (l *Lookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	_ = ctx

	data, err := os.ReadFile(l.filename)
	if err != nil {
		return nil, l.fail(searchKey, fmt.Errorf("failed to read file: %w", err))
	}

	var index map[string][]*domain.Record
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, l.fail(searchKey, fmt.Errorf("failed to unmarshal records: %w", err))
	}

	records, ok := index[searchKey]
	if !ok || records == nil {
		return []*domain.Record{}, nil
	}
	return records, nil
}

func (l *Lookup) fail(searchKey string, err error) error {
	return &lookups.LookupError{Source: sourceName, SearchKey: searchKey, Err: err}
}
