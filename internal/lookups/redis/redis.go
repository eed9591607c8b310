package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/lookups"
)

const (
	sourceName = "redis"
	// DefaultPrefix namespaces lookup keys: records for "x" live at "records:lookup:x".
	DefaultPrefix = "records:lookup:"
)

// getter is the slice of the go-redis client the lookup needs.
type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

// Lookup reads a JSON array of records stored under prefix+searchKey.
type Lookup struct {
	rdb    getter
	prefix string
}

// New builds a Lookup over an existing client. An empty prefix uses DefaultPrefix.
func New(rdb *goredis.Client, prefix string) *Lookup {
	return newLookup(rdb, prefix)
}

func newLookup(rdb getter, prefix string) *Lookup {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Lookup{rdb: rdb, prefix: prefix}
}

// Key returns the redis key holding records for searchKey.
func (l *Lookup) Key(searchKey string) string {
	return l.prefix + searchKey
}

func (l *Lookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	raw, err := l.rdb.Get(ctx, l.Key(searchKey)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []*domain.Record{}, nil
	}
	if err != nil {
		return nil, l.fail(searchKey, fmt.Errorf("failed to read key %s: %w", l.Key(searchKey), err))
	}

	var records []*domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, l.fail(searchKey, fmt.Errorf("failed to unmarshal records: %w", err))
	}
	if records == nil {
		records = []*domain.Record{}
	}
	return records, nil
}

func (l *Lookup) fail(searchKey string, err error) error {
	return &lookups.LookupError{Source: sourceName, SearchKey: searchKey, Err: err}
}
