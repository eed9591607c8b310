package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

// DefaultRedisKey is the list that receives saved records.
const DefaultRedisKey = "records:saved"

type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisStore appends each saved record's JSON to a redis list.
type RedisStore struct {
	rdb listPusher
	key string
}

// NewRedisStore builds a store over an existing client. An empty key uses DefaultRedisKey.
func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return newRedisStore(rdb, key)
}

func newRedisStore(rdb listPusher, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

// SaveObjects pushes all non-nil records in a single RPUSH. Nothing to push is a no-op.
func (s *RedisStore) SaveObjects(ctx context.Context, records []*domain.Record) error {
	values := make([]interface{}, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		values = append(values, string(payload))
	}
	if len(values) == 0 {
		return nil
	}

	if err := s.rdb.RPush(ctx, s.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to push records to %s: %w", s.key, err)
	}
	return nil
}
