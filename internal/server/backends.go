package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/record-filter-service/internal/app/records"
	"github.com/preston-bernstein/record-filter-service/internal/config"
	"github.com/preston-bernstein/record-filter-service/internal/logging"
	"github.com/preston-bernstein/record-filter-service/internal/lookups"
	filelookup "github.com/preston-bernstein/record-filter-service/internal/lookups/file"
	"github.com/preston-bernstein/record-filter-service/internal/lookups/fixture"
	redislookup "github.com/preston-bernstein/record-filter-service/internal/lookups/redis"
	"github.com/preston-bernstein/record-filter-service/internal/metrics"
	"github.com/preston-bernstein/record-filter-service/internal/store"
)

// backends holds the collaborators handed to the records service plus
// whatever connections must be released on shutdown.
type backends struct {
	lookup    records.Lookup
	persister records.Persister
	closers   []func()
}

func (b backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// backendFactory assembles the configured lookup (instrumented) and persister.
type backendFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newBackendFactory(logger *slog.Logger, metrics *metrics.Recorder) backendFactory {
	return backendFactory{logger: logger, metrics: metrics}
}

func (f backendFactory) build(ctx context.Context, cfg config.Config) (backends, error) {
	if err := cfg.Validate(); err != nil {
		return backends{}, err
	}

	var b backends
	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		b.closers = append(b.closers, func() { _ = rdb.Close() })
	}

	base, err := f.selectLookup(cfg, rdb)
	if err != nil {
		b.close()
		return backends{}, err
	}
	b.lookup = lookups.NewInstrumentedLookup(base, f.logger, f.metrics, cfg.Lookup)

	persister, closer, err := f.selectPersister(ctx, cfg, rdb)
	if err != nil {
		b.close()
		return backends{}, err
	}
	b.persister = persister
	if closer != nil {
		b.closers = append(b.closers, closer)
	}

	logging.Info(f.logger, "backends configured",
		slog.String(logging.FieldLookup, cfg.Lookup),
		slog.String(logging.FieldStore, cfg.Store),
	)
	return b, nil
}

func (f backendFactory) selectLookup(cfg config.Config, rdb *redis.Client) (lookups.Lookup, error) {
	switch cfg.Lookup {
	case config.LookupFixture:
		return fixture.New(), nil
	case config.LookupFile:
		return filelookup.New(cfg.LookupFile), nil
	case config.LookupRedis:
		return redislookup.New(rdb, cfg.Redis.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported lookup %q", cfg.Lookup)
	}
}

func (f backendFactory) selectPersister(ctx context.Context, cfg config.Config, rdb *redis.Client) (records.Persister, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil, nil
	case config.StoreFile:
		return store.NewFileStore(cfg.StoreFile), nil, nil
	case config.StoreRedis:
		return store.NewRedisStore(rdb, cfg.Redis.StoreKey), nil, nil
	case config.StorePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres pool: %w", err)
		}
		ps := store.NewPostgresStore(pool)
		if err := ps.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return ps, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}
