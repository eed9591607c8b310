package config

import "time"

const (
	envPort            = "PORT"
	envLookup          = "LOOKUP"
	envLookupFile      = "LOOKUP_FILE"
	envStore           = "STORE"
	envStoreFile       = "STORE_FILE"
	envRedisAddr       = "REDIS_ADDR"
	envRedisPassword   = "REDIS_PASSWORD"
	envRedisDB         = "REDIS_DB"
	envRedisPrefix     = "REDIS_LOOKUP_PREFIX"
	envRedisStoreKey   = "REDIS_STORE_KEY"
	envDatabaseURL     = "DATABASE_URL"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultLookup          = LookupFixture
	defaultStore           = StoreMemory
	defaultLookupFile      = "data/lookup.json"
	defaultStoreFile       = "data/saved.json"
	defaultRedisAddr       = "localhost:6379"
	defaultShutdownTimeout = 10 * time.Second
	defaultMetricsPort     = "9090"
	defaultServiceName     = "record-filter-service"
)

// Lookup backends.
const (
	LookupFixture = "fixture"
	LookupFile    = "file"
	LookupRedis   = "redis"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)
