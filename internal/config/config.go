package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Lookup          string
	LookupFile      string
	Store           string
	StoreFile       string
	Redis           RedisConfig
	DatabaseURL     string
	ShutdownTimeout time.Duration
	Metrics         MetricsConfig
}

// RedisConfig is shared by the redis lookup and the redis store.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	StoreKey  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Lookup:          strings.ToLower(envOrDefault(envLookup, defaultLookup)),
		LookupFile:      envOrDefault(envLookupFile, defaultLookupFile),
		Store:           strings.ToLower(envOrDefault(envStore, defaultStore)),
		StoreFile:       envOrDefault(envStoreFile, defaultStoreFile),
		Redis:           loadRedis(),
		DatabaseURL:     envOrDefault(envDatabaseURL, ""),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		Metrics:         loadMetrics(),
	}
}

// Validate rejects unknown backends and backends missing their connection settings.
func (c Config) Validate() error {
	switch c.Lookup {
	case LookupFixture, LookupRedis:
	case LookupFile:
		if c.LookupFile == "" {
			return fmt.Errorf("%s requires %s", envLookup, envLookupFile)
		}
	default:
		return fmt.Errorf("unknown %s %q", envLookup, c.Lookup)
	}

	switch c.Store {
	case StoreMemory, StoreRedis:
	case StoreFile:
		if c.StoreFile == "" {
			return fmt.Errorf("%s requires %s", envStore, envStoreFile)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%s=%s requires %s", envStore, StorePostgres, envDatabaseURL)
		}
	default:
		return fmt.Errorf("unknown %s %q", envStore, c.Store)
	}
	return nil
}

// UsesRedis reports whether any configured backend needs a redis client.
func (c Config) UsesRedis() bool {
	return c.Lookup == LookupRedis || c.Store == StoreRedis
}

func loadRedis() RedisConfig {
	return RedisConfig{
		Addr:      envOrDefault(envRedisAddr, defaultRedisAddr),
		Password:  envOrDefault(envRedisPassword, ""),
		DB:        nonNegativeIntEnvOrDefault(envRedisDB, 0),
		KeyPrefix: envOrDefault(envRedisPrefix, ""),
		StoreKey:  envOrDefault(envRedisStoreKey, ""),
	}
}
