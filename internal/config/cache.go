package config

import (
	"strings"
	"time"
)

// CacheConfig controls the roster cache and the optional background refresher.
type CacheConfig struct {
	TTL             time.Duration
	Backend         string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	Key             string
	Dir             string
	SortByPoints    bool
	Prefetch        bool
	RefreshInterval time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		TTL:             durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		Backend:         oneOf(strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend)), defaultCacheBackend, CacheBackendMemory, CacheBackendRedis, CacheBackendFile),
		RedisAddr:       envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword:   envOrDefault(envRedisPassword, ""),
		RedisDB:         intEnvOrDefault(envRedisDB, 0),
		Key:             envOrDefault(envCacheKey, defaultCacheKey),
		Dir:             envOrDefault(envCacheDir, defaultCacheDir),
		SortByPoints:    boolEnvOrDefault(envSortByPoints, defaultSortByPoints),
		Prefetch:        boolEnvOrDefault(envPrefetch, defaultPrefetch),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
	}
}
