package config

import (
	"strings"
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
	NBAStats    NBAStatsConfig
	Cache       CacheConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return load(time.Now)
}

func load(now func() time.Time) Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    oneOf(strings.ToLower(envOrDefault(envProvider, defaultProvider)), defaultProvider, ProviderNBAStats, ProviderFixture),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		CORSOrigins: listEnv(envCORS),
		NBAStats:    loadNBAStats(now),
		Cache:       loadCache(),
		Metrics:     loadMetrics(),
	}
}

func oneOf(val, fallback string, allowed ...string) string {
	for _, a := range allowed {
		if val == a {
			return val
		}
	}
	return fallback
}
