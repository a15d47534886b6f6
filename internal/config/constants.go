package config

import "time"

const (
	envPort      = "PORT"
	envProvider  = "PROVIDER"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"
	envCORS      = "CORS_ALLOWED_ORIGINS"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envStatsBaseURL    = "NBA_STATS_BASE_URL"
	envHeadshotBaseURL = "NBA_HEADSHOT_BASE_URL"
	envTeamID          = "NBA_TEAM_ID"
	envTeamName        = "NBA_TEAM_NAME"
	envSeason          = "NBA_SEASON"
	envLeagueID        = "NBA_LEAGUE_ID"
	envSeasonType      = "NBA_SEASON_TYPE"
	envStatsTimeout    = "NBA_STATS_TIMEOUT"
	envStatsSource     = "STATS_SOURCE"
	envStatsFallback   = "STATS_FALLBACK"
	envRequestInterval = "REQUEST_INTERVAL"
	envBreakerFailures = "BREAKER_MAX_FAILURES"
	envBreakerCooldown = "BREAKER_COOLDOWN"

	envCacheTTL        = "ROSTER_CACHE_TTL"
	envCacheBackend    = "ROSTER_CACHE_BACKEND"
	envRedisAddr       = "REDIS_ADDR"
	envRedisPassword   = "REDIS_PASSWORD"
	envRedisDB         = "REDIS_DB"
	envCacheKey        = "ROSTER_CACHE_KEY"
	envCacheDir        = "ROSTER_CACHE_DIR"
	envSortByPoints    = "ROSTER_SORT_BY_POINTS"
	envPrefetch        = "ROSTER_PREFETCH"
	envRefreshInterval = "ROSTER_REFRESH_INTERVAL"

	defaultPort        = "4000"
	defaultProvider    = ProviderNBAStats
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-roster-service"

	defaultTeamID          = "1610612747"
	defaultTeamName        = "Los Angeles Lakers"
	defaultSeason          = "2023-24"
	defaultLeagueID        = "00"
	defaultSeasonType      = "Regular Season"
	defaultStatsTimeout    = 10 * time.Second
	defaultStatsSource     = StatsSourceGameLog
	defaultStatsFallback   = StatsSourceProfile
	defaultRequestInterval = 500 * time.Millisecond
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second

	defaultCacheTTL        = time.Hour
	defaultCacheBackend    = CacheBackendMemory
	defaultRedisAddr       = "localhost:6379"
	defaultCacheKey        = "nba-roster-service:roster"
	defaultCacheDir        = "data/cache"
	defaultSortByPoints    = true
	defaultPrefetch        = false
	defaultRefreshInterval = 30 * time.Minute

	// seasonCurrent asks for the season derived from the clock.
	seasonCurrent = "current"
)

// Provider names.
const (
	ProviderNBAStats = "nbastats"
	ProviderFixture  = "fixture"
)

// Stats sources.
const (
	StatsSourceGameLog = "gamelog"
	StatsSourceProfile = "profile"
	StatsSourceNone    = "none"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendFile   = "file"
)
