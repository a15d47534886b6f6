package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-roster-service/internal/cache"
	"github.com/preston-bernstein/nba-roster-service/internal/config"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
	"github.com/preston-bernstein/nba-roster-service/internal/store"
)

var dialRedis = store.DialRedis

// buildStore picks the cache backend and returns a close func when the backend holds a connection.
func buildStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (cache.Store, func() error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		return buildRedisStore(ctx, cfg, logger)
	case config.CacheBackendFile:
		fs := store.NewFileStore(cfg.Dir)
		logging.Info(logger, "roster cache backed by file", slog.String("path", fs.Path()))
		return fs, nil
	default:
		return store.NewMemoryStore(), nil
	}
}

// An unreachable Redis degrades to memory so the page keeps rendering.
func buildRedisStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (cache.Store, func() error) {
	rs, err := dialRedis(ctx, store.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Key:      cfg.Key,
	})
	if err != nil {
		logging.Warn(logger, "redis unavailable, using in-memory roster cache",
			slog.String("addr", cfg.RedisAddr),
			"error", err,
		)
		return store.NewMemoryStore(), nil
	}
	logging.Info(logger, "roster cache backed by redis", slog.String("addr", cfg.RedisAddr))
	return rs, rs.Close
}
