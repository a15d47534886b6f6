package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-roster-service/internal/config"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
	"github.com/preston-bernstein/nba-roster-service/internal/metrics"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
	"github.com/preston-bernstein/nba-roster-service/internal/providers/fixture"
)

// providerFactory assembles the upstreams with shared wrappers (throttle, fallback, breaker).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providerSet {
	if cfg.Provider == config.ProviderFixture {
		fx := fixture.New()
		logging.Info(f.logger, "using fixture provider", slog.String(logging.FieldProvider, config.ProviderFixture))
		return providerSet{name: config.ProviderFixture, roster: fx, stats: fx}
	}

	nba := cfg.NBAStats
	client := newNBAStatsClient(nba, f.metrics, f.logger)
	// One throttle for every upstream call so roster, primary and fallback share the budget.
	throttle := providers.NewThrottle(nba.RequestInterval, f.logger)

	source := nba.StatsSource
	if source == "" {
		source = config.StatsSourceGameLog
	}
	stats := throttle.Stats(statsSource(client, source))
	if fb := nba.StatsFallback; fb != "" && fb != config.StatsSourceNone && fb != source {
		stats = providers.NewFallbackStatsProvider(stats, throttle.Stats(statsSource(client, fb)), source, fb, f.logger)
	}
	stats = providers.NewBreakerStatsProvider(stats, providers.BreakerConfig{
		Name:        config.ProviderNBAStats,
		MaxFailures: nba.BreakerFailures,
		Cooldown:    nba.BreakerCooldown,
	}, f.logger)

	return providerSet{
		name:   config.ProviderNBAStats,
		roster: throttle.Roster(client),
		stats:  stats,
	}
}
