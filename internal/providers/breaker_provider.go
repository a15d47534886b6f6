package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * time.Second
)

// BreakerConfig controls when the stats circuit opens.
type BreakerConfig struct {
	Name        string
	MaxFailures int
	Cooldown    time.Duration
}

type breakerStats struct {
	next    StatsProvider
	breaker *gobreaker.CircuitBreaker
	name    string
	logger  *slog.Logger
}

// NewBreakerStatsProvider opens a circuit after MaxFailures consecutive stats failures.
// While open, calls fail immediately with ErrProviderUnavailable.
func NewBreakerStatsProvider(next StatsProvider, cfg BreakerConfig, logger *slog.Logger) StatsProvider {
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = defaultBreakerFailures
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultBreakerCooldown
	}
	if cfg.Name == "" {
		cfg.Name = "stats"
	}
	maxFailures := uint32(cfg.MaxFailures)

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A player with no rows is a valid answer, not an upstream fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoStats) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state changed",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			}
		},
	}

	return &breakerStats{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
		logger:  logger,
	}
}

func (p *breakerStats) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	if p.next == nil {
		return domainroster.StatLine{}, ErrProviderUnavailable
	}
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.FetchPlayerStats(ctx, playerID, season)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "stats call short-circuited", "player_id", playerID)
		return domainroster.StatLine{}, errors.Join(ErrProviderUnavailable, err)
	}
	if err != nil {
		return domainroster.StatLine{}, err
	}
	line, _ := result.(domainroster.StatLine)
	return line, nil
}

// State exposes the breaker state (primarily for tests and readiness).
func (p *breakerStats) State() gobreaker.State {
	return p.breaker.State()
}
