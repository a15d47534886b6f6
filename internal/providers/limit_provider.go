package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

const (
	defaultThrottleInterval = 500 * time.Millisecond
	throttleName            = "throttle"
)

// Throttle pauses for a fixed interval after every upstream call before the
// next one may start. One Throttle is shared by every provider it wraps so
// roster and stats calls draw from the same budget, and calls through it run
// one at a time.
type Throttle struct {
	slot     chan struct{}
	limiter  *rate.Limiter
	interval time.Duration
	logger   *slog.Logger
}

// NewThrottle returns a Throttle pausing interval after each call (500ms when interval <= 0).
func NewThrottle(interval time.Duration, logger *slog.Logger) *Throttle {
	if interval <= 0 {
		interval = defaultThrottleInterval
	}
	return &Throttle{
		slot:     make(chan struct{}, 1),
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
		logger:   logger,
	}
}

// Interval reports the pause applied after each call.
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Wait blocks until no call is in progress and the pause after the previous
// one has elapsed, or ctx is done. A nil error must be paired with Done.
func (t *Throttle) Wait(ctx context.Context) error {
	select {
	case t.slot <- struct{}{}:
	case <-ctx.Done():
		return t.canceled(ctx, ctx.Err())
	}
	// The limiter is only touched while the slot is held.
	if err := t.limiter.Wait(ctx); err != nil {
		<-t.slot
		return t.canceled(ctx, err)
	}
	return nil
}

// Done marks the end of a call. The next call waits a full interval from now.
func (t *Throttle) Done() {
	t.limiter = pausedLimiter(t.interval, time.Now())
	<-t.slot
}

func (t *Throttle) canceled(ctx context.Context, err error) error {
	logWithProvider(ctx, t.logger, slog.LevelWarn, throttleName, "throttled call canceled", "error", err)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// pausedLimiter returns a limiter whose only token becomes available one
// interval after at.
func pausedLimiter(interval time.Duration, at time.Time) *rate.Limiter {
	l := rate.NewLimiter(rate.Every(interval), 1)
	l.AllowN(at, 1)
	return l
}

// Roster wraps a RosterProvider so each fetch waits out the shared pause.
func (t *Throttle) Roster(next RosterProvider) RosterProvider {
	return &throttledRoster{throttle: t, next: next}
}

// Stats wraps a StatsProvider so each fetch waits out the shared pause.
func (t *Throttle) Stats(next StatsProvider) StatsProvider {
	return &throttledStats{throttle: t, next: next}
}

type throttledRoster struct {
	throttle *Throttle
	next     RosterProvider
}

func (p *throttledRoster) FetchRoster(ctx context.Context, teamID, season string) ([]domainroster.Player, error) {
	if p.next == nil {
		logWithProvider(ctx, p.throttle.logger, slog.LevelWarn, throttleName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	if err := p.throttle.Wait(ctx); err != nil {
		return nil, err
	}
	defer p.throttle.Done()
	return p.next.FetchRoster(ctx, teamID, season)
}

type throttledStats struct {
	throttle *Throttle
	next     StatsProvider
}

func (p *throttledStats) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	if p.next == nil {
		logWithProvider(ctx, p.throttle.logger, slog.LevelWarn, throttleName, "provider unavailable")
		return domainroster.StatLine{}, ErrProviderUnavailable
	}
	if err := p.throttle.Wait(ctx); err != nil {
		return domainroster.StatLine{}, err
	}
	defer p.throttle.Done()
	return p.next.FetchPlayerStats(ctx, playerID, season)
}
