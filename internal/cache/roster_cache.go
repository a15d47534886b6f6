package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
	"github.com/preston-bernstein/nba-roster-service/internal/metrics"
)

const (
	flightKey = "roster"

	// DefaultLoadTimeout bounds a shared load once it no longer follows any caller.
	DefaultLoadTimeout = 3 * time.Minute

	// Refresh triggers recorded on metrics.
	TriggerRequest   = "request"
	TriggerScheduled = "scheduled"
)

// Loader assembles a fresh roster. A non-nil error means the result must not
// be cached; the returned roster is still served.
type Loader func(ctx context.Context) (domainroster.Roster, error)

// Options configures a RosterCache.
type Options struct {
	TTL         time.Duration
	LoadTimeout time.Duration
	Store       Store
	Loader      Loader
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Now         func() time.Time
}

// RosterCache serves the assembled roster from a Store until its TTL lapses.
// Concurrent misses share a single loader call, which outlives a caller that
// gives up waiting. A failed reload keeps serving the expired entry.
type RosterCache struct {
	ttl         time.Duration
	loadTimeout time.Duration
	store       Store
	load        Loader
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time
	group       singleflight.Group
}

func New(opts Options) *RosterCache {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loadTimeout := opts.LoadTimeout
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &RosterCache{
		ttl:         opts.TTL,
		loadTimeout: loadTimeout,
		store:       opts.Store,
		load:        opts.Loader,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		now:         now,
	}
}

// TTL returns the lifetime applied to new entries.
func (c *RosterCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached roster while it is fresh and otherwise repopulates it.
func (c *RosterCache) Get(ctx context.Context) (domainroster.Roster, error) {
	logger := logging.FromContext(ctx, c.logger)

	entry, ok, err := c.lookup(ctx)
	switch {
	case err != nil:
		c.metrics.RecordCacheLookup(metrics.CacheError)
		logging.Warn(logger, "roster cache read failed, treating as miss", "error", err)
	case ok && entry.Fresh(c.now()):
		c.metrics.RecordCacheLookup(metrics.CacheHit)
		return entry.Roster.Clone(), nil
	case ok:
		c.metrics.RecordCacheLookup(metrics.CacheStale)
	default:
		c.metrics.RecordCacheLookup(metrics.CacheMiss)
	}

	r, loadErr := c.populate(ctx, TriggerRequest)
	if loadErr != nil && ok && len(entry.Roster.Players) > 0 {
		logging.Warn(logger, "roster reload failed, serving expired entry",
			slog.Time("fetched_at", entry.FetchedAt),
			"error", loadErr,
		)
		return entry.Roster.Clone(), nil
	}
	return r, loadErr
}

// Refresh reloads the roster regardless of freshness.
func (c *RosterCache) Refresh(ctx context.Context, trigger string) (domainroster.Roster, error) {
	return c.populate(ctx, trigger)
}

// Invalidate drops the cached entry.
func (c *RosterCache) Invalidate(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Clear(ctx)
}

func (c *RosterCache) lookup(ctx context.Context) (Entry, bool, error) {
	if c.store == nil {
		return Entry{}, false, nil
	}
	return c.store.Load(ctx)
}

type flightResult struct {
	roster domainroster.Roster
	err    error
}

// populate joins or starts the shared load. The load keeps the caller's values
// but not its cancellation, so one caller leaving does not fail the others.
func (c *RosterCache) populate(ctx context.Context, trigger string) (domainroster.Roster, error) {
	ch := c.group.DoChan(flightKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		start := c.now()
		r, err := c.load(loadCtx)
		c.metrics.RecordRefresh(trigger, c.now().Sub(start), err)
		if err != nil {
			return flightResult{roster: r, err: err}, nil
		}
		c.save(loadCtx, r)
		return flightResult{roster: r}, nil
	})

	select {
	case <-ctx.Done():
		return domainroster.Roster{Players: []domainroster.Player{}}, ctx.Err()
	case res := <-ch:
		fr := res.Val.(flightResult)
		return fr.roster.Clone(), fr.err
	}
}

func (c *RosterCache) save(ctx context.Context, r domainroster.Roster) {
	if c.store == nil {
		return
	}
	entry := Entry{Roster: r, FetchedAt: c.now(), TTL: c.ttl}
	if err := c.store.Save(ctx, entry); err != nil {
		logging.Warn(logging.FromContext(ctx, c.logger), "roster cache write failed", "error", err)
	}
}
