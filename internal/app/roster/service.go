package roster

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-roster-service/internal/cache"
	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
)

// Service serves the cached roster to handlers and refreshes it for the poller.
type Service struct {
	cache  *cache.RosterCache
	cfg    Config
	logger *slog.Logger
}

// NewService constructs a Service over a cache whose loader assembles cfg's roster.
func NewService(c *cache.RosterCache, cfg Config, logger *slog.Logger) *Service {
	return &Service{cache: c, cfg: cfg, logger: logger}
}

// Roster returns the current roster. It never fails: upstream errors are logged
// and yield the last cached roster, or an empty player list when there is none.
func (s *Service) Roster(ctx context.Context) domainroster.Roster {
	r, err := s.cache.Get(ctx)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "serving empty roster", "error", err)
	}
	if r.TeamID == "" {
		r.TeamID = s.cfg.TeamID
		r.TeamName = s.cfg.TeamName
		r.Season = s.cfg.Season
	}
	if r.Players == nil {
		r.Players = []domainroster.Player{}
	}
	return r
}

// Refresh forces a reload of the cached roster.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.cache.Refresh(ctx, cache.TriggerScheduled)
	return err
}

// Invalidate drops the cached roster so the next request reassembles it.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}

// Season returns the configured season label.
func (s *Service) Season() string {
	return s.cfg.Season
}
