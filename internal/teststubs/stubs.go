package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

// StubRosterProvider is a test double for providers.RosterProvider.
type StubRosterProvider struct {
	Players []domainroster.Player
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchRoster returns configured players and error while tracking calls.
func (s *StubRosterProvider) FetchRoster(ctx context.Context, teamID, season string) ([]domainroster.Player, error) {
	_ = ctx
	_ = teamID
	_ = season
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]domainroster.Player, len(s.Players))
	copy(out, s.Players)
	return out, nil
}

// StubStatsProvider is a test double for providers.StatsProvider.
// Lines and Errs are keyed by player id; Err applies to every player.
type StubStatsProvider struct {
	Lines map[string]domainroster.StatLine
	Errs  map[string]error
	Err   error
	Calls atomic.Int32

	mu   sync.Mutex
	seen []string
}

// FetchPlayerStats returns the configured line or error for playerID.
func (s *StubStatsProvider) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	_ = season
	s.Calls.Add(1)
	s.mu.Lock()
	s.seen = append(s.seen, playerID)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domainroster.StatLine{}, err
	}
	if s.Err != nil {
		return domainroster.StatLine{}, s.Err
	}
	if err, ok := s.Errs[playerID]; ok {
		return domainroster.StatLine{}, err
	}
	if line, ok := s.Lines[playerID]; ok {
		return line, nil
	}
	return domainroster.DefaultStatLine(), nil
}

// Seen returns the player ids requested so far, in call order.
func (s *StubStatsProvider) Seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.seen))
	copy(out, s.seen)
	return out
}
