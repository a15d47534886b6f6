package providers

import (
	"context"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

// RosterProvider fetches the identity fields of every player on a team for a season.
// Returned players carry a default StatLine; stats are attached later.
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID, season string) ([]domainroster.Player, error)
}

// StatsProvider fetches the current-season per-game line for one player.
type StatsProvider interface {
	FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error)
}
