package fixture

import (
	"context"
	"fmt"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

const headshotBase = "https://cdn.nba.com/headshots/nba/latest/1040x760/"

// Provider serves a static roster and stat lines for local development and tests.
// It satisfies both providers.RosterProvider and providers.StatsProvider.
type Provider struct {
	players []domainroster.Player
	lines   map[string]domainroster.StatLine
}

// New returns a fixture provider seeded with a small Lakers roster.
func New() *Provider {
	players := []domainroster.Player{
		player("2544", "LeBron James", "23", "F", "6-9", "250"),
		player("203076", "Anthony Davis", "3", "F-C", "6-10", "253"),
		player("1629029", "Austin Reaves", "15", "G", "6-5", "197"),
		player("1630559", "Max Christie", "10", "G", "6-5", "190"),
		player("1641720", "Jalen Hood-Schifino", "0", "G", "6-5", ""),
	}
	lines := map[string]domainroster.StatLine{
		"2544":    {PointsPerGame: 25.7, ReboundsPerGame: 7.3, AssistsPerGame: 8.3, StealsPerGame: 1.3, BlocksPerGame: 0.5, FieldGoalPct: "54.0%", GamesPlayed: 71},
		"203076":  {PointsPerGame: 24.7, ReboundsPerGame: 12.6, AssistsPerGame: 3.5, StealsPerGame: 1.2, BlocksPerGame: 2.3, FieldGoalPct: "55.6%", GamesPlayed: 76},
		"1629029": {PointsPerGame: 15.9, ReboundsPerGame: 4.3, AssistsPerGame: 5.5, StealsPerGame: 0.8, BlocksPerGame: 0.3, FieldGoalPct: "48.6%", GamesPlayed: 82},
		"1630559": {PointsPerGame: 2.9, ReboundsPerGame: 1.8, AssistsPerGame: 0.8, StealsPerGame: 0.3, BlocksPerGame: 0.2, FieldGoalPct: "44.0%", GamesPlayed: 67},
	}
	return &Provider{players: players, lines: lines}
}

// FetchRoster returns a copy of the fixture roster with default stat lines.
func (p *Provider) FetchRoster(ctx context.Context, teamID, season string) ([]domainroster.Player, error) {
	_ = teamID
	_ = season
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domainroster.Player, len(p.players))
	copy(out, p.players)
	return out, nil
}

// FetchPlayerStats returns the fixture line for playerID. Players without a
// line report providers.ErrNoStats, matching an empty upstream response.
func (p *Provider) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	_ = season
	if err := ctx.Err(); err != nil {
		return domainroster.StatLine{}, err
	}
	line, ok := p.lines[playerID]
	if !ok {
		return domainroster.StatLine{}, fmt.Errorf("player %s: %w", playerID, providers.ErrNoStats)
	}
	return line, nil
}

func player(id, name, jersey, position, height, weight string) domainroster.Player {
	if weight != "" {
		weight += " lbs"
	}
	return domainroster.Player{
		ID:           id,
		Name:         name,
		JerseyNumber: jersey,
		Position:     position,
		Height:       height,
		Weight:       weight,
		ImageURL:     headshotBase + id + ".png",
		Stats:        domainroster.DefaultStatLine(),
	}
}
