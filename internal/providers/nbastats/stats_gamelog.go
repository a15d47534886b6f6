package nbastats

import (
	"context"
	"net/url"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

// GameLogStats aggregates every regular-season game in the player's log into
// per-game averages.
type GameLogStats struct {
	client *Client
}

// FetchPlayerStats implements providers.StatsProvider. A player with no games
// gets the default line and no error.
func (g *GameLogStats) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	params := url.Values{}
	params.Set("PlayerID", playerID)
	params.Set("Season", season)
	params.Set("SeasonType", g.client.seasonType)

	payload, err := g.client.get(ctx, endpointGameLog, params)
	if err != nil {
		return domainroster.StatLine{}, err
	}

	set, ok := payload.resultSetByName(resultSetPlayerGameLog, 0)
	if !ok {
		return domainroster.StatLine{}, &providers.SchemaError{Endpoint: endpointGameLog, Reason: "missing " + resultSetPlayerGameLog}
	}
	cols := newColumns(endpointGameLog, set)
	if err := cols.require(gameLogColumns...); err != nil {
		return domainroster.StatLine{}, err
	}

	var totals domainroster.Totals
	for i, row := range set.RowSet {
		game, err := gameTotals(cols, row, i)
		if err != nil {
			return domainroster.StatLine{}, err
		}
		totals.Add(game)
	}
	return totals.PerGame(), nil
}

func gameTotals(cols columns, row []any, rowNum int) (domainroster.Totals, error) {
	var game domainroster.Totals
	targets := []struct {
		col column
		dst *float64
	}{
		{colLogPoints, &game.Points},
		{colLogRebounds, &game.Rebounds},
		{colLogAssists, &game.Assists},
		{colLogSteals, &game.Steals},
		{colLogBlocks, &game.Blocks},
		{colLogFGM, &game.FieldGoalsMade},
		{colLogFGA, &game.FieldGoalsAtt},
	}
	for _, target := range targets {
		v, err := cols.float(row, rowNum, target.col)
		if err != nil {
			return domainroster.Totals{}, err
		}
		*target.dst = v
	}
	return game, nil
}
