package nbastats

import (
	"context"
	"fmt"
	"net/url"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

// ProfileStats reads the current-season line from the player's profile,
// taking the last SeasonTotalsRegularSeason row as the current season.
type ProfileStats struct {
	client *Client
}

// FetchPlayerStats implements providers.StatsProvider. The profile endpoint is
// not season-scoped, so the season argument is ignored.
func (p *ProfileStats) FetchPlayerStats(ctx context.Context, playerID, _ string) (domainroster.StatLine, error) {
	params := url.Values{}
	params.Set("PlayerID", playerID)
	params.Set("PerMode", "PerGame")
	params.Set("LeagueID", p.client.leagueID)

	payload, err := p.client.get(ctx, endpointProfile, params)
	if err != nil {
		return domainroster.StatLine{}, err
	}

	set, ok := payload.resultSetByName(resultSetSeasonTotals, 1)
	if !ok {
		return domainroster.StatLine{}, &providers.SchemaError{Endpoint: endpointProfile, Reason: "missing " + resultSetSeasonTotals}
	}
	if len(set.RowSet) == 0 {
		return domainroster.StatLine{}, fmt.Errorf("player %s: %w", playerID, providers.ErrNoStats)
	}

	cols := newColumns(endpointProfile, set)
	if err := cols.require(profileColumns...); err != nil {
		return domainroster.StatLine{}, err
	}
	rowNum := len(set.RowSet) - 1
	return profileLine(cols, set.RowSet[rowNum], rowNum)
}

func profileLine(cols columns, row []any, rowNum int) (domainroster.StatLine, error) {
	var values [5]float64
	for i, col := range []column{colProfilePoints, colProfileRebounds, colProfileAssists, colProfileSteals, colProfileBlocks} {
		v, err := cols.float(row, rowNum, col)
		if err != nil {
			return domainroster.StatLine{}, err
		}
		values[i] = v
	}
	fgPct, err := cols.optionalFloat(row, rowNum, colProfileFGPct)
	if err != nil {
		return domainroster.StatLine{}, err
	}

	line := domainroster.StatLine{
		PointsPerGame:   domainroster.RoundOne(values[0]),
		ReboundsPerGame: domainroster.RoundOne(values[1]),
		AssistsPerGame:  domainroster.RoundOne(values[2]),
		StealsPerGame:   domainroster.RoundOne(values[3]),
		BlocksPerGame:   domainroster.RoundOne(values[4]),
		FieldGoalPct:    domainroster.PercentageFromFraction(fgPct),
	}
	if cols.has(colProfileGames) {
		games, err := cols.optionalFloat(row, rowNum, colProfileGames)
		if err != nil {
			return domainroster.StatLine{}, err
		}
		line.GamesPlayed = int(games)
	}
	return line, nil
}
