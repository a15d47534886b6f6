package nbastats

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

// FetchRoster returns one player stub per roster row for the team and season.
// Stubs carry a default StatLine. Rows with unreadable fields are skipped and logged;
// a payload without the expected columns fails as a whole.
func (c *Client) FetchRoster(ctx context.Context, teamID, season string) ([]domainroster.Player, error) {
	params := url.Values{}
	params.Set("LeagueID", c.leagueID)
	params.Set("Season", season)
	params.Set("TeamID", teamID)

	payload, err := c.get(ctx, endpointRoster, params)
	if err != nil {
		return nil, err
	}

	set, ok := payload.resultSetByName(resultSetRoster, 0)
	if !ok {
		return nil, &providers.SchemaError{Endpoint: endpointRoster, Reason: "missing " + resultSetRoster}
	}
	cols := newColumns(endpointRoster, set)
	if err := cols.require(rosterColumns...); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx, c.logger)
	players := make([]domainroster.Player, 0, len(set.RowSet))
	for i, row := range set.RowSet {
		player, err := c.mapPlayer(cols, row, i)
		if err != nil {
			var fieldErr *providers.FieldError
			if errors.As(err, &fieldErr) {
				logging.Warn(logger, "skipping unreadable roster row",
					slog.Int("row", i),
					slog.String(logging.FieldTeamID, teamID),
					slog.String(logging.FieldErrorKind, providers.KindField),
					"error", err,
				)
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (c *Client) mapPlayer(cols columns, row []any, rowNum int) (domainroster.Player, error) {
	name, err := cols.str(row, rowNum, colPlayerName)
	if err != nil {
		return domainroster.Player{}, err
	}
	id, err := cols.str(row, rowNum, colPlayerID)
	if err != nil {
		return domainroster.Player{}, err
	}
	jersey, err := cols.optionalStr(row, rowNum, colJersey)
	if err != nil {
		return domainroster.Player{}, err
	}
	position, err := cols.optionalStr(row, rowNum, colPosition)
	if err != nil {
		return domainroster.Player{}, err
	}
	height, err := cols.optionalStr(row, rowNum, colHeight)
	if err != nil {
		return domainroster.Player{}, err
	}
	weight, err := cols.optionalStr(row, rowNum, colWeight)
	if err != nil {
		return domainroster.Player{}, err
	}

	return domainroster.Player{
		ID:           id,
		Name:         name,
		JerseyNumber: jersey,
		Position:     position,
		Height:       height,
		Weight:       formatWeight(weight),
		ImageURL:     c.headshotURL(id),
		Stats:        domainroster.DefaultStatLine(),
	}, nil
}

func (c *Client) headshotURL(playerID string) string {
	return c.headshotBase + "/" + url.PathEscape(playerID) + ".png"
}

func formatWeight(raw string) string {
	if raw == "" {
		return ""
	}
	return raw + " lbs"
}
