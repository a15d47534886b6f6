package testutil

import (
	"time"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

// SamplePlayer returns a player stub with a default stat line.
func SamplePlayer(id, name string) domainroster.Player {
	return domainroster.Player{
		ID:           id,
		Name:         name,
		JerseyNumber: "0",
		Position:     "G",
		Height:       "6-4",
		Weight:       "200 lbs",
		ImageURL:     "https://cdn.nba.com/headshots/nba/latest/1040x760/" + id + ".png",
		Stats:        domainroster.DefaultStatLine(),
	}
}

// SampleLine returns a stat line with the given scoring average.
func SampleLine(ppg float64) domainroster.StatLine {
	return domainroster.StatLine{
		PointsPerGame:   ppg,
		ReboundsPerGame: 5.0,
		AssistsPerGame:  4.0,
		StealsPerGame:   1.0,
		BlocksPerGame:   0.5,
		FieldGoalPct:    "48.2%",
		GamesPlayed:     60,
	}
}

// SampleRoster returns a Lakers roster with the given players.
func SampleRoster(players ...domainroster.Player) domainroster.Roster {
	if players == nil {
		players = []domainroster.Player{}
	}
	return domainroster.Roster{
		TeamID:    "1610612747",
		TeamName:  "Los Angeles Lakers",
		Season:    "2023-24",
		Players:   players,
		FetchedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
