package roster

import (
	"fmt"
	"math"
	"sort"
)

const zeroPercentage = "0.0%"

// RoundOne rounds v to one decimal place.
func RoundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

// FieldGoalPercentage formats made/attempted as a one-decimal percentage.
// Zero attempts yield "0.0%".
func FieldGoalPercentage(made, attempted float64) string {
	if attempted <= 0 {
		return zeroPercentage
	}
	return formatPercentage(made / attempted * 100)
}

// PercentageFromFraction formats a 0..1 fraction (e.g. 0.512) as "51.2%".
func PercentageFromFraction(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return zeroPercentage
	}
	return formatPercentage(fraction * 100)
}

func formatPercentage(pct float64) string {
	return fmt.Sprintf("%.1f%%", RoundOne(pct))
}

// Totals accumulates counting stats across games.
type Totals struct {
	Games          int
	Points         float64
	Rebounds       float64
	Assists        float64
	Steals         float64
	Blocks         float64
	FieldGoalsMade float64
	FieldGoalsAtt  float64
}

// Add folds one game's line into the totals.
func (t *Totals) Add(game Totals) {
	t.Games++
	t.Points += game.Points
	t.Rebounds += game.Rebounds
	t.Assists += game.Assists
	t.Steals += game.Steals
	t.Blocks += game.Blocks
	t.FieldGoalsMade += game.FieldGoalsMade
	t.FieldGoalsAtt += game.FieldGoalsAtt
}

// PerGame converts totals into a StatLine of one-decimal averages.
func (t Totals) PerGame() StatLine {
	if t.Games <= 0 {
		return DefaultStatLine()
	}
	games := float64(t.Games)
	return StatLine{
		PointsPerGame:   RoundOne(t.Points / games),
		ReboundsPerGame: RoundOne(t.Rebounds / games),
		AssistsPerGame:  RoundOne(t.Assists / games),
		StealsPerGame:   RoundOne(t.Steals / games),
		BlocksPerGame:   RoundOne(t.Blocks / games),
		FieldGoalPct:    FieldGoalPercentage(t.FieldGoalsMade, t.FieldGoalsAtt),
		GamesPlayed:     t.Games,
	}
}

// SortByPointsPerGame orders players by scoring average, highest first.
// Ties keep their roster order.
func SortByPointsPerGame(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Stats.PointsPerGame > players[j].Stats.PointsPerGame
	})
}
