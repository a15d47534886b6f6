package roster

import "time"

// StatLine holds a player's per-game averages for the current season.
type StatLine struct {
	PointsPerGame   float64 `json:"pointsPerGame"`
	ReboundsPerGame float64 `json:"reboundsPerGame"`
	AssistsPerGame  float64 `json:"assistsPerGame"`
	StealsPerGame   float64 `json:"stealsPerGame"`
	BlocksPerGame   float64 `json:"blocksPerGame"`
	FieldGoalPct    string  `json:"fieldGoalPct"`
	GamesPlayed     int     `json:"gamesPlayed"`
}

// DefaultStatLine is used whenever stats for a player are unavailable.
func DefaultStatLine() StatLine {
	return StatLine{FieldGoalPct: zeroPercentage}
}

// Player is one assembled roster entry.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	JerseyNumber string   `json:"jerseyNumber"`
	Position     string   `json:"position"`
	Height       string   `json:"height"`
	Weight       string   `json:"weight,omitempty"`
	ImageURL     string   `json:"imageUrl"`
	Stats        StatLine `json:"stats"`
}

// Roster is the full assembled list for a team and season.
type Roster struct {
	TeamID    string    `json:"teamId"`
	TeamName  string    `json:"teamName"`
	Season    string    `json:"season"`
	Players   []Player  `json:"players"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Clone returns a deep copy so cached rosters are never mutated by callers.
func (r Roster) Clone() Roster {
	out := r
	if r.Players != nil {
		out.Players = make([]Player, len(r.Players))
		copy(out.Players, r.Players)
	}
	return out
}
