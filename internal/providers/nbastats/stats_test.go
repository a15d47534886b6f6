package nbastats

import (
	"context"
	"errors"
	"testing"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

func TestGameLogStatsAveragesAllGames(t *testing.T) {
	client, seen := newTestClient(t, map[string]string{endpointGameLog: gameLogWithHeaders})

	line, err := client.GameLogStats().FetchPlayerStats(context.Background(), "2544", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	q := (*seen)[0].URL.Query()
	if q.Get("PlayerID") != "2544" || q.Get("Season") != "2023-24" || q.Get("SeasonType") != "Regular Season" {
		t.Fatalf("unexpected query %s", (*seen)[0].URL.RawQuery)
	}

	want := domainroster.StatLine{
		PointsPerGame:   25.5,
		ReboundsPerGame: 8.5,
		AssistsPerGame:  6.5,
		StealsPerGame:   1.5,
		BlocksPerGame:   1.0,
		FieldGoalPct:    "50.0%",
		GamesPlayed:     2,
	}
	if line != want {
		t.Fatalf("expected %+v, got %+v", want, line)
	}
}

func TestGameLogStatsPositionalFallbackMatchesHeaders(t *testing.T) {
	positional := `{"resultSets":[{"rowSet":[
		["22023",2544,"0022300001","APR 14, 2024","LAL @ NOP","W",38,12,20,0.6,2,5,0.4,4,6,0.667,1,9,10,5,1,2,3,1,30,12,1],
		["22023",2544,"0022300002","APR 12, 2024","LAL vs. MEM","W",35,8,20,0.4,1,4,0.25,4,4,1.0,0,7,7,8,2,0,4,2,21,5,1]
	]}]}`
	named, _ := newTestClient(t, map[string]string{endpointGameLog: gameLogWithHeaders})
	unnamed, _ := newTestClient(t, map[string]string{endpointGameLog: positional})

	a, errA := named.GameLogStats().FetchPlayerStats(context.Background(), "2544", "2023-24")
	b, errB := unnamed.GameLogStats().FetchPlayerStats(context.Background(), "2544", "2023-24")
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors %v %v", errA, errB)
	}
	if a != b {
		t.Fatalf("expected header and positional decoding to agree: %+v vs %+v", a, b)
	}
}

func TestGameLogStatsWithNoGamesIsDefault(t *testing.T) {
	body := `{"resultSets":[{"name":"PlayerGameLog","headers":["FGM","FGA","REB","AST","STL","BLK","PTS"],"rowSet":[]}]}`
	client, _ := newTestClient(t, map[string]string{endpointGameLog: body})

	line, err := client.GameLogStats().FetchPlayerStats(context.Background(), "1", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if line != domainroster.DefaultStatLine() {
		t.Fatalf("expected default line, got %+v", line)
	}
}

func TestGameLogStatsZeroAttempts(t *testing.T) {
	body := `{"resultSets":[{"name":"PlayerGameLog","headers":["FGM","FGA","REB","AST","STL","BLK","PTS"],"rowSet":[[0,0,3,1,0,0,2]]}]}`
	client, _ := newTestClient(t, map[string]string{endpointGameLog: body})

	line, err := client.GameLogStats().FetchPlayerStats(context.Background(), "1", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if line.FieldGoalPct != "0.0%" || line.GamesPlayed != 1 || line.PointsPerGame != 2 {
		t.Fatalf("unexpected line %+v", line)
	}
}

func TestGameLogStatsBadFieldFailsPlayer(t *testing.T) {
	body := `{"resultSets":[{"name":"PlayerGameLog","headers":["FGM","FGA","REB","AST","STL","BLK","PTS"],"rowSet":[[1,2,3,1,0,0,"DNP"]]}]}`
	client, _ := newTestClient(t, map[string]string{endpointGameLog: body})

	_, err := client.GameLogStats().FetchPlayerStats(context.Background(), "1", "2023-24")
	var fieldErr *providers.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "PTS" {
		t.Fatalf("expected PTS field error, got %v", err)
	}
}

func TestProfileStatsReadsLastSeason(t *testing.T) {
	client, seen := newTestClient(t, map[string]string{endpointProfile: profileWithHeaders})

	line, err := client.ProfileStats().FetchPlayerStats(context.Background(), "2544", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	q := (*seen)[0].URL.Query()
	if q.Get("PlayerID") != "2544" || q.Get("PerMode") != "PerGame" || q.Get("LeagueID") != "00" {
		t.Fatalf("unexpected query %s", (*seen)[0].URL.RawQuery)
	}
	if q.Has("Season") {
		t.Fatalf("expected profile request not to be season-scoped, got %s", (*seen)[0].URL.RawQuery)
	}

	want := domainroster.StatLine{
		PointsPerGame:   25.7,
		ReboundsPerGame: 7.3,
		AssistsPerGame:  8.3,
		StealsPerGame:   1.3,
		BlocksPerGame:   0.5,
		FieldGoalPct:    "54.0%",
		GamesPlayed:     71,
	}
	if line != want {
		t.Fatalf("expected %+v, got %+v", want, line)
	}
}

func TestProfileStatsPositionalFallback(t *testing.T) {
	// Unnamed sets: index 1 is the season totals; offsets 3..7 and 11.
	body := `{"resultSets":[
		{"rowSet":[]},
		{"rowSet":[
			["id","2022-23","00",20.04,5.0,6.0,1.0,0.5,0,0,0,0.45],
			["id","2023-24","00",18.25,4.44,9.96,0.75,0.3,0,0,0,0.5123]
		]}
	]}`
	client, _ := newTestClient(t, map[string]string{endpointProfile: body})

	line, err := client.ProfileStats().FetchPlayerStats(context.Background(), "1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if line.PointsPerGame != 18.3 || line.AssistsPerGame != 4.4 || line.ReboundsPerGame != 10.0 {
		t.Fatalf("unexpected averages %+v", line)
	}
	if line.StealsPerGame != 0.8 || line.BlocksPerGame != 0.3 {
		t.Fatalf("unexpected defensive averages %+v", line)
	}
	if line.FieldGoalPct != "51.2%" || line.GamesPlayed != 0 {
		t.Fatalf("unexpected percentage/games %+v", line)
	}
}

func TestProfileStatsNoRowsIsNoStats(t *testing.T) {
	body := `{"resultSets":[{"name":"SeasonTotalsRegularSeason","headers":["PTS"],"rowSet":[]}]}`
	client, _ := newTestClient(t, map[string]string{endpointProfile: body})

	_, err := client.ProfileStats().FetchPlayerStats(context.Background(), "1", "")
	if !errors.Is(err, providers.ErrNoStats) {
		t.Fatalf("expected ErrNoStats, got %v", err)
	}
}

func TestProfileStatsMissingSeasonTotals(t *testing.T) {
	body := `{"resultSets":[{"name":"CareerTotalsRegularSeason","headers":["PTS"],"rowSet":[[1]]}]}`
	client, _ := newTestClient(t, map[string]string{endpointProfile: body})

	_, err := client.ProfileStats().FetchPlayerStats(context.Background(), "1", "")
	if providers.ErrorKind(err) != providers.KindSchema {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestProfileStatsNullFieldGoalPct(t *testing.T) {
	body := `{"resultSets":[{"name":"SeasonTotalsRegularSeason","headers":["GP","PTS","AST","REB","STL","BLK","FG_PCT"],"rowSet":[[3,1.0,0.3,1.7,0,0,null]]}]}`
	client, _ := newTestClient(t, map[string]string{endpointProfile: body})

	line, err := client.ProfileStats().FetchPlayerStats(context.Background(), "1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if line.FieldGoalPct != "0.0%" || line.GamesPlayed != 3 {
		t.Fatalf("unexpected line %+v", line)
	}
}
