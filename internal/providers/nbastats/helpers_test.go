package nbastats

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// newTestClient routes every request for the given endpoint path to body.
func newTestClient(t *testing.T, bodies map[string]string) (*Client, *[]*http.Request) {
	t.Helper()
	var seen []*http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		seen = append(seen, req)
		endpoint := strings.TrimPrefix(req.URL.Path, "/stats/")
		body, ok := bodies[endpoint]
		if !ok {
			t.Fatalf("unexpected request to %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, body), nil
	})
	client := NewClient(Config{
		BaseURL:    "http://stats.example.com/stats/",
		HTTPClient: &http.Client{Transport: rt},
	})
	return client, &seen
}

const rosterWithHeaders = `{
	"resource": "commonteamroster",
	"resultSets": [
		{
			"name": "CommonTeamRoster",
			"headers": ["TeamID","SEASON","LeagueID","PLAYER","NICKNAME","PLAYER_SLUG","NUM","POSITION","HEIGHT","WEIGHT","BIRTH_DATE","AGE","EXP","SCHOOL","PLAYER_ID"],
			"rowSet": [
				[1610612747,"2023","00","LeBron James","LeBron","lebron-james","23","F","6-9","250","DEC 30, 1984",39.0,"20","St. Vincent-St. Mary HS (OH)",2544],
				[1610612747,"2023","00","Anthony Davis","Anthony","anthony-davis","3","F-C","6-10","253","MAR 11, 1993",31.0,"11","Kentucky",203076]
			]
		},
		{ "name": "Coaches", "headers": ["TEAM_ID"], "rowSet": [] }
	]
}`

// Headerless payload following the observed positional layout.
const rosterPositional = `{
	"resultSets": [
		{
			"rowSet": [
				[1610612747,"2023","00","Austin Reaves","15","G","6-5","206","MAY 29, 1998",25.0,"2","Oklahoma",null,null,1630559],
				[1610612747,"2023","00","D'Angelo Russell","1","G","6-4","193","FEB 23, 1996",28.0,"8","Ohio State",null,null,1626156]
			]
		}
	]
}`

const gameLogWithHeaders = `{
	"resultSets": [
		{
			"name": "PlayerGameLog",
			"headers": ["SEASON_ID","Player_ID","Game_ID","GAME_DATE","MATCHUP","WL","MIN","FGM","FGA","FG_PCT","FG3M","FG3A","FG3_PCT","FTM","FTA","FT_PCT","OREB","DREB","REB","AST","STL","BLK","TOV","PF","PTS","PLUS_MINUS","VIDEO_AVAILABLE"],
			"rowSet": [
				["22023",2544,"0022300001","APR 14, 2024","LAL @ NOP","W",38,12,20,0.6,2,5,0.4,4,6,0.667,1,9,10,5,1,2,3,1,30,12,1],
				["22023",2544,"0022300002","APR 12, 2024","LAL vs. MEM","W",35,8,20,0.4,1,4,0.25,4,4,1.0,0,7,7,8,2,0,4,2,21,5,1]
			]
		}
	]
}`

const profileWithHeaders = `{
	"resultSets": [
		{ "name": "SeasonTotalsRegularSeason", "headers": ["PLAYER_ID","SEASON_ID","LEAGUE_ID","TEAM_ID","TEAM_ABBREVIATION","PLAYER_AGE","GP","GS","MIN","FGM","FGA","FG_PCT","FG3M","FG3A","FG3_PCT","FTM","FTA","FT_PCT","OREB","DREB","REB","AST","STL","BLK","TOV","PF","PTS"],
		  "rowSet": [
			[2544,"2022-23","00",1610612747,"LAL",38.0,55,54,35.5,11.1,22.2,0.5,2.2,6.9,0.321,4.6,6.1,0.768,1.2,7.1,8.3,6.8,0.9,0.6,3.2,1.6,28.9],
			[2544,"2023-24","00",1610612747,"LAL",39.0,71,71,35.3,9.6,17.9,0.540,2.1,5.1,0.410,4.3,5.7,0.750,0.9,6.4,7.26,8.34,1.25,0.54,3.5,1.1,25.66]
		  ]
		}
	]
}`
