package nbastats

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-roster-service/internal/metrics"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

func TestFetchRosterSendsBrowserHeadersAndParams(t *testing.T) {
	client, seen := newTestClient(t, map[string]string{endpointRoster: rosterWithHeaders})

	if _, err := client.FetchRoster(context.Background(), "1610612747", "2023-24"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(*seen) != 1 {
		t.Fatalf("expected a single request, got %d", len(*seen))
	}
	req := (*seen)[0]
	q := req.URL.Query()
	if q.Get("LeagueID") != "00" || q.Get("Season") != "2023-24" || q.Get("TeamID") != "1610612747" {
		t.Fatalf("unexpected query %s", req.URL.RawQuery)
	}
	for _, header := range []string{"User-Agent", "Referer", "Origin", "x-nba-stats-origin", "x-nba-stats-token"} {
		if req.Header.Get(header) == "" {
			t.Fatalf("expected %s header to be set", header)
		}
	}
	if req.Header.Get("Accept-Encoding") != "" {
		t.Fatalf("expected Accept-Encoding to be left to the transport")
	}
}

func TestFetchRosterMapsNamedColumns(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{endpointRoster: rosterWithHeaders})

	players, err := client.FetchRoster(context.Background(), "1610612747", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}

	lebron := players[0]
	if lebron.ID != "2544" || lebron.Name != "LeBron James" || lebron.JerseyNumber != "23" {
		t.Fatalf("unexpected identity fields %+v", lebron)
	}
	if lebron.Position != "F" || lebron.Height != "6-9" || lebron.Weight != "250 lbs" {
		t.Fatalf("unexpected body fields %+v", lebron)
	}
	if lebron.ImageURL != defaultHeadshotBaseURL+"/2544.png" {
		t.Fatalf("unexpected image url %s", lebron.ImageURL)
	}
	if lebron.Stats.FieldGoalPct != "0.0%" || lebron.Stats.GamesPlayed != 0 {
		t.Fatalf("expected default stat line on stub, got %+v", lebron.Stats)
	}
}

func TestFetchRosterUsesPositionalOffsetsWithoutHeaders(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{endpointRoster: rosterPositional})

	players, err := client.FetchRoster(context.Background(), "1610612747", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	p := players[0]
	if p.ID != "1630559" || p.Name != "Austin Reaves" || p.JerseyNumber != "15" || p.Position != "G" || p.Height != "6-5" || p.Weight != "206 lbs" {
		t.Fatalf("unexpected positional mapping %+v", p)
	}
}

func TestFetchRosterSkipsUnreadableRows(t *testing.T) {
	body := `{"resultSets":[{"rowSet":[
		[1,"2023","00","Short Row","1"],
		[1,"2023","00","Good Row","2","G","6-1",null,"",0,"R","",null,null,42]
	]}]}`
	client, _ := newTestClient(t, map[string]string{endpointRoster: body})

	players, err := client.FetchRoster(context.Background(), "1", "2023-24")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(players) != 1 || players[0].ID != "42" {
		t.Fatalf("expected only the readable row, got %+v", players)
	}
	if players[0].Weight != "" {
		t.Fatalf("expected null weight to stay empty, got %q", players[0].Weight)
	}
}

func TestFetchRosterFailsOnMissingColumns(t *testing.T) {
	body := `{"resultSets":[{"name":"CommonTeamRoster","headers":["PLAYER","NUM"],"rowSet":[["X","1"]]}]}`
	client, _ := newTestClient(t, map[string]string{endpointRoster: body})

	_, err := client.FetchRoster(context.Background(), "1", "2023-24")
	if providers.ErrorKind(err) != providers.KindSchema {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestFetchRosterMissingResultSetsIsSchemaError(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{endpointRoster: `{"message":"blocked"}`})

	players, err := client.FetchRoster(context.Background(), "1", "2023-24")
	if players != nil {
		t.Fatalf("expected no players, got %+v", players)
	}
	var schemaErr *providers.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestFetchHandlesNon2xx(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "<html>bad gateway</html>"), nil
	})
	rec := metrics.NewRecorder()
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}, Metrics: rec})

	_, err := client.FetchRoster(context.Background(), "1", "2023-24")
	var upErr *providers.UpstreamError
	if !errors.As(err, &upErr) || upErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected upstream status error, got %v", err)
	}
	if got := rec.ProviderErrors("nbastats.commonteamroster"); got != 1 {
		t.Fatalf("expected 1 recorded provider error, got %d", got)
	}
}

func TestFetchHandlesRateLimit(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})
	rec := metrics.NewRecorder()
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}, Metrics: rec})

	_, err := client.GameLogStats().FetchPlayerStats(context.Background(), "2544", "2023-24")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Fatalf("expected retry-after 7s, got %s", rl.RetryAfter)
	}
	if got := rec.RateLimitHits("nbastats.playergamelog"); got != 1 {
		t.Fatalf("expected rate limit recorded, got %d", got)
	}
}

func TestFetchWrapsTransportErrors(t *testing.T) {
	boom := errors.New("connection reset")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.ProfileStats().FetchPlayerStats(context.Background(), "2544", "")
	if providers.ErrorKind(err) != providers.KindNetwork || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped network error, got %v", err)
	}
}

func TestFetchRespectsCanceledContext(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, req.Context().Err()
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FetchRoster(ctx, "1", "2023-24")
	if providers.ErrorKind(err) != providers.KindCanceled {
		t.Fatalf("expected canceled kind, got %v", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL || c.leagueID != "00" || c.seasonType != "Regular Season" {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestNewClientCustomTimeout(t *testing.T) {
	c := NewClient(Config{Timeout: 3 * time.Second})
	if c.httpClient.(*http.Client).Timeout != 3*time.Second {
		t.Fatalf("expected custom timeout")
	}
}
