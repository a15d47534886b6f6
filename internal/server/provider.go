package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-roster-service/internal/config"
	"github.com/preston-bernstein/nba-roster-service/internal/metrics"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
	"github.com/preston-bernstein/nba-roster-service/internal/providers/nbastats"
)

// providerSet is the pair of upstreams the assembler reads from.
type providerSet struct {
	name   string
	roster providers.RosterProvider
	stats  providers.StatsProvider
}

func (s providerSet) complete() bool {
	return s.roster != nil && s.stats != nil
}

func newNBAStatsClient(cfg config.NBAStatsConfig, recorder *metrics.Recorder, logger *slog.Logger) *nbastats.Client {
	return nbastats.NewClient(nbastats.Config{
		BaseURL:         cfg.BaseURL,
		HeadshotBaseURL: cfg.HeadshotBaseURL,
		LeagueID:        cfg.LeagueID,
		SeasonType:      cfg.SeasonType,
		Timeout:         cfg.Timeout,
		Metrics:         recorder,
		Logger:          logger,
	})
}

func statsSource(client *nbastats.Client, name string) providers.StatsProvider {
	if name == config.StatsSourceProfile {
		return client.ProfileStats()
	}
	return client.GameLogStats()
}
