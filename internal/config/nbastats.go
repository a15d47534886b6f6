package config

import (
	"strings"
	"time"

	"github.com/preston-bernstein/nba-roster-service/internal/timeutil"
)

// NBAStatsConfig controls how we talk to stats.nba.com and which roster we build.
type NBAStatsConfig struct {
	BaseURL         string
	HeadshotBaseURL string
	TeamID          string
	TeamName        string
	Season          string
	LeagueID        string
	SeasonType      string
	Timeout         time.Duration
	StatsSource     string
	StatsFallback   string
	RequestInterval time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

func loadNBAStats(now func() time.Time) NBAStatsConfig {
	source := oneOf(strings.ToLower(envOrDefault(envStatsSource, defaultStatsSource)), defaultStatsSource,
		StatsSourceGameLog, StatsSourceProfile)
	fallback := oneOf(strings.ToLower(envOrDefault(envStatsFallback, defaultStatsFallback)), defaultStatsFallback,
		StatsSourceGameLog, StatsSourceProfile, StatsSourceNone)
	if fallback == source {
		fallback = StatsSourceNone
	}

	return NBAStatsConfig{
		BaseURL:         envOrDefault(envStatsBaseURL, ""),
		HeadshotBaseURL: envOrDefault(envHeadshotBaseURL, ""),
		TeamID:          envOrDefault(envTeamID, defaultTeamID),
		TeamName:        envOrDefault(envTeamName, defaultTeamName),
		Season:          resolveSeason(envOrDefault(envSeason, defaultSeason), now),
		LeagueID:        envOrDefault(envLeagueID, defaultLeagueID),
		SeasonType:      envOrDefault(envSeasonType, defaultSeasonType),
		Timeout:         durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		StatsSource:     source,
		StatsFallback:   fallback,
		RequestInterval: durationEnvOrDefault(envRequestInterval, defaultRequestInterval),
		BreakerFailures: intEnvOrDefault(envBreakerFailures, defaultBreakerFailures),
		BreakerCooldown: durationEnvOrDefault(envBreakerCooldown, defaultBreakerCooldown),
	}
}

func resolveSeason(raw string, now func() time.Time) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, seasonCurrent) {
		return timeutil.SeasonFor(now())
	}
	if !timeutil.ValidSeason(raw) {
		return defaultSeason
	}
	return raw
}
