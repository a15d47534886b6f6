package providers

import (
	"context"
	"errors"
	"log/slog"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

type fallbackStats struct {
	primary      StatsProvider
	fallback     StatsProvider
	primaryName  string
	fallbackName string
	logger       *slog.Logger
}

// NewFallbackStatsProvider tries primary first and only consults fallback when it fails.
// A nil fallback returns primary unchanged.
func NewFallbackStatsProvider(primary, fallback StatsProvider, primaryName, fallbackName string, logger *slog.Logger) StatsProvider {
	if fallback == nil {
		return primary
	}
	return &fallbackStats{
		primary:      primary,
		fallback:     fallback,
		primaryName:  primaryName,
		fallbackName: fallbackName,
		logger:       logger,
	}
}

func (p *fallbackStats) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	if p.primary == nil {
		return p.fallback.FetchPlayerStats(ctx, playerID, season)
	}
	line, err := p.primary.FetchPlayerStats(ctx, playerID, season)
	if err == nil {
		return line, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domainroster.StatLine{}, ctxErr
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.primaryName, "primary stats source failed, using fallback",
		"fallback", p.fallbackName,
		"player_id", playerID,
		"error_kind", ErrorKind(err),
	)
	line, fbErr := p.fallback.FetchPlayerStats(ctx, playerID, season)
	if fbErr != nil {
		return domainroster.StatLine{}, errors.Join(err, fbErr)
	}
	return line, nil
}
