package roster

import (
	"context"
	"log/slog"
	"time"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/logging"
	"github.com/preston-bernstein/nba-roster-service/internal/providers"
)

// Config selects the team and season to assemble.
type Config struct {
	TeamID       string
	TeamName     string
	Season       string
	SortByPoints bool
}

// Assembler builds a Roster from one roster call plus one stats call per player.
// Stats calls run sequentially; spacing is enforced by the providers it is given.
type Assembler struct {
	roster providers.RosterProvider
	stats  providers.StatsProvider
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func NewAssembler(rosterProvider providers.RosterProvider, statsProvider providers.StatsProvider, cfg Config, logger *slog.Logger) *Assembler {
	return &Assembler{
		roster: rosterProvider,
		stats:  statsProvider,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Config returns the team/season the assembler targets.
func (a *Assembler) Config() Config {
	return a.cfg
}

// FetchRoster returns player stubs for the configured team. On any failure it
// logs the cause and returns an empty, non-nil slice together with the error.
func (a *Assembler) FetchRoster(ctx context.Context) ([]domainroster.Player, error) {
	logger := logging.FromContext(ctx, a.logger)
	if a.roster == nil {
		logging.Error(logger, "roster fetch failed", providers.ErrProviderUnavailable,
			slog.String(logging.FieldErrorKind, providers.KindUnavailable),
		)
		return []domainroster.Player{}, providers.ErrProviderUnavailable
	}

	players, err := a.roster.FetchRoster(ctx, a.cfg.TeamID, a.cfg.Season)
	if err != nil {
		logging.Error(logger, "roster fetch failed", err,
			slog.String(logging.FieldTeamID, a.cfg.TeamID),
			slog.String(logging.FieldSeason, a.cfg.Season),
			slog.String(logging.FieldErrorKind, providers.ErrorKind(err)),
		)
		return []domainroster.Player{}, err
	}
	if players == nil {
		players = []domainroster.Player{}
	}
	return players, nil
}

// FetchPlayerStats returns the player's line, or false when it could not be
// obtained for any reason. Failures are logged, never returned.
func (a *Assembler) FetchPlayerStats(ctx context.Context, playerID string) (domainroster.StatLine, bool) {
	if a.stats == nil {
		return domainroster.StatLine{}, false
	}
	line, err := a.stats.FetchPlayerStats(ctx, playerID, a.cfg.Season)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, a.logger), "player stats unavailable, using defaults",
			slog.String(logging.FieldPlayerID, playerID),
			slog.String(logging.FieldErrorKind, providers.ErrorKind(err)),
			"error", err,
		)
		return domainroster.StatLine{}, false
	}
	return line, true
}

// Assemble fetches the roster and attaches stats to every player. The result is
// always usable; err is non-nil only when the roster itself failed or ctx ended.
func (a *Assembler) Assemble(ctx context.Context) (domainroster.Roster, error) {
	start := a.now()
	out := domainroster.Roster{
		TeamID:   a.cfg.TeamID,
		TeamName: a.cfg.TeamName,
		Season:   a.cfg.Season,
	}

	players, err := a.FetchRoster(ctx)
	out.Players = players
	if err != nil {
		out.FetchedAt = a.now()
		return out, err
	}

	for i := range players {
		if ctxErr := ctx.Err(); ctxErr != nil {
			out.FetchedAt = a.now()
			return out, ctxErr
		}
		line, ok := a.FetchPlayerStats(ctx, players[i].ID)
		if !ok {
			line = domainroster.DefaultStatLine()
		}
		players[i].Stats = line
	}

	if a.cfg.SortByPoints {
		domainroster.SortByPointsPerGame(players)
	}
	out.FetchedAt = a.now()

	logging.Info(logging.FromContext(ctx, a.logger), "roster assembled",
		slog.String(logging.FieldTeamID, a.cfg.TeamID),
		slog.String(logging.FieldSeason, a.cfg.Season),
		slog.Int(logging.FieldCount, len(players)),
		slog.Int64(logging.FieldDurationMS, out.FetchedAt.Sub(start).Milliseconds()),
	)
	return out, nil
}
