package testutil

import (
	"time"

	approster "github.com/preston-bernstein/nba-roster-service/internal/app/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/cache"
	"github.com/preston-bernstein/nba-roster-service/internal/store"
	"github.com/preston-bernstein/nba-roster-service/internal/teststubs"
)

// NewRosterService builds a roster service over stub providers and an in-memory cache.
func NewRosterService(rosterStub *teststubs.StubRosterProvider, statsStub *teststubs.StubStatsProvider) *approster.Service {
	cfg := approster.Config{
		TeamID:       "1610612747",
		TeamName:     "Los Angeles Lakers",
		Season:       "2023-24",
		SortByPoints: true,
	}
	assembler := approster.NewAssembler(rosterStub, statsStub, cfg, nil)
	c := cache.New(cache.Options{
		TTL:    time.Hour,
		Store:  store.NewMemoryStore(),
		Loader: assembler.Assemble,
	})
	return approster.NewService(c, cfg, nil)
}
