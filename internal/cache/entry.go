package cache

import (
	"context"
	"time"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
)

// Entry is one cached roster with the TTL it was stored under.
type Entry struct {
	Roster    domainroster.Roster `json:"roster"`
	FetchedAt time.Time           `json:"fetchedAt"`
	TTL       time.Duration       `json:"ttl"`
}

// Fresh reports whether the entry is still within its TTL at now.
// A non-positive TTL is never fresh.
func (e Entry) Fresh(now time.Time) bool {
	if e.TTL <= 0 || e.FetchedAt.IsZero() {
		return false
	}
	return now.Before(e.FetchedAt.Add(e.TTL))
}

// ExpiresAt returns when the entry stops being fresh.
func (e Entry) ExpiresAt() time.Time {
	return e.FetchedAt.Add(e.TTL)
}

// Store persists the single cached roster entry.
type Store interface {
	Load(ctx context.Context) (Entry, bool, error)
	Save(ctx context.Context, entry Entry) error
	Clear(ctx context.Context) error
}
