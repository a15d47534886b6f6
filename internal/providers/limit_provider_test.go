package providers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainroster "github.com/preston-bernstein/nba-roster-service/internal/domain/roster"
	"github.com/preston-bernstein/nba-roster-service/internal/teststubs"
)

func TestThrottleSpacesConsecutiveCalls(t *testing.T) {
	inner := &teststubs.StubStatsProvider{}
	throttle := NewThrottle(20*time.Millisecond, nil)
	stats := throttle.Stats(inner)

	start := time.Now()
	for _, id := range []string{"1", "2", "3"} {
		if _, err := stats.FetchPlayerStats(context.Background(), id, "2023-24"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	elapsed := time.Since(start)

	// First call is immediate; the next two each wait one interval after the previous returns.
	if elapsed < 35*time.Millisecond {
		t.Fatalf("expected calls to be spaced, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 3 {
		t.Fatalf("expected inner provider called 3 times, got %d", inner.Calls.Load())
	}
}

func TestThrottleIsSharedAcrossRosterAndStats(t *testing.T) {
	throttle := NewThrottle(30*time.Millisecond, nil)
	rosterP := throttle.Roster(&teststubs.StubRosterProvider{Players: []domainroster.Player{{ID: "1"}}})
	statsP := throttle.Stats(&teststubs.StubStatsProvider{})

	start := time.Now()
	if _, err := rosterP.FetchRoster(context.Background(), "team", "2023-24"); err != nil {
		t.Fatalf("unexpected roster error %v", err)
	}
	if _, err := statsP.FetchPlayerStats(context.Background(), "1", "2023-24"); err != nil {
		t.Fatalf("unexpected stats error %v", err)
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("expected stats call to wait behind roster call, elapsed %s", elapsed)
	}
}

func TestThrottleRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubStatsProvider{}
	stats := NewThrottle(time.Minute, nil).Stats(inner)

	// Complete one call so the next must wait out the pause.
	if _, err := stats.FetchPlayerStats(context.Background(), "1", ""); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := stats.FetchPlayerStats(ctx, "2", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestThrottleHandlesNilInner(t *testing.T) {
	throttle := NewThrottle(time.Millisecond, nil)
	if _, err := throttle.Stats(nil).FetchPlayerStats(context.Background(), "1", ""); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := throttle.Roster(nil).FetchRoster(context.Background(), "t", "s"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestThrottleDefaultsInterval(t *testing.T) {
	if got := NewThrottle(0, nil).Interval(); got != 500*time.Millisecond {
		t.Fatalf("expected default interval 500ms, got %s", got)
	}
}

type timedStats struct {
	delay time.Duration

	mu     sync.Mutex
	starts []time.Time
	ends   []time.Time
}

func (s *timedStats) FetchPlayerStats(ctx context.Context, playerID, season string) (domainroster.StatLine, error) {
	s.mu.Lock()
	s.starts = append(s.starts, time.Now())
	s.mu.Unlock()
	time.Sleep(s.delay)
	s.mu.Lock()
	s.ends = append(s.ends, time.Now())
	s.mu.Unlock()
	return domainroster.DefaultStatLine(), nil
}

func TestThrottlePausesAfterSlowCalls(t *testing.T) {
	cases := []struct {
		name  string
		delay time.Duration
	}{
		{"slower than interval", 60 * time.Millisecond},
		{"faster than interval", 5 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inner := &timedStats{delay: tc.delay}
			stats := NewThrottle(40*time.Millisecond, nil).Stats(inner)

			for _, id := range []string{"1", "2"} {
				if _, err := stats.FetchPlayerStats(context.Background(), id, "2023-24"); err != nil {
					t.Fatalf("unexpected error %v", err)
				}
			}

			if len(inner.starts) != 2 || len(inner.ends) != 2 {
				t.Fatalf("expected two calls, got %d", len(inner.starts))
			}
			if pause := inner.starts[1].Sub(inner.ends[0]); pause < 35*time.Millisecond {
				t.Fatalf("expected a full pause after the first call, got %s", pause)
			}
		})
	}
}

func TestThrottleRunsCallsOneAtATime(t *testing.T) {
	inner := &timedStats{delay: 20 * time.Millisecond}
	stats := NewThrottle(time.Millisecond, nil).Stats(inner)

	var wg sync.WaitGroup
	for _, id := range []string{"1", "2", "3"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _ = stats.FetchPlayerStats(context.Background(), id, "2023-24")
		}(id)
	}
	wg.Wait()

	for i := 1; i < len(inner.starts); i++ {
		if inner.starts[i].Before(inner.ends[i-1]) {
			t.Fatalf("call %d started before call %d finished", i+1, i)
		}
	}
}
