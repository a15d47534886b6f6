package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "test:roster"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, mr := newMiniRedisStore(t)
	ctx := context.Background()

	if _, ok, err := s.Load(ctx); ok || err != nil {
		t.Fatalf("expected miss on empty redis, got ok=%v err=%v", ok, err)
	}

	want := sampleEntry()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !mr.Exists("test:roster") {
		t.Fatalf("expected key to be written")
	}

	got, ok, err := s.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("expected entry, got ok=%v err=%v", ok, err)
	}
	if !got.FetchedAt.Equal(want.FetchedAt) || got.TTL != want.TTL {
		t.Fatalf("unexpected metadata %+v", got)
	}
	if len(got.Roster.Players) != 2 || got.Roster.Players[0] != want.Roster.Players[0] {
		t.Fatalf("unexpected players %+v", got.Roster.Players)
	}
	if got.Roster.TeamName != "Los Angeles Lakers" {
		t.Fatalf("unexpected team name %q", got.Roster.TeamName)
	}
}

func TestRedisStoreExpiresWithEntryTTL(t *testing.T) {
	s, mr := newMiniRedisStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, sampleEntry()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if ttl := mr.TTL("test:roster"); ttl != time.Hour {
		t.Fatalf("expected key ttl of 1h, got %s", ttl)
	}

	mr.FastForward(time.Hour + time.Second)
	if _, ok, err := s.Load(ctx); ok || err != nil {
		t.Fatalf("expected expired key to miss, got ok=%v err=%v", ok, err)
	}
}

func TestRedisStoreClear(t *testing.T) {
	s, mr := newMiniRedisStore(t)
	ctx := context.Background()
	_ = s.Save(ctx, sampleEntry())

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if mr.Exists("test:roster") {
		t.Fatalf("expected key to be deleted")
	}
}

func TestRedisStoreCorruptValueIsError(t *testing.T) {
	s, mr := newMiniRedisStore(t)
	if err := mr.Set("test:roster", "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, ok, err := s.Load(context.Background()); ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestRedisStoreUnavailableIsError(t *testing.T) {
	s, mr := newMiniRedisStore(t)
	mr.Close()

	if _, _, err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected error when redis is down")
	}
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := DialRedis(context.Background(), RedisOptions{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if s.key != DefaultRedisKey {
		t.Fatalf("expected default key, got %s", s.key)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("expected ping to succeed, got %v", err)
	}
}

func TestDialRedisFailsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := DialRedis(context.Background(), RedisOptions{Addr: addr}); err == nil {
		t.Fatalf("expected dial error")
	}
}
