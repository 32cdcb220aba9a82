package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func TestRefreshPutGetRoundtrip(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")
	ctx := context.Background()

	if err := store.Put(ctx, "user1", "token-a", time.Hour); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := store.Get(ctx, "user1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "token-a" {
		t.Fatalf("Get = %q, want token-a", got)
	}
}

func TestRefreshPutOverwrites(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")
	ctx := context.Background()

	if err := store.Put(ctx, "user1", "token-a", time.Hour); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := store.Put(ctx, "user1", "token-b", time.Hour); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := store.Get(ctx, "user1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != "token-b" {
		t.Fatalf("Get = %q, want last-written token-b", got)
	}
}

func TestRefreshGetMissing(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")

	if _, err := store.Get(context.Background(), "ghost"); !errors.Is(err, ErrRefreshNotFound) {
		t.Fatalf("expected ErrRefreshNotFound, got %v", err)
	}
}

func TestRefreshDelete(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")
	ctx := context.Background()

	if err := store.Put(ctx, "user1", "token-a", time.Hour); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := store.Delete(ctx, "user1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Get(ctx, "user1"); !errors.Is(err, ErrRefreshNotFound) {
		t.Fatalf("expected ErrRefreshNotFound after delete, got %v", err)
	}

	// Deleting an absent entry is not an error.
	if err := store.Delete(ctx, "user1"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
}

func TestRefreshEntryExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")
	ctx := context.Background()

	if err := store.Put(ctx, "user1", "token-a", time.Minute); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "user1"); !errors.Is(err, ErrRefreshNotFound) {
		t.Fatalf("expected ErrRefreshNotFound after TTL, got %v", err)
	}
}

func TestRefreshKeyLayout(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")
	ctx := context.Background()

	if err := store.Put(ctx, "user1", "token-a", time.Hour); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	if got, err := mr.Get("refresh_token:user1"); err != nil || got != "token-a" {
		t.Fatalf("raw key refresh_token:user1 = %q, %v", got, err)
	}
}

func TestRefreshStoreUnavailable(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRefreshStore(rdb, "")
	ctx := context.Background()

	mr.Close()

	if err := store.Put(ctx, "user1", "token-a", time.Hour); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
	if _, err := store.Get(ctx, "user1"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}
