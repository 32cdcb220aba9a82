package stores

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRevocationAddAndContains(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRevocationStore(rdb, "")
	ctx := context.Background()

	revoked, err := store.Contains(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if revoked {
		t.Fatal("expected tok-1 absent before Add")
	}

	if err := store.Add(ctx, "tok-1", 30*time.Minute); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	revoked, err = store.Contains(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if !revoked {
		t.Fatal("expected tok-1 revoked after Add")
	}
}

func TestRevocationNonPositiveTTLNoOps(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewRevocationStore(rdb, "")
	ctx := context.Background()

	if err := store.Add(ctx, "expired", 0); err != nil {
		t.Fatalf("Add with zero ttl error: %v", err)
	}
	if err := store.Add(ctx, "expired", -time.Minute); err != nil {
		t.Fatalf("Add with negative ttl error: %v", err)
	}

	revoked, err := store.Contains(ctx, "expired")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if revoked {
		t.Fatal("expired token must not gain a revocation entry")
	}
}

func TestRevocationEntryExpiresWithToken(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRevocationStore(rdb, "")
	ctx := context.Background()

	if err := store.Add(ctx, "tok-1", time.Minute); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	revoked, err := store.Contains(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if revoked {
		t.Fatal("revocation entry should be purged after the token's lifetime")
	}
}

func TestRevocationKeyLayout(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRevocationStore(rdb, "")
	ctx := context.Background()

	if err := store.Add(ctx, "tok-1", time.Hour); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if got, err := mr.Get("blacklist:tok-1"); err != nil || got != "revoked" {
		t.Fatalf("raw key blacklist:tok-1 = %q, %v", got, err)
	}
}

func TestRevocationUnavailable(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRevocationStore(rdb, "")
	ctx := context.Background()

	mr.Close()

	if err := store.Add(ctx, "tok-1", time.Hour); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
	if _, err := store.Contains(ctx, "tok-1"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
}
