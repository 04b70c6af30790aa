package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, limit, window), mr
}

func TestLoginLimiter_AllowsUpToLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		ok, _, err := l.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}

	ok, retry, err := l.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok {
		t.Fatalf("fourth attempt should be rejected")
	}
	if retry <= 0 || retry > time.Minute {
		t.Fatalf("unexpected retry-after: %v", retry)
	}

	if ok, _, _ := l.Allow(ctx, "10.0.0.2"); !ok {
		t.Fatalf("other keys must not share the counter")
	}
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _, _ := l.Allow(ctx, "k"); !ok {
		t.Fatalf("first attempt should be allowed")
	}
	if ok, _, _ := l.Allow(ctx, "k"); ok {
		t.Fatalf("second attempt should be rejected")
	}

	mr.FastForward(61 * time.Second)

	if ok, _, _ := l.Allow(ctx, "k"); !ok {
		t.Fatalf("attempt after the window should be allowed")
	}
}

func TestLoginLimiter_Reset(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	_, _, _ = l.Allow(ctx, "k")
	if err := l.Reset(ctx, "k"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if ok, _, _ := l.Allow(ctx, "k"); !ok {
		t.Fatalf("attempt after reset should be allowed")
	}
}

func TestLoginLimiter_RestoresMissingTTL(t *testing.T) {
	l, mr := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	// A counter left behind without an expiry must not lock the client out forever.
	if err := mr.Set("login:attempts:10.0.0.9", "7"); err != nil {
		t.Fatalf("seed counter: %v", err)
	}
	if mr.TTL("login:attempts:10.0.0.9") != 0 {
		t.Fatalf("seeded counter should have no ttl")
	}

	ok, retry, err := l.Allow(ctx, "10.0.0.9")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok || retry != time.Minute {
		t.Fatalf("expected rejection with a fresh window, got ok=%v retry=%v", ok, retry)
	}
	if ttl := mr.TTL("login:attempts:10.0.0.9"); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected the window to be applied, got ttl %v", ttl)
	}

	mr.FastForward(time.Minute + time.Second)
	if ok, _, _ := l.Allow(ctx, "10.0.0.9"); !ok {
		t.Fatalf("attempt after the window should be allowed")
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := Connect(context.Background(), Config{Addr: addr})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	_ = client.Close()

	mr.Close()
	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected error for unreachable redis")
	}
}
