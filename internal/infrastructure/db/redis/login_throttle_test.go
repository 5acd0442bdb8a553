package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, max int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, max, window), mr
}

func TestLoginThrottle_LocksAfterMaxFailures(t *testing.T) {
	throttle, _ := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		locked, err := throttle.Locked(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("Locked returned error: %v", err)
		}
		if locked {
			t.Fatalf("locked after %d failures, want unlocked until 3", i)
		}
		if err := throttle.RecordFailure(ctx, "a@x.com"); err != nil {
			t.Fatalf("RecordFailure returned error: %v", err)
		}
	}

	locked, err := throttle.Locked(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("Locked returned error: %v", err)
	}
	if !locked {
		t.Fatalf("expected identifier to be locked after 3 failures")
	}

	other, err := throttle.Locked(ctx, "b@x.com")
	if err != nil {
		t.Fatalf("Locked returned error: %v", err)
	}
	if other {
		t.Fatalf("failures must be counted per identifier")
	}
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	throttle, mr := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "a@x.com"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if err := throttle.RecordFailure(ctx, "a@x.com"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if ttl := mr.TTL("login_failures:a@x.com"); ttl != time.Minute {
		t.Fatalf("expected TTL of first failure to be kept, got %v", ttl)
	}

	mr.FastForward(time.Minute + time.Second)

	locked, err := throttle.Locked(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("Locked returned error: %v", err)
	}
	if locked {
		t.Fatalf("expected lock to lift once the window passed")
	}
}

func TestLoginThrottle_Reset(t *testing.T) {
	throttle, mr := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "a@x.com"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if err := throttle.Reset(ctx, "a@x.com"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if mr.Exists("login_failures:a@x.com") {
		t.Fatalf("expected counter key to be deleted")
	}
	if locked, _ := throttle.Locked(ctx, "a@x.com"); locked {
		t.Fatalf("expected unlocked after reset")
	}
}

func TestLoginThrottle_BackendDown(t *testing.T) {
	throttle, mr := newTestThrottle(t, 1, time.Minute)
	mr.Close()

	if _, err := throttle.Locked(context.Background(), "a@x.com"); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
	if err := throttle.RecordFailure(context.Background(), "a@x.com"); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
}

func TestLoginThrottle_EveryFailureLeavesTTL(t *testing.T) {
	throttle, mr := newTestThrottle(t, 5, time.Minute)
	ctx := context.Background()
	key := throttle.key("a@x.com")

	for i := 0; i < 3; i++ {
		if err := throttle.RecordFailure(ctx, "a@x.com"); err != nil {
			t.Fatalf("RecordFailure returned error: %v", err)
		}
		if ttl := mr.TTL(key); ttl <= 0 || ttl > time.Minute {
			t.Fatalf("failure %d: expected ttl in (0, 1m], got %v", i+1, ttl)
		}
		mr.FastForward(10 * time.Second)
	}

	// Later failures do not extend the window.
	if ttl := mr.TTL(key); ttl != 30*time.Second {
		t.Fatalf("expected 30s left in window, got %v", ttl)
	}
}

func TestLoginThrottle_RestoresMissingTTL(t *testing.T) {
	throttle, mr := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()
	key := throttle.key("a@x.com")

	// A counter left behind without an expiry.
	if err := mr.Set(key, "2"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := throttle.RecordFailure(ctx, "a@x.com"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if ttl := mr.TTL(key); ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %v", ttl)
	}

	mr.FastForward(time.Minute + time.Second)
	locked, err := throttle.Locked(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("Locked returned error: %v", err)
	}
	if locked {
		t.Fatal("lock must lift once the window passes")
	}
}
