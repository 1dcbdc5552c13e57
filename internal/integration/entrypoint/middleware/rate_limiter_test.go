package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRateLimiter_RedisWindow(t *testing.T) {
	client := newTestRedis(t)
	limiter := NewRateLimiterWithConfig(client, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !limiter.allow(ctx, "10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	if limiter.allow(ctx, "10.0.0.1") {
		t.Error("fourth attempt should be blocked")
	}

	// Limits are per client key.
	if !limiter.allow(ctx, "10.0.0.2") {
		t.Error("a different client should not be affected")
	}
}

func TestRateLimiter_ResetClearsCounters(t *testing.T) {
	client := newTestRedis(t)
	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	ctx := context.Background()

	if !limiter.allow(ctx, "10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if limiter.allow(ctx, "10.0.0.1") {
		t.Fatal("second attempt should be blocked")
	}

	limiter.Reset(ctx)

	if !limiter.allow(ctx, "10.0.0.1") {
		t.Error("attempt after reset should be allowed")
	}
}

func TestRateLimiter_MemoryFallback(t *testing.T) {
	// A nil client selects the in-memory window from the start.
	limiter := NewRateLimiterWithConfig(nil, 2, time.Minute)
	ctx := context.Background()

	if !limiter.allow(ctx, "10.0.0.1") || !limiter.allow(ctx, "10.0.0.1") {
		t.Fatal("first two attempts should be allowed")
	}
	if limiter.allow(ctx, "10.0.0.1") {
		t.Error("third attempt should be blocked")
	}
}

func TestRateLimiter_FallsBackWhenRedisDies(t *testing.T) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiterWithConfig(client, 2, time.Minute)
	ctx := context.Background()

	if !limiter.allow(ctx, "10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}

	server.Close()

	// Redis is gone; the limiter keeps serving from memory.
	if !limiter.allow(ctx, "10.0.0.1") || !limiter.allow(ctx, "10.0.0.1") {
		t.Error("in-memory fallback should allow its own window")
	}
	if limiter.allow(ctx, "10.0.0.1") {
		t.Error("in-memory fallback should still enforce the limit")
	}
}
