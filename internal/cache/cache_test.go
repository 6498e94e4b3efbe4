package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a client for tests. Skips if Valkey is
// unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TestPageCacheSetGet round-trips a rendered page by route.
func TestPageCacheSetGet(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	if _, ok := pc.Get(ctx, "/blog"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	html := []byte("<html>listing</html>")
	pc.Set(ctx, "/blog", html)

	got, ok := pc.Get(ctx, "/blog")
	if !ok {
		t.Fatal("expected cache hit after Set")
	}
	if string(got) != string(html) {
		t.Errorf("cached HTML = %q, want %q", got, html)
	}
}

// TestPageCacheInvalidate verifies single-route and full invalidation.
func TestPageCacheInvalidate(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	pc.Set(ctx, "/blog", []byte("a"))
	pc.Set(ctx, "/blog/npv-basics", []byte("b"))

	pc.Invalidate(ctx, "/blog")
	if _, ok := pc.Get(ctx, "/blog"); ok {
		t.Error("/blog still cached after Invalidate")
	}
	if _, ok := pc.Get(ctx, "/blog/npv-basics"); !ok {
		t.Error("unrelated route was invalidated")
	}

	pc.Set(ctx, "/blog", []byte("a"))
	pc.InvalidateAll(ctx)
	for _, route := range []string{"/blog", "/blog/npv-basics"} {
		if _, ok := pc.Get(ctx, route); ok {
			t.Errorf("%s still cached after InvalidateAll", route)
		}
	}
}

// TestPageCacheNilIsNoop verifies the optional-cache contract: a nil
// cache never panics and never hits.
func TestPageCacheNilIsNoop(t *testing.T) {
	var pc *PageCache
	ctx := context.Background()

	pc.Set(ctx, "/blog", []byte("x"))
	if _, ok := pc.Get(ctx, "/blog"); ok {
		t.Error("nil cache reported a hit")
	}
	pc.Invalidate(ctx, "/blog")
	pc.InvalidateAll(ctx)
}
