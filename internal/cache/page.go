// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache. Rendered pages
// are stored keyed by route so repeated requests skip the store query and
// template execution. The cache is optional: a nil *PageCache is a no-op,
// which keeps the handlers free of cache-enabled checks.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey, keyed by route path
// (e.g. "/blog", "/blog/bond-valuation").
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a route. Returns false on miss or when
// the cache is not configured.
func (pc *PageCache) Get(ctx context.Context, route string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+route).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "route", route, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "route", route)
	return val, true
}

// Set stores rendered HTML for a route with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, route string, html []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+route, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "route", route, "error", err)
	}
}

// Invalidate removes a single route from the cache.
func (pc *PageCache) Invalidate(ctx context.Context, route string) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, pageKeyPrefix+route).Err(); err != nil {
		slog.Warn("page cache invalidate error", "route", route, "error", err)
	}
	slog.Debug("page cache invalidated", "route", route)
}

// InvalidateAll removes all cached pages by scanning for the prefix.
// Called after a content sync, since the blog index and month sidebar can
// be affected by any post change.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	if pc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}
