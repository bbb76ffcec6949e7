// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides the Valkey-backed full-page HTML cache (L2). Several
// server instances may share it, so invalidation bumps a generation counter
// that every key embeds instead of deleting keys one by one. Entries from
// older generations are never read again and expire on their TTL.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix namespaces every key this cache writes.
	pageKeyPrefix = "animdocs:page:"

	// generationKey holds the current generation number.
	generationKey = pageKeyPrefix + "gen"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache stores rendered pages in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache backed by the given Valkey client. A
// non-positive ttl selects DefaultPageTTL.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// generation returns the current generation. A missing counter is
// generation zero.
func (pc *PageCache) generation(ctx context.Context) (int64, error) {
	gen, err := pc.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func entryKey(gen int64, key string) string {
	return pageKeyPrefix + strconv.FormatInt(gen, 10) + ":" + key
}

// Get returns the cached HTML for key in the current generation. Valkey
// errors are logged and reported as a miss.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	gen, err := pc.generation(ctx)
	if err != nil {
		slog.Warn("page cache generation lookup failed", "error", err)
		return nil, false
	}

	html, err := pc.client.Get(ctx, entryKey(gen, key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false
	case err != nil:
		slog.Warn("page cache get failed", "layer", "valkey", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "layer", "valkey", "key", key, "generation", gen)
	return html, true
}

// Set stores html under key in the current generation.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	gen, err := pc.generation(ctx)
	if err != nil {
		slog.Warn("page cache generation lookup failed", "error", err)
		return
	}
	if err := pc.client.Set(ctx, entryKey(gen, key), html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set failed", "layer", "valkey", "key", key, "error", err)
	}
}

// InvalidateAll starts a new generation, which hides every stored page from
// all instances at once.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	gen, err := pc.client.Incr(ctx, generationKey).Result()
	if err != nil {
		slog.Warn("page cache invalidation failed", "layer", "valkey", "error", err)
		return
	}
	slog.Info("page cache cleared", "layer", "valkey", "generation", gen)
}
