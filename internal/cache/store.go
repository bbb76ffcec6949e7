// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"net/url"
)

// Store is a rendered-page cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
	InvalidateAll(ctx context.Context)
}

var (
	_ Store = (*MemoryCache)(nil)
	_ Store = (*PageCache)(nil)
	_ Store = Layered(nil)
)

// Layered checks each store in order. A hit in a later layer is copied into
// the earlier ones; Set and InvalidateAll reach every layer.
type Layered []Store

// NewLayered drops nil stores so an unconfigured L2 can be passed directly.
func NewLayered(stores ...Store) Layered {
	var out Layered
	for _, s := range stores {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (l Layered) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, s := range l {
		if html, ok := s.Get(ctx, key); ok {
			for _, earlier := range l[:i] {
				earlier.Set(ctx, key, html)
			}
			return html, true
		}
	}
	return nil, false
}

func (l Layered) Set(ctx context.Context, key string, html []byte) {
	for _, s := range l {
		s.Set(ctx, key, html)
	}
}

func (l Layered) InvalidateAll(ctx context.Context) {
	for _, s := range l {
		s.InvalidateAll(ctx)
	}
}

// Key builds the cache key for a request path and query. Parameters are
// sorted so equivalent URLs share an entry.
func Key(path string, query url.Values) string {
	if enc := query.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
