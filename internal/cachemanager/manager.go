// Package cachemanager caches derived values, such as the highlighted lines
// of a document, behind a small interface so callers can swap the store or
// mock it in tests.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values under string keys with a per-entry TTL.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
	Len() int
}
