package cachemanager

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/zjrosen/inkwell/internal/log"
)

// ReadThroughCache computes a value on a miss and stores it.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache CacheManager[K, V]
	fn    func(ctx context.Context, input I) (V, error)
	skip  bool

	hits   atomic.Int64
	misses atomic.Int64
}

// NewReadThroughCache wraps fn with cache. With skip set every call goes
// straight to fn, which is how the cache is disabled from config.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	skip bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{cache: cache, fn: fn, skip: skip}
}

// Get returns the cached value for key or computes it from input.
// Errors from fn are returned and nothing is cached.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.get(ctx, key, input, ttl, r.cache.Get)
}

// GetWithRefresh is Get that also restarts the TTL on a hit.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.get(ctx, key, input, ttl, func(ctx context.Context, key K) (V, bool) {
		return r.cache.GetWithRefresh(ctx, key, ttl)
	})
}

func (r *ReadThroughCache[K, V, I]) get(
	ctx context.Context, key K, input I, ttl time.Duration,
	lookup func(context.Context, K) (V, bool),
) (V, error) {
	if r.skip {
		return r.fn(ctx, input)
	}
	if v, ok := lookup(ctx, key); ok {
		r.hits.Add(1)
		return v, nil
	}
	r.misses.Add(1)

	v, err := r.fn(ctx, input)
	if err != nil {
		log.ErrorErr(log.CatCache, "read-through compute failed", err)
		return v, err
	}
	r.cache.Set(ctx, key, v, ttl)
	return v, nil
}

// Stats returns the hit and miss counts since creation.
func (r *ReadThroughCache[K, V, I]) Stats() (hits, misses int64) {
	return r.hits.Load(), r.misses.Load()
}
