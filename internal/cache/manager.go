// Package cache provides a TTL cache used to memoize rendered lines so
// resizes and scrolls do not re-style unchanged content.
package cache

import (
	"context"
	"time"
)

type Manager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
