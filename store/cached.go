package store

import (
	"context"
	"encoding/json"

	"github.com/initia-labs/bridgeinfo/cache"
	"github.com/initia-labs/bridgeinfo/metrics"
)

// Cached is a read-through cache in front of another Store. Only found values
// are cached so that newly written keys become visible without waiting.
type Cached struct {
	next  Store
	cache cache.Cacher[string, json.RawMessage]
}

var _ Store = (*Cached)(nil)

func NewCached(next Store, c cache.Cacher[string, json.RawMessage]) *Cached {
	return &Cached{next: next, cache: c}
}

func (c *Cached) Get(ctx context.Context, key Key) (json.RawMessage, bool, error) {
	k := key.String()
	if value, ok := c.cache.Get(k); ok {
		metrics.StoreCacheRequestsTotal().WithLabelValues("hit").Inc()
		return value, true, nil
	}
	metrics.StoreCacheRequestsTotal().WithLabelValues("miss").Inc()

	value, found, err := c.next.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}

	c.cache.Set(k, value)
	return value, true, nil
}
