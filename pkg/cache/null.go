package cache

import (
	"context"
	"time"
)

// NullCache stands in for the chain and graph cache when caching is off
// (--no-cache, cache.disabled in the config, or no usable cache directory).
// Every lookup misses, so the runner recomputes each chain.
type NullCache struct{}

// NewNullCache returns the cache used when results must not be stored.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every chain or graph key.
func (c *NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the entry.
func (c *NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (c *NullCache) Delete(context.Context, string) error {
	return nil
}

func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
