// Package cache stores computed chains so repeated runs over the same word
// list skip the graph work.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the HTTP server
//   - [NullCache]: stores nothing, used when caching is disabled
//
// All backends implement [Cache]. A miss is reported through the boolean
// result, never as an error; errors are reserved for backend failures.
//
// # Keys
//
// A [Keyer] derives keys from the chaining mode and a hash of the word list
// (see [WordsHash]). [ScopedKeyer] prefixes every key so several tenants or
// environments can share one backend.
//
//	k := cache.NewDefaultKeyer()
//	key := k.ChainKey("circuit", cache.WordsHash(words))
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
