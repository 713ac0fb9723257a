// Package cache provides byte caching for derived scene artifacts.
//
// The serve and render paths use it to skip recomputing container
// summaries and preview renders when the scene content hash is unchanged.
// Three backends are provided:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared cache for serve deployments
//   - NullCache: disabled caching, for tests and --no-cache runs
//
// Keys are derived from content hashes (see [SummaryKey] and [RenderKey]),
// so entries never need explicit invalidation: a changed scene simply
// misses.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
// Get returns (nil, false, nil) on a miss; errors are reserved for backend
// failures, never for missing keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
