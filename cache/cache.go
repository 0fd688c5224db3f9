/*
Package cache provides response caching for the projection service.

PURPOSE:
  The engine is deterministic: identical input snapshots produce identical
  results. That makes a content hash of the request a sound cache key, so
  repeated projections (the common case when a UI recomputes on change)
  can be served without recomputing.

IMPLEMENTATIONS:
  - redis.go:  Redis-backed, for deployments with a cache tier
  - memory.go: In-process map, for tests and single-instance use
*/
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Cache stores serialized responses keyed by request content.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key derives a cache key from a namespace and the raw request content.
func Key(namespace string, content []byte) string {
	return namespace + ":" + strconv.FormatUint(xxhash.Sum64(content), 16)
}
