// Package cache provides artifact caching for the HAG toolchain.
//
// Rendering a graph (Graphviz layout, PNG/PDF conversion) is far more
// expensive than loading it, so rendered artifacts are cached keyed by the
// graph's content hash plus the render options. Re-rendering an unchanged
// graph is a cache hit.
//
// Three backends implement the [Cache] interface:
//   - [FileCache]: directory-based, for CLI usage (XDG cache dir)
//   - [RedisCache]: for multi-instance deployments
//   - [NullCache]: disables caching entirely
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Artifacts are
// keyed by content hash, so a long TTL is safe; it only bounds disk usage.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the interface for cache backends.
// Implementations must treat a missing key as (nil, false, nil), not an error.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found; expired entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey returns the cache key for a rendered artifact.
// The key covers the graph content hash, the output format, and every
// option that influences the rendered bytes.
func ArtifactKey(graphHash, format string, opts any) string {
	return hashKey("artifact", graphHash, format, opts)
}
