// Package cache provides pluggable storage for rendered artifacts.
//
// Rendering a diagram is cheap, but the HTTP service and the CLI both
// serve repeated requests for the same linkage and option bundle, so
// finished artifacts (text diagrams, PostScript documents, SVG graphs)
// can be stored keyed by a hash of their inputs. Implementations:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared backend for multi-instance server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact class. Rendered artifacts are pure
// functions of their inputs, so the TTL only bounds storage growth.
const (
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte blobs under string keys.
type Cache interface {
	// Get retrieves a value. The second result reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL stores forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Keyer derives cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey keys one rendered artifact by the hash of the linkage
	// JSON, the output format, and the option bundle.
	ArtifactKey(linkageHash, format string, opts any) string
}

// DefaultKeyer hashes the format and options into the key so distinct
// option bundles never collide.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key of the form "artifact:<hash>".
func (k *DefaultKeyer) ArtifactKey(linkageHash, format string, opts any) string {
	return hashKey("artifact", linkageHash, format, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces
// when several dictionaries or deployments share one backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. The prefix is
// prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(linkageHash, format string, opts any) string {
	return k.prefix + k.inner.ArtifactKey(linkageHash, format, opts)
}
