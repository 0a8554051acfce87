package domain

import (
	"context"
	"time"
)

// Cache stores audit reports keyed by manifest content hash
type Cache interface {
	// Get retrieves a value, returning ErrCacheMiss when absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL (0 means no expiry)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Has checks if a key exists
	Has(ctx context.Context, key string) bool

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Close releases cache resources
	Close() error
}

// Resolver reports whether a leaf page path maps to an existing document
// resource. The docs renderer supplies the real implementation; mintlint
// ships a filesystem one.
type Resolver interface {
	Exists(path string) bool
}

// ResolverFunc adapts a plain function to the Resolver interface
type ResolverFunc func(path string) bool

// Exists implements Resolver
func (f ResolverFunc) Exists(path string) bool {
	return f(path)
}
