package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache and prefixes every key, isolating namespaces when
// several deployments share one backend.
//
// Example usage:
//
//	shared, _ := NewRedisCache("localhost:6379", "", 0)
//	staging := NewScoped(shared, "staging:")
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a cache whose keys all carry prefix. A nil inner
// cache falls back to NullCache.
func NewScoped(inner Cache, prefix string) *Scoped {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves the prefixed key from the inner cache.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores under the prefixed key in the inner cache.
func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes the prefixed key from the inner cache.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the inner cache.
func (s *Scoped) Close() error {
	return s.inner.Close()
}

// Ensure Scoped implements Cache.
var _ Cache = (*Scoped)(nil)
