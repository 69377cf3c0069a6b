// Package cache provides pluggable storage for synthesized activity
// summaries. Backends share a single Cache interface so the pipeline and
// server can run against memory, Redis, the filesystem, or nothing at all.
package cache

import (
	"context"
	"strings"
	"time"
)

// DefaultSummaryTTL bounds how long a synthesized summary is reused
// before the user's activity is fetched again.
const DefaultSummaryTTL = 4 * time.Hour

// Cache stores opaque byte payloads under string keys.
type Cache interface {
	// Get returns the payload for key. The bool reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero or negative ttl means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// SummaryKey returns the cache key for a user's synthesized summary.
// Usernames are case-insensitive on GitHub, so the key is normalized
// before hashing.
func SummaryKey(username string) string {
	return hashKey("summary", strings.ToLower(username))
}

// keyType extracts the namespace before the first ':' for hook reporting.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "key"
}
