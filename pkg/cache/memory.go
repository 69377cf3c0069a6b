package cache

import (
	"context"
	"sync"
	"time"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/observability"
)

// DefaultMaxEntries bounds the in-memory cache when no explicit capacity
// is configured.
const DefaultMaxEntries = 1000

// MemoryCache is an in-process cache with a fixed capacity. When the
// capacity is reached, the oldest entry by insertion order is evicted.
// Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	order   []string
	max     int
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an in-memory cache holding at most maxEntries
// items. A non-positive maxEntries uses DefaultMaxEntries.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		max:     maxEntries,
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.remove(key)
		return nil, false, nil
	}

	data := append([]byte(nil), entry.data...)
	return data, true, nil
}

// Set stores a value in the cache, evicting the oldest entry when the
// capacity is reached. Overwriting an existing key keeps its position in
// the eviction order.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.max && len(c.order) > 0 {
			oldest := c.order[0]
			c.remove(oldest)
			observability.Cache().OnCacheEvict(ctx, keyType(oldest))
		}
		c.order = append(c.order, key)
	}

	entry := memoryEntry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
	return nil
}

// Close does nothing for the memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

// Len reports the number of live entries, counting expired ones that
// have not been read yet.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove drops key from the entry map and the eviction order.
// Callers must hold the lock.
func (c *MemoryCache) remove(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
