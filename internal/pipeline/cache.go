package pipeline

import "sync"

// Cache memoizes canonical tables by source identity so repeated
// dashboard renders do not re-read or re-parse the source. Entries are
// read-only once stored and safe to share. Only an identity change or
// an explicit Invalidate produces a fresh load; there is no TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*LoadResult
}

// NewCache returns an empty load cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*LoadResult)}
}

// Get returns the cached result for an identity, if present.
func (c *Cache) Get(identity string) (*LoadResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[identity]
	return res, ok
}

// Put stores a load result under its identity.
func (c *Cache) Put(identity string, res *LoadResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[identity] = res
}

// Invalidate drops the entry for an identity, forcing the next load to
// re-read the source.
func (c *Cache) Invalidate(identity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, identity)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
