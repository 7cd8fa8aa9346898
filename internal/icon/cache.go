package icon

import "sync"

type cacheEntry struct {
	path  string
	found bool
}

// Cache memoizes resolutions, misses included. Entries are never evicted.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the stored result for token. cached is false when token was
// never resolved.
func (c *Cache) Get(token string) (path string, found bool, cached bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[token]
	return e.path, e.found, ok
}

// Put stores a result. A later Put for the same token overwrites it.
func (c *Cache) Put(token, path string, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = cacheEntry{path: path, found: found}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
