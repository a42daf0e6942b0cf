package curve

import "sync"

// Cache memoizes generated templates by shape identity
// Each key is built exactly once, on first use; stored paths are shared read-only,
// so callers take per-instance copies through Translate, Mirror or NewWalker
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	path func() Path
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Templates is the process-wide template cache
var Templates = NewCache()

// Get returns the template for key, calling build on first request only
// Concurrent first requests for the same key block until the single build finishes.
// A build that panics is not cached: the panic reaches every waiting caller and the
// next Get for key builds again
func (c *Cache) Get(key string, build func() Path) Path {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{path: sync.OnceValue(build)}
		c.entries[key] = e
	}
	c.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			c.forget(key, e)
			panic(r)
		}
	}()
	return e.path()
}

// forget drops e if it is still the entry for key
func (c *Cache) forget(key string, e *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[key] == e {
		delete(c.entries, key)
	}
}

// Has reports whether key has been requested before
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of cached shapes
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
