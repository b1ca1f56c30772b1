// Package domaincache memoizes per-domain computations with singleflight
// deduplication for concurrent requests to the same domain.
package domaincache

import "sync"

// Cache is a thread-safe, size-bounded memo of fn(domain).
// Concurrent calls for the same domain are deduplicated:
// fn runs once and all waiters receive its result.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	maxEntries int
	fn         func(domain string) string
}

type entry struct {
	value string
	done  chan struct{} // closed when fn has returned
}

// New creates a cache around fn holding at most maxEntries domains.
// When full, the cache is reset before a new domain is added.
// A non-positive maxEntries means unbounded.
func New(maxEntries int, fn func(domain string) string) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		fn:         fn,
	}
}

// Get returns fn(domain), computing it at most once per cached domain.
func (c *Cache) Get(domain string) string {
	c.mu.Lock()

	if e, ok := c.entries[domain]; ok {
		c.mu.Unlock()
		<-e.done
		return e.value
	}

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		// In-flight waiters keep their own entry pointer.
		c.entries = make(map[string]*entry)
	}

	e := &entry{done: make(chan struct{})}
	c.entries[domain] = e
	c.mu.Unlock()

	e.value = c.fn(domain)
	close(e.done)

	return e.value
}

// Len returns the number of entries in the cache (for diagnostics).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
