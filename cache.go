package messageformat

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds a compiled template with its key for reverse lookup on
// eviction.
type cacheEntry struct {
	value *CompiledTemplate
	key   string
}

// templateCache is a bounded least-recently-used cache of compiled
// templates keyed by locale plus raw template text.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1)
// eviction ordering: the most recently used entries are at the front, the
// least recently used at the back. All mutation happens under a single
// mutex; compilation on a miss is deduplicated through a singleflight
// group so a stampede on one key compiles once.
type templateCache struct {
	items    map[string]*list.Element
	eviction *list.List
	group    singleflight.Group
	mu       sync.Mutex
	capacity int
}

func newTemplateCache(capacity int) *templateCache {
	return &templateCache{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		capacity: capacity,
	}
}

// get retrieves a compiled template by key and promotes it to most
// recently used.
func (c *templateCache) get(key string) (*CompiledTemplate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}

	c.eviction.MoveToFront(elem)

	return elem.Value.(*cacheEntry).value, true
}

// put inserts a compiled template, evicting the least recently used entry
// when at capacity.
func (c *templateCache) put(key string, ct *CompiledTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*cacheEntry).value = ct
		c.eviction.MoveToFront(elem)
		return
	}

	if c.capacity > 0 && len(c.items) >= c.capacity {
		c.evictOldest()
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, value: ct})
}

// getOrCompile returns the cached template for key or compiles and caches
// one. Failed compilations are not cached, so a transiently failing
// template does not poison the cache.
func (c *templateCache) getOrCompile(key string, compile func() (*CompiledTemplate, error)) (*CompiledTemplate, error) {
	if ct, ok := c.get(key); ok {
		return ct, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if ct, ok := c.get(key); ok {
			return ct, nil
		}

		ct, err := compile()
		if err != nil {
			return nil, err
		}
		c.put(key, ct)

		return ct, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*CompiledTemplate), nil
}

// evictOldest removes the least recently used entry. Caller must hold the
// mutex.
func (c *templateCache) evictOldest() {
	if elem := c.eviction.Back(); elem != nil {
		c.eviction.Remove(elem)
		delete(c.items, elem.Value.(*cacheEntry).key)
	}
}
