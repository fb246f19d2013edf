package storage

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// keySep joins component type and name into a single cache key. It is a
// control character so it cannot collide with user-supplied names.
const keySep = "\x1f"

// CacheBackend is a Backend whose entries expire after a TTL. It is meant
// for short-lived catalogues such as remotely fetched screening configs,
// where stale entries should age out rather than accumulate.
//
// Expired entries disappear from Get/Has and are pruned from listings
// lazily on the next ListNames or ListTypes call.
type CacheBackend struct {
	mu    sync.Mutex
	cache *gocache.Cache
	ttl   time.Duration

	order     map[string][]string
	typeOrder []string
}

// NewCacheBackend creates a backend whose entries live for ttl.
// A ttl of zero or less means entries never expire.
func NewCacheBackend(ttl time.Duration) *CacheBackend {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &CacheBackend{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
		order: make(map[string][]string),
	}
}

// Put stores value under (componentType, name) with the backend's TTL.
func (c *CacheBackend) Put(componentType, name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := componentType + keySep + name
	if _, exists := c.cache.Get(key); !exists {
		if len(c.order[componentType]) == 0 && !containsString(c.typeOrder, componentType) {
			c.typeOrder = append(c.typeOrder, componentType)
		}
		if !containsString(c.order[componentType], name) {
			c.order[componentType] = append(c.order[componentType], name)
		}
	}
	c.cache.Set(key, value, c.ttl)
}

// Get returns the stored value for (componentType, name).
func (c *CacheBackend) Get(componentType, name string) (any, bool) {
	return c.cache.Get(componentType + keySep + name)
}

// Has reports whether (componentType, name) exists and has not expired.
func (c *CacheBackend) Has(componentType, name string) bool {
	_, ok := c.cache.Get(componentType + keySep + name)
	return ok
}

// Delete removes (componentType, name).
func (c *CacheBackend) Delete(componentType, name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := componentType + keySep + name
	if _, ok := c.cache.Get(key); !ok {
		return false
	}
	c.cache.Delete(key)
	c.order[componentType] = removeString(c.order[componentType], name)
	if len(c.order[componentType]) == 0 {
		delete(c.order, componentType)
		c.typeOrder = removeString(c.typeOrder, componentType)
	}
	return true
}

// ListNames returns live entry names under componentType in insertion
// order, pruning any that have expired.
func (c *CacheBackend) ListNames(componentType string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(componentType)

	names := c.order[componentType]
	result := make([]string, len(names))
	copy(result, names)
	return result
}

// ListTypes returns component types with at least one live entry, in
// first-insertion order.
func (c *CacheBackend) ListTypes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range append([]string(nil), c.typeOrder...) {
		c.pruneLocked(t)
	}

	result := make([]string, len(c.typeOrder))
	copy(result, c.typeOrder)
	return result
}

// pruneLocked drops expired names from the order index for one type.
func (c *CacheBackend) pruneLocked(componentType string) {
	names := c.order[componentType]
	live := names[:0]
	for _, n := range names {
		if _, ok := c.cache.Get(componentType + keySep + n); ok {
			live = append(live, n)
		}
	}
	if len(live) == 0 {
		delete(c.order, componentType)
		c.typeOrder = removeString(c.typeOrder, componentType)
		return
	}
	c.order[componentType] = live
}

func containsString(s []string, target string) bool {
	for _, v := range s {
		if v == target {
			return true
		}
	}
	return false
}
