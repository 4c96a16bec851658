package svgpath

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity is the number of normalized paths memoized by
// ParseAndNormalize unless changed with SetCacheCapacity.
const DefaultCacheCapacity = 512

// Cache memoizes normalized paths by their path data string. It is safe for
// concurrent use. When full, the least recently used entry is evicted.
// Entries for the same key are always identical, so concurrent writers may
// overwrite each other.
type Cache struct {
	entries *lru.Cache[string, []Segment]
}

// NewCache creates a cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	entries, err := lru.New[string, []Segment](capacity)
	if err != nil { // only for capacity < 1
		panic(err)
	}
	return &Cache{entries: entries}
}

// Get returns the segments stored for key.
func (c *Cache) Get(key string) ([]Segment, bool) {
	return c.entries.Get(key)
}

// Put stores segments for key, evicting the least recently used entry if
// the cache is full.
func (c *Cache) Put(key string, segs []Segment) {
	if c.entries.Add(key, segs) {
		tracer().Debugf("path cache full, evicted oldest entry")
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.entries.Purge()
}

var pathCache atomic.Pointer[Cache]

func init() {
	pathCache.Store(NewCache(DefaultCacheCapacity))
}

func currentCache() *Cache {
	return pathCache.Load()
}

// SetCacheCapacity replaces the package cache used by ParseAndNormalize with
// an empty one of the given capacity. A capacity of 0 disables memoization.
func SetCacheCapacity(capacity int) {
	if capacity <= 0 {
		pathCache.Store(nil)
		return
	}
	pathCache.Store(NewCache(capacity))
}

// ClearCache empties the package cache used by ParseAndNormalize.
func ClearCache() {
	if c := currentCache(); c != nil {
		c.Clear()
	}
}
