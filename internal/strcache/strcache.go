// Package strcache provides the process-local LRU the string-interning
// layer (spec.md §4.5) uses to avoid a round trip for every already-seen
// StringHandle. Houdini Engine interns strings on its side and hands back
// a stable handle; a cook can touch the same handle thousands of times
// (attribute names, parm labels) so caching the resolved text by handle
// is the dominant win.
package strcache

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache is a fixed-capacity, xxhash-keyed LRU from (session, handle) to
// resolved string. It is safe for concurrent use: geometry attribute
// reads and parameter label lookups can both be in flight during a cook.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[uint64]*list.Element
}

type entry struct {
	key   uint64
	value string
}

// New builds a Cache holding up to capacity entries. A non-positive
// capacity disables eviction (unbounded growth) — used by short-lived
// sessions where bounding memory doesn't pay for itself.
func New(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[uint64]*list.Element),
	}
}

// Key hashes a (sessionID, handle) pair into the cache's lookup key.
// Handles are only unique within a session, so the session id must be
// folded in or two sessions would collide on handle 1.
func Key(sessionID int64, handle int32) uint64 {
	var buf [12]byte
	buf[0] = byte(sessionID)
	buf[1] = byte(sessionID >> 8)
	buf[2] = byte(sessionID >> 16)
	buf[3] = byte(sessionID >> 24)
	buf[4] = byte(sessionID >> 32)
	buf[5] = byte(sessionID >> 40)
	buf[6] = byte(sessionID >> 48)
	buf[7] = byte(sessionID >> 56)
	buf[8] = byte(handle)
	buf[9] = byte(handle >> 8)
	buf[10] = byte(handle >> 16)
	buf[11] = byte(handle >> 24)
	return xxhash.Sum64(buf[:])
}

// Get returns the cached string for key, if any, promoting it to
// most-recently-used.
func (c *Cache) Get(key uint64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).value, true
}

// Put inserts or updates key, evicting the least-recently-used entry if
// the cache is at capacity.
func (c *Cache) Put(key uint64, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		c.ll.MoveToFront(el)
		return
	}
	el := c.ll.PushFront(&entry{key: key, value: value})
	c.items[key] = el
	if c.capacity > 0 && c.ll.Len() > c.capacity {
		c.evictOldest()
	}
}

func (c *Cache) evictOldest() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Purge clears the cache. Called when a session closes, since its handles
// become meaningless once the engine process that minted them is gone.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[uint64]*list.Element)
}
