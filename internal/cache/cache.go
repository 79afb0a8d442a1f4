// Package cache provides a fixed-capacity key/value store with per-entry
// TTL expiry and least-recently-used eviction. One instance backs the rate
// limiter's counters, another optionally caches brand-check results.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is a bounded LRU store with lazy TTL expiry. All methods are safe
// for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	order   *list.List // front is least recently used
	entries map[string]*list.Element
}

type entry[V any] struct {
	key    string
	value  V
	expiry time.Time
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClock overrides the time source. Tests use this to control expiry.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// New creates a cache holding at most maxSize entries, each expiring ttl
// after insertion. A maxSize of zero or less yields a cache that retains
// nothing: every Set is immediately evicted.
func New[V any](maxSize int, ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key, refreshing its recency on a hit. An entry
// past its expiry is removed and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	ent := elem.Value.(*entry[V])
	if c.now().After(ent.expiry) {
		c.removeElement(elem)
		return zero, false
	}

	c.order.MoveToBack(elem)
	return ent.value, true
}

// Set inserts or overwrites key with a fresh expiry, placing it as most
// recently used. If the cache is at capacity and key is new, the least
// recently used entry is evicted first.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

func (c *Cache[V]) set(key string, value V) {
	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = value
		ent.expiry = c.now().Add(c.ttl)
		c.order.MoveToBack(elem)
		return
	}

	if c.order.Len() >= c.maxSize {
		if front := c.order.Front(); front != nil {
			c.removeElement(front)
		}
	}

	// A non-positive capacity admits nothing.
	if c.maxSize <= 0 {
		return
	}

	elem := c.order.PushBack(&entry[V]{
		key:    key,
		value:  value,
		expiry: c.now().Add(c.ttl),
	})
	c.entries[key] = elem
}

// Has reports whether key holds an unexpired entry. Unlike Get it does not
// refresh recency, but it shares the lazy-expiry removal behaviour.
func (c *Cache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	if c.now().After(elem.Value.(*entry[V]).expiry) {
		c.removeElement(elem)
		return false
	}
	return true
}

// Delete removes key and reports whether it was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	c.removeElement(elem)
	return true
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.entries = make(map[string]*list.Element)
}

// Len purges every expired entry, then reports the remaining count. The
// eager cleanup is part of the contract: Len is a maintenance operation as
// much as a read.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		if now.After(elem.Value.(*entry[V]).expiry) {
			c.removeElement(elem)
		}
		elem = next
	}
	return c.order.Len()
}

// Mutate applies fn to the entry for key under the cache lock, making a
// read-modify-write cycle atomic with respect to concurrent callers.
//
// On a live entry, fn receives (value, true); returning store=true writes
// the new value in place without touching the expiry. On an absent or
// expired entry, fn receives the zero value and false; returning store=true
// inserts a fresh entry exactly as Set would. A hit refreshes recency
// whether or not fn stores, matching Get.
func (c *Cache[V]) Mutate(key string, fn func(value V, ok bool) (V, bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if ok {
		ent := elem.Value.(*entry[V])
		if c.now().After(ent.expiry) {
			c.removeElement(elem)
		} else {
			c.order.MoveToBack(elem)
			if value, store := fn(ent.value, true); store {
				ent.value = value
			}
			return
		}
	}

	var zero V
	if value, store := fn(zero, false); store {
		c.set(key, value)
	}
}

func (c *Cache[V]) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.entries, elem.Value.(*entry[V]).key)
}
