package ttlcache

import (
	"fmt"
	"sync"
	"time"

	"github.com/juju/clock"
)

// entry holds a cached value together with its expiry deadline and a
// monotonically increasing insertion sequence used as the eviction tie-break.
type entry[V any] struct {
	value     V
	expiresAt time.Time
	seq       uint64
}

// Cache is a bounded map whose entries expire independently. An entry is
// never observably present once its deadline has passed, even though the
// underlying map may still hold it until the next access purges it.
//
// It is safe for concurrent use by multiple goroutines.
type Cache[K comparable, V any] struct {
	// mu protects entries and nextSeq.
	mu      sync.Mutex
	entries map[K]*entry[V]

	// nextSeq is incremented on every insert. Eviction compares
	// (expiresAt, seq), so among entries expiring at the same instant the
	// earliest-inserted one is evicted first. Deterministic on purpose.
	nextSeq uint64

	maxSize    int
	defaultTTL time.Duration
	clk        clock.Clock
}

// New creates a Cache holding at most maxSize entries, each defaulting to
// defaultTTL. A nil clk falls back to clock.WallClock.
// Panics if maxSize or defaultTTL is not positive.
func New[K comparable, V any](maxSize int, defaultTTL time.Duration, clk clock.Clock) *Cache[K, V] {
	if maxSize <= 0 {
		panic(fmt.Sprintf("ttlcache: maxSize must be greater than 0, got %d", maxSize))
	}
	if defaultTTL <= 0 {
		panic(fmt.Sprintf("ttlcache: defaultTTL must be greater than 0, got %v", defaultTTL))
	}
	if clk == nil {
		clk = clock.WallClock
	}
	return &Cache[K, V]{
		entries:    make(map[K]*entry[V], maxSize),
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
		clk:        clk,
	}
}

// expired reports whether e's deadline has been reached at instant now.
// An entry is gone the moment now reaches expiresAt, so SetExpiry with a
// zero or negative TTL expires an entry immediately.
func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.After(now)
}

// Get returns the value for key if it is present and unexpired. An expired
// entry reads as absent and is purged as a side effect.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if e.expired(c.clk.Now()) {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set inserts or overwrites key with the cache's default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL inserts or overwrites key with an explicit TTL, computing the
// deadline as now + ttl. If the key is new and the cache is full, the live
// entry with the earliest deadline (ties: earliest-inserted) is evicted
// before inserting; the entry being inserted is never the eviction victim.
func (c *Cache[K, V]) SetTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clk.Now()
	if _, ok := c.entries[key]; !ok {
		// Expired entries do not count against capacity.
		c.purgeLocked(now)
		if len(c.entries) >= c.maxSize {
			c.evictLocked()
		}
	}
	c.nextSeq++
	c.entries[key] = &entry[V]{
		value:     value,
		expiresAt: now.Add(ttl),
		seq:       c.nextSeq,
	}
}

// SetExpiry re-times an existing unexpired entry without changing its value.
// The new deadline is now + ttl; a zero or negative ttl expires the entry
// immediately. Returns false (and does nothing) if the key is absent or
// already expired.
func (c *Cache[K, V]) SetExpiry(key K, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	now := c.clk.Now()
	if e.expired(now) {
		delete(c.entries, key)
		return false
	}
	e.expiresAt = now.Add(ttl)
	return true
}

// Keys returns the unexpired keys as of the call, purging expired entries
// as a side effect. Order is unspecified.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(c.clk.Now())
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// Remove deletes key regardless of its expiry state.
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of unexpired entries, purging expired ones as a
// side effect.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(c.clk.Now())
	return len(c.entries)
}

// purgeLocked removes every entry whose deadline has passed.
// Callers must hold mu.
func (c *Cache[K, V]) purgeLocked(now time.Time) {
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
}

// evictLocked removes the entry with the earliest (expiresAt, seq).
// Callers must hold mu and have purged expired entries first.
func (c *Cache[K, V]) evictLocked() {
	var (
		victim K
		found  bool
		minExp time.Time
		minSeq uint64
	)
	for k, e := range c.entries {
		if !found || e.expiresAt.Before(minExp) || (e.expiresAt.Equal(minExp) && e.seq < minSeq) {
			victim, minExp, minSeq, found = k, e.expiresAt, e.seq, true
		}
	}
	if found {
		delete(c.entries, victim)
	}
}
