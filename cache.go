package lfucache

// Default capacity used by DefaultConfig().
const defaultCapacity = 10000

// Config groups capacity and telemetry options.
type Config struct {
	Capacity     int
	StatsEnabled bool
}

// DefaultConfig returns sane defaults for a general-purpose cache.
func DefaultConfig() Config {
	return Config{
		Capacity:     defaultCapacity,
		StatsEnabled: true,
	}
}

// Stats exposes cache telemetry. Buckets counts distinct live access
// frequencies; MinFrequency is the current eviction floor (0 when empty).
type Stats struct {
	Hits         int64
	Misses       int64
	Evictions    int64
	Size         int
	Capacity     int
	HitRatio     float64
	Buckets      int
	MinFrequency int
}

// Cache is an O(1) LFU cache. entries and the union of all buckets always
// hold exactly the same keys, each entry linked into the one bucket that
// matches its current frequency.
type Cache[K comparable, V any] struct {
	capacity int
	entries  map[K]*entry[K, V]      // key index
	buckets  map[int]*freqList[K, V] // frequency -> recency list
	minFreq  int                     // smallest frequency present in buckets

	onEvict      func(K, V)
	statsEnabled bool
	hits         int64
	misses       int64
	evictions    int64
}

// New builds a cache holding at most capacity distinct keys. Capacity 0 is
// legal and makes the cache permanently inert: every Put is a no-op and
// every Get misses.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return NewWithConfig[K, V](Config{Capacity: capacity, StatsEnabled: true})
}

// NewWithEvict builds a cache that calls onEvict for every entry removed
// by capacity eviction (not by Delete or Clear).
func NewWithEvict[K comparable, V any](capacity int, onEvict func(K, V)) *Cache[K, V] {
	c := New[K, V](capacity)
	c.onEvict = onEvict
	return c
}

// NewWithConfig builds a cache from config. Negative capacity is treated
// as zero.
func NewWithConfig[K comparable, V any](config Config) *Cache[K, V] {
	capacity := config.Capacity
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity:     capacity,
		entries:      make(map[K]*entry[K, V], capacity),
		buckets:      make(map[int]*freqList[K, V]),
		minFreq:      1,
		statsEnabled: config.StatsEnabled,
	}
}

// Get returns the value for key and bumps its frequency by one, moving the
// entry to the front of the next bucket. No eviction happens on Get.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c.capacity == 0 {
		c.miss()
		return zero, false
	}

	e, ok := c.entries[key]
	if !ok {
		c.miss()
		return zero, false
	}

	c.touch(e)
	if c.statsEnabled {
		c.hits++
	}
	return e.value, true
}

// Put inserts or overwrites key. An existing key gets its value replaced
// and its frequency bumped by one, exactly like a Get; a write costs the
// same as a read for LFU accounting. A new key at capacity first evicts
// the least recently bumped entry of the minimum-frequency bucket, then
// enters at frequency 1, which unconditionally resets the floor.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity == 0 {
		return
	}

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.touch(e)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evict()
	}

	e := &entry[K, V]{key: key, value: value, frequency: 1}
	c.bucket(1).pushFront(e)
	c.entries[key] = e
	c.minFreq = 1
}

// Peek returns the value for key without touching frequency, recency or
// the hit/miss counters.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	return e.value, true
}

// Contains checks membership without mutating any cache state.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.entries[key]
	return ok
}

// Delete removes key if present. Unlike Get/Put this may rescan live
// bucket frequencies to re-establish the eviction floor, so it is
// O(distinct frequencies), not O(1).
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}

	l := c.buckets[e.frequency]
	l.remove(e)
	if l.empty() {
		delete(c.buckets, e.frequency)
		if c.minFreq == e.frequency {
			c.recomputeFloor()
		}
	}
	delete(c.entries, key)
	return true
}

// Clear empties the cache and resets the floor. Counters survive; Stats()
// reports lifetime totals.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*entry[K, V], c.capacity)
	c.buckets = make(map[int]*freqList[K, V])
	c.minFreq = 1
}

// Len returns the number of live keys.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns a snapshot of live keys in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}

// Stats aggregates counters and computes the hit ratio.
func (c *Cache[K, V]) Stats() Stats {
	stats := Stats{
		Size:     len(c.entries),
		Capacity: c.capacity,
		Buckets:  len(c.buckets),
	}
	if len(c.entries) > 0 {
		stats.MinFrequency = c.minFreq
	}

	if c.statsEnabled {
		stats.Hits = c.hits
		stats.Misses = c.misses
		stats.Evictions = c.evictions

		total := stats.Hits + stats.Misses
		if total > 0 {
			stats.HitRatio = float64(stats.Hits) / float64(total)
		}
	}
	return stats
}

// touch bumps e's frequency by one and moves it to the front of the next
// bucket, dropping the old bucket once only sentinels remain. The floor
// advances by exactly one when its bucket dies: frequencies move in single
// steps, so no intermediate frequency can newly become the minimum.
func (c *Cache[K, V]) touch(e *entry[K, V]) {
	old := e.frequency
	l := c.buckets[old]
	l.remove(e)
	if l.empty() {
		delete(c.buckets, old)
		if c.minFreq == old {
			c.minFreq = old + 1
		}
	}

	e.frequency = old + 1
	c.bucket(e.frequency).pushFront(e)
}

// evict removes the least recently bumped entry of the minimum-frequency
// bucket. The floor is left as-is even when that bucket dies: every caller
// follows up with a frequency-1 insert that resets it.
func (c *Cache[K, V]) evict() {
	l := c.buckets[c.minFreq]
	victim := l.evictBack()
	if victim == nil {
		return
	}

	delete(c.entries, victim.key)
	if l.empty() {
		delete(c.buckets, c.minFreq)
	}
	if c.statsEnabled {
		c.evictions++
	}
	if c.onEvict != nil {
		c.onEvict(victim.key, victim.value)
	}
}

// bucket returns the recency list for freq, creating it lazily.
func (c *Cache[K, V]) bucket(freq int) *freqList[K, V] {
	l, ok := c.buckets[freq]
	if !ok {
		l = newFreqList[K, V]()
		c.buckets[freq] = l
	}
	return l
}

// recomputeFloor rescans live bucket frequencies after an arbitrary
// removal. An empty cache parks the floor at 1, where the next fresh
// insert lands anyway.
func (c *Cache[K, V]) recomputeFloor() {
	if len(c.buckets) == 0 {
		c.minFreq = 1
		return
	}

	min := 0
	for f := range c.buckets {
		if min == 0 || f < min {
			min = f
		}
	}
	c.minFreq = min
}

func (c *Cache[K, V]) miss() {
	if c.statsEnabled {
		c.misses++
	}
}
