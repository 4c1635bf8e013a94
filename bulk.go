package lfucache

// GetBulk looks up keys in order. hits[i] reports whether values[i] is
// valid; every hit bumps that key's frequency like a plain Get.
func (c *Cache[K, V]) GetBulk(keys []K) ([]V, []bool) {
	values := make([]V, len(keys))
	hits := make([]bool, len(keys))
	for i, key := range keys {
		values[i], hits[i] = c.Get(key)
	}
	return values, hits
}

// PutBulk inserts every pair through the normal Put path. When items
// exceeds free capacity, map iteration order decides which keys survive.
func (c *Cache[K, V]) PutBulk(items map[K]V) {
	for key, value := range items {
		c.Put(key, value)
	}
}
