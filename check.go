package lfucache

import "fmt"

// check walks every structure and panics on any violation of the dual
// index invariant: entries and the union of all buckets must hold exactly
// the same keys, each linked into the bucket matching its current
// frequency, with minFreq equal to the smallest live bucket. A violation
// is a defect in this package, never a user error. Called from tests.
func (c *Cache[K, V]) check() {
	count := 0
	min := 0
	for f, l := range c.buckets {
		if l.empty() {
			c.bug(fmt.Sprintf("empty bucket %d retained", f))
		}

		n := 0
		for e := l.head.next; e != l.tail; e = e.next {
			if e.prev.next != e || e.next.prev != e {
				c.bug("broken list links")
			}
			if e.frequency != f {
				c.bug(fmt.Sprintf("entry frequency %d in bucket %d", e.frequency, f))
			}
			if indexed, ok := c.entries[e.key]; !ok || indexed != e {
				c.bug("bucket entry missing from key index")
			}
			n++
		}
		if n != l.size {
			c.bug("bucket size counter mismatch")
		}

		count += n
		if min == 0 || f < min {
			min = f
		}
	}

	if count != len(c.entries) {
		c.bug("key index / bucket count mismatch")
	}
	if len(c.buckets) > 0 && c.minFreq != min {
		c.bug(fmt.Sprintf("stale eviction floor: minFreq=%d actual=%d", c.minFreq, min))
	}
	if len(c.entries) > c.capacity {
		c.bug("capacity exceeded")
	}
}

func (c *Cache[K, V]) bug(msg string) {
	panic("lfucache: bug: " + msg)
}
