package lfucache

import (
	"bytes"
	"encoding/binary"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
	cbor "github.com/fxamacker/cbor/v2"
)

// Item is a wire-friendly export of one entry. It carries the access count
// so a restored cache evicts in the same order as the dumped one.
type Item[K comparable, V any] struct {
	Key       K   `cbor:"k"`
	Val       V   `cbor:"v"`
	Frequency int `cbor:"f"`
}

// Snapshot framing: magic, one-byte format version, xxhash64 of the CBOR
// payload. The checksum is verified before any decoding happens.
const (
	snapshotVersion = 1
	headerLen       = 4 + 1 + 8
)

var snapshotMagic = [4]byte{'l', 'f', 'u', 's'}

// Dump exports every entry ordered from most to least evictable: ascending
// frequency, least recently bumped first within each bucket. Replaying the
// slice through Import on an empty cache rebuilds identical state.
func (c *Cache[K, V]) Dump() []Item[K, V] {
	freqs := make([]int, 0, len(c.buckets))
	for f := range c.buckets {
		freqs = append(freqs, f)
	}
	sort.Ints(freqs)

	out := make([]Item[K, V], 0, len(c.entries))
	for _, f := range freqs {
		l := c.buckets[f]
		for e := l.tail.prev; e != l.head; e = e.prev {
			out = append(out, Item[K, V]{Key: e.key, Val: e.value, Frequency: e.frequency})
		}
	}
	return out
}

// Import replays dumped items. Existing keys are overwritten at the
// recorded frequency; when the cache is full the normal LFU eviction runs
// first, so importing more items than capacity keeps the most retainable
// tail of the dump. Intended for warm starts, not hot paths: the eviction
// floor is re-derived after every item.
func (c *Cache[K, V]) Import(items []Item[K, V]) {
	if c.capacity == 0 {
		return
	}

	for _, it := range items {
		freq := it.Frequency
		if freq < 1 {
			freq = 1
		}

		if e, ok := c.entries[it.Key]; ok {
			l := c.buckets[e.frequency]
			l.remove(e)
			if l.empty() {
				delete(c.buckets, e.frequency)
			}
			delete(c.entries, it.Key)
		} else if len(c.entries) >= c.capacity {
			c.evict()
		}

		e := &entry[K, V]{key: it.Key, value: it.Val, frequency: freq}
		c.bucket(freq).pushFront(e)
		c.entries[it.Key] = e
		c.recomputeFloor()
	}
}

// Snapshot serializes the whole cache to a self-checking byte blob.
func (c *Cache[K, V]) Snapshot() ([]byte, error) {
	payload, err := cbor.Marshal(c.Dump())
	if err != nil {
		return nil, wrapError("snapshot", err)
	}

	buf := make([]byte, headerLen+len(payload))
	copy(buf[0:4], snapshotMagic[:])
	buf[4] = snapshotVersion
	binary.BigEndian.PutUint64(buf[5:headerLen], xxhash.Sum64(payload))
	copy(buf[headerLen:], payload)
	return buf, nil
}

// Restore replaces the cache contents with a Snapshot() blob after
// verifying framing, version and checksum. On any error the cache is left
// untouched.
func (c *Cache[K, V]) Restore(data []byte) error {
	if len(data) < headerLen || !bytes.Equal(data[0:4], snapshotMagic[:]) {
		return wrapError("restore", ErrSnapshotFormat)
	}
	if data[4] != snapshotVersion {
		return wrapError("restore", ErrSnapshotVersion)
	}

	payload := data[headerLen:]
	if binary.BigEndian.Uint64(data[5:headerLen]) != xxhash.Sum64(payload) {
		return wrapError("restore", ErrSnapshotChecksum)
	}

	var items []Item[K, V]
	if err := cbor.Unmarshal(payload, &items); err != nil {
		return wrapError("restore", err)
	}

	c.Clear()
	c.Import(items)
	return nil
}
