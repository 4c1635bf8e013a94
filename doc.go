// Package lfucache provides a fixed-capacity in-memory cache that evicts
// the least-frequently-used entry, breaking ties by least-recent use within
// the same access count. Get, Put and capacity eviction all run in O(1)
// amortized time: a key index, per-frequency recency lists and a running
// minimum-frequency floor are kept in lockstep so no operation ever scans.
//
// The cache is not safe for concurrent use. Get mutates frequency state,
// so a concurrent adaptation needs one exclusive critical section per
// operation around the whole structure; there is no finer-grained split
// that keeps the O(1) bounds.
package lfucache
