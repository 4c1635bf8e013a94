package lfucache

// entry is one cached key/value pair plus its LFU bookkeeping. The entry's
// address doubles as its position handle inside the frequency list that
// currently holds it, so removal never searches.
type entry[K comparable, V any] struct {
	key       K
	value     V
	frequency int
	prev      *entry[K, V]
	next      *entry[K, V]
}

// freqList holds every entry currently sharing one access count, most
// recently bumped at the front. Sentinel head/tail nodes bound the list so
// splices never branch on nil neighbors.
type freqList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	size int
}

func newFreqList[K comparable, V any]() *freqList[K, V] {
	l := &freqList[K, V]{
		head: &entry[K, V]{},
		tail: &entry[K, V]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront inserts e between the head sentinel and the first real entry.
func (l *freqList[K, V]) pushFront(e *entry[K, V]) {
	first := l.head.next
	l.head.next = e
	e.prev = l.head
	e.next = first
	first.prev = e
	l.size++
}

// remove unlinks e by bridging its neighbors. e must currently be linked
// into l; removing the same entry twice is a caller bug.
func (l *freqList[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	l.size--
}

// evictBack unlinks and returns the least recently bumped entry, or nil
// when only the sentinels remain.
func (l *freqList[K, V]) evictBack() *entry[K, V] {
	last := l.tail.prev
	if last == l.head {
		return nil
	}
	l.remove(last)
	return last
}

// empty reports whether the list holds no real entries.
func (l *freqList[K, V]) empty() bool {
	return l.size == 0
}
