package container

// defaultBuckets is the bucket count used when a caller doesn't specify
// one.
const defaultBuckets = 16

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Map is an open-chaining, string-keyed hash map. Keys are owned (a put
// copies the key string, which in Go is already immutable, so no
// explicit duplication is needed); values are stored by value. Hashing
// is djb2 over the key bytes, so bucket placement is reproducible
// across runs for the same key set.
type Map[V any] struct {
	buckets []*entry[V]
	count   int
}

// NewMap creates a map with the given initial bucket count. A
// non-positive count falls back to the default.
func NewMap[V any](buckets int) *Map[V] {
	if buckets <= 0 {
		buckets = defaultBuckets
	}
	return &Map[V]{buckets: make([]*entry[V], buckets)}
}

// djb2 hashes the key bytes with the classic h = h*33 + b recurrence.
func djb2(s string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint64(s[i])
	}
	return h
}

func (m *Map[V]) bucketIndex(key string) int {
	return int(djb2(key) % uint64(len(m.buckets)))
}

// Put inserts key->value, updating the value in place if key already
// exists. Returns true if this was a fresh insert (not an update).
func (m *Map[V]) Put(key string, value V) bool {
	if m.count >= len(m.buckets)*4 {
		m.rehash(len(m.buckets) * 2)
	}
	idx := m.bucketIndex(key)
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return false
		}
	}
	m.buckets[idx] = &entry[V]{key: key, value: value, next: m.buckets[idx]}
	m.count++
	return true
}

// Get looks up a key without transferring ownership of the stored value.
func (m *Map[V]) Get(key string) (V, bool) {
	idx := m.bucketIndex(key)
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key if present, reporting whether anything was removed.
func (m *Map[V]) Remove(key string) bool {
	idx := m.bucketIndex(key)
	var prev *entry[V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			m.count--
			return true
		}
		prev = e
	}
	return false
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	return m.count
}

// rehash reallocates the bucket array and re-inserts every entry,
// preserving djb2-derived placement under the new bucket count.
func (m *Map[V]) rehash(newBucketCount int) {
	old := m.buckets
	m.buckets = make([]*entry[V], newBucketCount)
	m.count = 0
	for _, head := range old {
		for e := head; e != nil; e = e.next {
			m.Put(e.key, e.value)
		}
	}
}

// ForEach visits every entry. Order is bucket order, not insertion
// order; callers needing deterministic output should sort by key.
func (m *Map[V]) ForEach(fn func(key string, value V)) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.key, e.value)
		}
	}
}

// Keys returns all keys in bucket order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.count)
	m.ForEach(func(k string, _ V) { keys = append(keys, k) })
	return keys
}
