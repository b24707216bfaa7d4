// SPDX-License-Identifier: Apache-2.0

package memkit

const (
	initialBuckets = 16
	// rehash once keys reach loadFactor times the bucket count
	loadFactor = 3
	// bucket count per stored key after a rehash
	rehashGrowth = 4
)

// chainNode links one stored key into its bucket. Nodes live in arena
// blocks and remember their own handle so a rehash can reclaim them for
// reuse.
type chainNode struct {
	next  *chainNode
	self  Handle
	index int
}

// Map associates string keys with values of type V. Keys and values live
// in two parallel arena-backed vectors, always equal in length; collisions
// resolve through per-bucket chains of index nodes. The zero Map is empty
// and ready to use.
//
// All storage comes from the arena passed to Set, which must be the same
// arena for the lifetime of the map.
type Map[V any] struct {
	values  Vec[V]
	keys    Vec[string]
	buckets Vec[*chainNode]
}

// Len returns the number of stored keys.
func (m *Map[V]) Len() int { return m.keys.Len() }

// NumBuckets returns the current bucket-table size.
func (m *Map[V]) NumBuckets() int { return m.buckets.Len() }

// Get returns a pointer to the value stored for key. The pointer stays
// valid until the next Set on the map.
func (m *Map[V]) Get(key string) (*V, bool) {
	i, ok := m.lookup(key)
	if !ok {
		return nil, false
	}
	return &m.values.Items()[i], true
}

// Set stores value under key. An existing key is overwritten in place; a
// new key may first materialize the bucket table or trigger a rehash.
func (m *Map[V]) Set(a *Arena, key string, value V) {
	if i, ok := m.lookup(key); ok {
		m.values.Set(i, value)
		return
	}
	m.recordNewKey(a, &m.buckets, key, m.keys.Len())
	m.values.Append(a, value)
	m.keys.Append(a, a.CloneString(key))
	if m.values.Len() != m.keys.Len() {
		panic("memkit: key/value count mismatch")
	}
}

// lookup walks the bucket chain for key and returns the parallel-vector
// index on an exact string match.
func (m *Map[V]) lookup(key string) (int, bool) {
	if m.buckets.Len() == 0 {
		return 0, false
	}
	i := Hash(key, m.buckets.Len())
	for n := m.buckets.At(i); n != nil; n = n.next {
		if n.index >= m.keys.Len() {
			panic("memkit: bucket chain references missing key")
		}
		if m.keys.At(n.index) == key {
			return n.index, true
		}
	}
	return 0, false
}

// recordNewKey links index into the bucket chain for key, first growing
// the table if required. buckets is a parameter rather than m.buckets so
// rehash can build the replacement table through the same path.
func (m *Map[V]) recordNewKey(a *Arena, buckets *Vec[*chainNode], key string, index int) {
	if buckets.Cap() == 0 {
		for i := 0; i < initialBuckets; i++ {
			buckets.Append(a, nil)
		}
	} else if needsRehash(index, buckets.Len()) {
		m.rehash(a)
	}
	i := Hash(key, buckets.Len())
	h, n := Allocate[chainNode](a)
	n.next = buckets.At(i)
	n.self = h
	n.index = index
	buckets.Set(i, n)
}

func needsRehash(numKeys, numBuckets int) bool {
	return numKeys >= numBuckets*loadFactor
}

// rehash rebuilds the bucket table at rehashGrowth times the stored key
// count, re-inserting every key by its existing index (key strings are not
// copied again), then reclaims every old chain node and the old table's
// backing block.
func (m *Map[V]) rehash(a *Arena) {
	old := m.buckets

	var fresh Vec[*chainNode]
	for i := 0; i < m.keys.Len()*rehashGrowth; i++ {
		fresh.Append(a, nil)
	}
	for i := 0; i < m.keys.Len(); i++ {
		m.recordNewKey(a, &fresh, m.keys.At(i), i)
	}

	for i := 0; i < old.Len(); i++ {
		for n := old.At(i); n != nil; {
			next := n.next
			a.Reclaim(n.self)
			n = next
		}
	}
	a.Reclaim(old.h)

	m.buckets = fresh
}
