// Package keymap provides an open-addressed hash table whose hashing and
// equality are supplied by a KeyInfo rather than by Go's built-in comparison.
// This allows keys such as import paths to be compared semantically (ignoring
// source locations) instead of structurally.
package keymap

import (
	"iter"

	"chaimport/logging"
)

// KeyInfo describes how a key type participates in a Map.  EmptyKey and
// TombstoneKey are two distinct reserved values that no caller ever inserts;
// Hash must agree with Equal.
type KeyInfo[K any] interface {
	EmptyKey() K
	TombstoneKey() K
	Hash(key K) uint64
	Equal(a, b K) bool
}

// slotState is the occupancy of a single table slot
type slotState uint8

// Enumeration of slot states.
const (
	slotEmpty slotState = iota
	slotTombstone
	slotFull
)

type slot[K, V any] struct {
	state slotState
	key   K
	value V
}

// minCapacity is the number of slots allocated on the first insertion
const minCapacity = 8

// Map is an open-addressed hash table using quadratic probing over a power of
// two number of slots.  The zero value is not usable: create maps with New.
// Map is not safe for concurrent mutation.
type Map[K, V any] struct {
	info  KeyInfo[K]
	slots []slot[K, V]

	// count is the number of full slots
	count int

	// tombstones is the number of slots vacated by deletion
	tombstones int
}

// New creates an empty map using the given key info
func New[K, V any](info KeyInfo[K]) *Map[K, V] {
	return &Map[K, V]{info: info}
}

// NewWithCapacity creates an empty map that can hold n entries without growing
func NewWithCapacity[K, V any](info KeyInfo[K], n int) *Map[K, V] {
	m := New[K, V](info)
	if n > 0 {
		m.allocate(capacityFor(n))
	}

	return m
}

// Len returns the number of entries in the map
func (m *Map[K, V]) Len() int {
	return m.count
}

// Get returns the value stored for key
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.find(key); ok {
		return m.slots[i].value, true
	}

	var zero V
	return zero, false
}

// Lookup returns the key actually stored in the map that is equal to key,
// along with its value.  This is useful when equal keys carry data that
// equality ignores.
func (m *Map[K, V]) Lookup(key K) (K, V, bool) {
	if i, ok := m.find(key); ok {
		return m.slots[i].key, m.slots[i].value, true
	}

	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

// Contains returns whether the map has an entry for key
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Insert adds key with value if the map has no entry for it.  It returns
// whether the entry was inserted; an existing entry is never overwritten.
func (m *Map[K, V]) Insert(key K, value V) bool {
	m.assertNotSentinel(key)

	if _, ok := m.find(key); ok {
		return false
	}

	m.insertNew(key, value)
	return true
}

// Put sets the value for key, inserting it if necessary.  If an equal key is
// already present, the stored key is kept and only the value is replaced.
func (m *Map[K, V]) Put(key K, value V) {
	m.assertNotSentinel(key)

	if i, ok := m.find(key); ok {
		m.slots[i].value = value
		return
	}

	m.insertNew(key, value)
}

// Delete removes the entry for key.  It returns whether there was one.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.find(key)
	if !ok {
		return false
	}

	var zero V
	m.slots[i] = slot[K, V]{state: slotTombstone, key: m.info.TombstoneKey(), value: zero}
	m.count--
	m.tombstones++
	return true
}

// Clear removes every entry but keeps the allocated slots
func (m *Map[K, V]) Clear() {
	empty := m.info.EmptyKey()
	for i := range m.slots {
		m.slots[i] = slot[K, V]{key: empty}
	}

	m.count = 0
	m.tombstones = 0
}

// All iterates over the entries of the map in slot order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			if m.slots[i].state == slotFull && !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Keys returns the keys of the map in slot order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// -----------------------------------------------------------------------------

// find returns the index of the slot holding key
func (m *Map[K, V]) find(key K) (int, bool) {
	if len(m.slots) == 0 {
		return 0, false
	}

	mask := len(m.slots) - 1
	bucket := int(m.info.Hash(key)) & mask
	for probe := 1; ; probe++ {
		s := &m.slots[bucket]
		switch s.state {
		case slotEmpty:
			return 0, false
		case slotFull:
			if m.info.Equal(s.key, key) {
				return bucket, true
			}
		}

		bucket = (bucket + probe) & mask
	}
}

// insertNew places a key known to be absent into the table, growing it first
// if necessary.  Tombstones along the probe sequence are reused.
func (m *Map[K, V]) insertNew(key K, value V) {
	// keep the load factor below 3/4 and at least 1/8 of the slots empty so
	// that probing always terminates
	n := len(m.slots)
	if (m.count+1)*4 >= n*3 {
		m.rehash(max(n*2, minCapacity))
	} else if n-(m.count+m.tombstones+1) <= n/8 {
		m.rehash(n)
	}

	mask := len(m.slots) - 1
	bucket := int(m.info.Hash(key)) & mask
	for probe := 1; ; probe++ {
		s := &m.slots[bucket]
		if s.state != slotFull {
			if s.state == slotTombstone {
				m.tombstones--
			}

			*s = slot[K, V]{state: slotFull, key: key, value: value}
			m.count++
			return
		}

		bucket = (bucket + probe) & mask
	}
}

// rehash moves every entry into a fresh table of the given size
func (m *Map[K, V]) rehash(size int) {
	old := m.slots
	m.allocate(size)
	m.count = 0
	m.tombstones = 0

	for i := range old {
		if old[i].state == slotFull {
			m.insertNew(old[i].key, old[i].value)
		}
	}
}

// allocate replaces the slots with size empty slots
func (m *Map[K, V]) allocate(size int) {
	m.slots = make([]slot[K, V], size)

	empty := m.info.EmptyKey()
	for i := range m.slots {
		m.slots[i].key = empty
	}
}

// assertNotSentinel checks a key about to be inserted is not reserved
func (m *Map[K, V]) assertNotSentinel(key K) {
	logging.Assert(
		!m.info.Equal(key, m.info.EmptyKey()) && !m.info.Equal(key, m.info.TombstoneKey()),
		"reserved sentinel key inserted into hash table",
	)
}

// capacityFor returns the power of two number of slots that can hold n
// entries under the maximum load factor
func capacityFor(n int) int {
	size := minCapacity
	for n*4 >= size*3 {
		size *= 2
	}

	return size
}
