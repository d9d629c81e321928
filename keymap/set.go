package keymap

import "iter"

// Set is a set of keys compared by a KeyInfo
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty set using the given key info
func NewSet[K any](info KeyInfo[K]) *Set[K] {
	return &Set[K]{m: New[K, struct{}](info)}
}

// Insert adds key to the set.  It returns whether the key was not already
// present.
func (s *Set[K]) Insert(key K) bool {
	return s.m.Insert(key, struct{}{})
}

// Contains returns whether the set has a key equal to key
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Delete removes key from the set
func (s *Set[K]) Delete(key K) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys in the set
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// All iterates over the keys of the set
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
