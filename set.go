package hashtable

import "iter"

// Set is a set of keys on top of HashTable. It shares the table's probing,
// tombstone and growth behaviour and doesn't store values.
type Set[K comparable] struct {
	table *HashTable[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) (*Set[K], error) {
	t, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}

	return &Set[K]{table: t}, nil
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Put(key K) bool {
	if s.table.Contains(key) {
		return false
	}

	s.table.Set(key, struct{}{})
	return true
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.table.Contains(key)
}

// Deletes a key from the set. Returns whether the key was present.
func (s *Set[K]) Delete(key K) bool {
	return s.table.Delete(key) == nil
}

func (s *Set[K]) Len() int {
	return s.table.Len()
}

func (s *Set[K]) Capacity() int {
	return s.table.Capacity()
}

func (s *Set[K]) All() iter.Seq[K] {
	return s.table.Iter()
}

func (s *Set[K]) Reset() {
	s.table.Reset()
}

// Equal reports whether both sets hold the same keys.
// Nil sets are equal only to nil.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s == nil || other == nil {
		return s == other
	}

	return Equal(s.table, other.table)
}
