package hashtable

import "iter"

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// All iterates over the present pairs in slot order.
// Mutating the table while iterating is allowed; entries added during the
// walk may or may not be visited.
func (t *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		slots := t.slots

		for i := range slots {
			s := &slots[i]
			if s.state != slotFull {
				continue
			}

			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Iter iterates over the present keys.
func (t *HashTable[K, V]) Iter() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Pairs returns a fresh slice of the present pairs. Order is unspecified.
func (t *HashTable[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.size)
	for k, v := range t.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}

func (t *HashTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}

	return keys
}

func (t *HashTable[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for _, v := range t.All() {
		values = append(values, v)
	}

	return values
}

// Clone returns an independent table with the same capacity, pairs,
// hash function and logger.
func (t *HashTable[K, V]) Clone() *HashTable[K, V] {
	c := &HashTable[K, V]{
		slots:    make([]slot[K, V], len(t.slots)),
		capacity: len(t.slots),
		hashFunc: t.hashFunc,
		logger:   t.logger,
	}

	for k, v := range t.All() {
		c.Set(k, v)
	}

	return c
}

// Equal reports whether two tables hold the same set of pairs.
// Capacity, layout and insertion order are ignored. A table is always equal
// to itself, even when it holds keys that are not equal to themselves (NaN).
//
// Values are compared with ==, so like the builtin operator Equal panics when
// an interface-typed V holds an uncomparable dynamic value such as a slice.
// Use EqualFunc for those.
func Equal[K, V comparable](a, b *HashTable[K, V]) bool {
	if a == b {
		return true
	}

	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal, but compares values using eq.
func EqualFunc[K comparable, V1, V2 any](a *HashTable[K, V1], b *HashTable[K, V2], eq func(V1, V2) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Len() != b.Len() {
		return false
	}

	for k, v1 := range a.All() {
		v2, ok := b.Lookup(k)
		if !ok || !eq(v1, v2) {
			return false
		}
	}

	return true
}
