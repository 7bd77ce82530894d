package hashtable

// FromMap builds a table holding the pairs of m. The capacity defaults to
// len(m) and WithCapacity overrides it, so an empty map without an explicit
// capacity fails with ErrInvalidCapacity.
func FromMap[K comparable, V any](m map[K]V, opts ...Option[K, V]) (*HashTable[K, V], error) {
	t, err := New(len(m), opts...)
	if err != nil {
		return nil, err
	}

	for k, v := range m {
		t.Set(k, v)
	}

	return t, nil
}

// FromPairs is like FromMap but inserts in slice order,
// so the last pair wins for a repeated key.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) (*HashTable[K, V], error) {
	t, err := New(len(pairs), opts...)
	if err != nil {
		return nil, err
	}

	for _, p := range pairs {
		t.Set(p.Key, p.Value)
	}

	return t, nil
}
