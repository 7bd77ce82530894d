package hashtable

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash based hash function with a fresh random seed.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	return MakeSeededHashFunc[K](maphash.MakeSeed())
}

// MakeSeededHashFunc is MakeDefaultHashFunc with a caller-provided seed,
// so two tables can share a layout.
func MakeSeededHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString hashes string keys with xxhash. Unlike the default hash it is
// not seeded, so the layout is the same across processes.
func XXHashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
