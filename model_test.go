package hashtable

import (
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/stretchr/testify/require"
)

// checkModel compares the table against a reference map.
func checkModel(t *testing.T, ht *HashTable[int, int], model *hashmap.Map, keyRange int) {
	t.Helper()

	require.Equal(t, model.Size(), ht.Len())
	require.Len(t, ht.Pairs(), model.Size())

	for k := range keyRange {
		want, found := model.Get(k)
		got, ok := ht.Lookup(k)

		require.Equal(t, found, ok, "key %d", k)
		if found {
			require.Equal(t, want, got, "key %d", k)
		}
	}
}

func TestHashTable_Model(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		hashFunc HashFunc[int]
	}{
		{"default hash", 1, nil},
		{"four buckets", 2, func(k int) uint64 { return uint64(k % 4) }},
		{"all collide", 3, func(k int) uint64 { return 7 }},
	}

	const keyRange = 64

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option[int, int]
			if tt.hashFunc != nil {
				opts = append(opts, WithHashFunc[int, int](tt.hashFunc))
			}

			ht := newTable(t, tt.capacity, opts...)
			model := hashmap.New()
			rnd := rand.New(rand.NewPCG(1, uint64(tt.capacity)))

			lastCapacity := ht.Capacity()
			for range 2000 {
				k := rnd.IntN(keyRange)

				switch op := rnd.IntN(10); {
				case op < 6:
					v := rnd.Int()
					ht.Set(k, v)
					model.Put(k, v)

					got, err := ht.Get(k)
					require.NoError(t, err)
					require.Equal(t, v, got)
				default:
					_, found := model.Get(k)
					err := ht.Delete(k)
					if found {
						require.NoError(t, err)
						model.Remove(k)
					} else {
						require.ErrorIs(t, err, ErrKeyNotFound)
					}
					require.False(t, ht.Contains(k))
				}

				// Capacity only ever doubles.
				if c := ht.Capacity(); c != lastCapacity {
					require.Equal(t, lastCapacity*2, c)
					lastCapacity = c
				}

				checkModel(t, ht, model, keyRange)
			}
		})
	}
}

func TestHashTable_UpdateIsolation(t *testing.T) {
	ht := newTable[int, int](t, 4)
	for i := range 20 {
		ht.Set(i, i)
	}

	before := ht.Clone()
	ht.Set(7, 700)

	for i := range 20 {
		want := i
		if i == 7 {
			want = 700
		}

		require.Equal(t, want, ht.GetOr(i, -1))
	}

	require.Equal(t, before.Len(), ht.Len())
	require.False(t, Equal(before, ht))
}
