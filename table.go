package hashtable

import (
	"fmt"
	"log/slog"
)

const DefaultCapacity = 8

// HashTable is a map-like data structure using open addressing with linear
// probing over a single backing array. Deleted entries leave tombstones
// behind, so probe chains of other keys stay intact. When an insert walks
// the whole probe cycle without finding a free slot, the table doubles its
// capacity and rehashes every present entry; it never shrinks.
//
// HashTable is not safe for concurrent use.
type HashTable[K comparable, V any] struct {
	slots []slot[K, V]
	size  int

	// Requested capacity, consumed by New.
	capacity int

	hashFunc HashFunc[K]
	logger   *slog.Logger
}

type Option[K comparable, V any] func(t *HashTable[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *HashTable[K, V]) {
		t.hashFunc = f
	}
}

// Override the initial capacity. Mostly useful with FromMap and FromPairs.
// Zero leaves the capacity passed to the constructor in place.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *HashTable[K, V]) {
		if capacity != 0 {
			t.capacity = capacity
		}
	}
}

// Attach a logger. Resizes are reported at debug level.
func WithLogger[K comparable, V any](logger *slog.Logger) Option[K, V] {
	return func(t *HashTable[K, V]) {
		t.logger = logger
	}
}

// Returns a new hash table with the given number of slots.
// Fails with ErrInvalidCapacity if the capacity is less than 1.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*HashTable[K, V], error) {
	t := &HashTable[K, V]{capacity: capacity}

	for _, opt := range opts {
		opt(t)
	}

	if t.capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, t.capacity)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}

	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	t.slots = make([]slot[K, V], t.capacity)

	return t, nil
}

// find returns the index of the slot holding key, or -1.
func (t *HashTable[K, V]) find(key K) int {
	for idx := range probeSeq(t.hashFunc(key), len(t.slots)) {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotFull:
			if s.key == key {
				return idx
			}
		}
	}

	return -1
}

// Get returns the value stored under key, or a *KeyError.
func (t *HashTable[K, V]) Get(key K) (V, error) {
	v, ok := t.Lookup(key)
	if !ok {
		return v, &KeyError{Key: key}
	}

	return v, nil
}

func (t *HashTable[K, V]) Lookup(key K) (V, bool) {
	if idx := t.find(key); idx >= 0 {
		return t.slots[idx].value, true
	}

	var zero V
	return zero, false
}

// GetOr returns the value stored under key, or def if the key is absent.
func (t *HashTable[K, V]) GetOr(key K, def V) V {
	if v, ok := t.Lookup(key); ok {
		return v
	}

	return def
}

func (t *HashTable[K, V]) Contains(key K) bool {
	return t.find(key) >= 0
}

// Set inserts key or overwrites its value. Grows the table if needed.
func (t *HashTable[K, V]) Set(key K, value V) {
	h := t.hashFunc(key)

	for {
		added, ok := place(t.slots, h, key, value)
		if ok {
			if added {
				t.size++
			}

			return
		}

		t.grow()
	}
}

// grow doubles the capacity and re-inserts every present entry.
// Tombstones are not carried over.
func (t *HashTable[K, V]) grow() {
	slots := make([]slot[K, V], len(t.slots)*2)

	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotFull {
			continue
		}

		place(slots, t.hashFunc(s.key), s.key, s.value)
	}

	t.logger.Debug("hashtable resized",
		slog.Int("from", len(t.slots)),
		slog.Int("to", len(slots)),
		slog.Int("size", t.size),
	)

	t.slots = slots
}

// Delete removes key from the table, leaving a tombstone in its slot.
// Returns a *KeyError if the key is absent.
func (t *HashTable[K, V]) Delete(key K) error {
	idx := t.find(key)
	if idx < 0 {
		return &KeyError{Key: key}
	}

	// Zero key and value so they can be collected.
	t.slots[idx] = slot[K, V]{state: slotDeleted}
	t.size--

	return nil
}

// Number of present entries.
func (t *HashTable[K, V]) Len() int {
	return t.size
}

// Number of slots in the backing array.
func (t *HashTable[K, V]) Capacity() int {
	return len(t.slots)
}

// Reset drops every entry and tombstone. The capacity is retained.
func (t *HashTable[K, V]) Reset() {
	clear(t.slots)
	t.size = 0
}
