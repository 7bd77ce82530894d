package hashtable

import "iter"

// probeSeq yields the linear probe sequence for a hash over capacity slots:
// hash mod capacity first, then +1 with wraparound, every index exactly once.
func probeSeq(hash uint64, capacity int) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := uint64(capacity)
		idx := hash % n

		for range capacity {
			if !yield(int(idx)) {
				return
			}

			idx++
			if idx == n {
				idx = 0
			}
		}
	}
}

// place writes key and value into slots, walking the probe sequence of hash.
// Tombstones are never reused here: the first empty slot or the slot already
// holding key receives the write. Returns whether a new entry was created,
// and ok=false if the whole cycle was walked without finding a place.
func place[K comparable, V any](slots []slot[K, V], hash uint64, key K, value V) (added, ok bool) {
	for idx := range probeSeq(hash, len(slots)) {
		s := &slots[idx]

		switch s.state {
		case slotEmpty:
			*s = slot[K, V]{state: slotFull, key: key, value: value}
			return true, true
		case slotFull:
			if s.key == key {
				s.value = value
				return false, true
			}
		}
	}

	return false, false
}
