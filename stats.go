package hashtable

type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
}

// Stats walks the backing array and reports its occupancy.
func (t *HashTable[K, V]) Stats() Stats {
	stats := Stats{
		Size:     t.size,
		Capacity: len(t.slots),
	}

	for i := range t.slots {
		if t.slots[i].state == slotDeleted {
			stats.Tombstones++
		}
	}

	stats.TombstonesCapacityRatio = float32(stats.Tombstones) / float32(stats.Capacity)
	if stats.Size > 0 {
		stats.TombstonesSizeRatio = float32(stats.Tombstones) / float32(stats.Size)
	}

	return stats
}
