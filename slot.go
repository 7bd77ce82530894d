package hashtable

type slotState uint8

const (
	// Never occupied. Terminates every probe.
	slotEmpty slotState = iota
	// Previously occupied. Probes walk past it.
	slotDeleted
	slotFull
)

// slot is one position of the backing array. key and value are meaningful
// only when state is slotFull.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}
