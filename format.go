package hashtable

import (
	"fmt"
	"strings"
)

// String formats the table like a mapping literal, e.g. {"a": 1, "b": 2}.
// Pair order follows the slot layout and must not be relied upon.
func (t *HashTable[K, V]) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	for k, v := range t.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&b, "%#v: %#v", k, v)
	}
	b.WriteByte('}')

	return b.String()
}

// GoString is used by the %#v verb.
func (t *HashTable[K, V]) GoString() string {
	return "hashtable.FromMap(" + t.String() + ")"
}
