package common

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of a map in sorted order. Generation output must
// not depend on map iteration order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
