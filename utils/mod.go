package utils

import "golang.org/x/exp/constraints"

// ArgMax returns the index of the first maximum in values, or -1 when empty.
func ArgMax[T constraints.Ordered](values []T) int {
	best := -1
	for i, v := range values {
		if best == -1 || v > values[best] {
			best = i
		}
	}
	return best
}
