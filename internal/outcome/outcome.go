// Package outcome provides weighted discrete random selection.
// Distributions are plain maps walked in ascending key order, so a given
// sequence of random draws always picks the same outcomes.
package outcome

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDivideByZero is returned when weights sum to zero and cannot be normalized.
	ErrDivideByZero = errors.New("outcome: weights sum to zero")

	// ErrNegativeWeight is returned when a weight is below zero.
	ErrNegativeWeight = errors.New("outcome: negative weight")
)

// RandomSource yields uniform values in [0, 1).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Normalize divides every weight by the total so the result sums to 1.
func Normalize[K cmp.Ordered](weights map[K]float64) (map[K]float64, error) {
	total := 0.0
	for k, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: %v=%v", ErrNegativeWeight, k, w)
		}
		total += w
	}
	if total == 0 {
		return nil, ErrDivideByZero
	}

	dist := make(map[K]float64, len(weights))
	for k, w := range weights {
		dist[k] = w / total
	}
	return dist, nil
}

// Sample draws one value from rng and returns the first key whose running
// probability sum exceeds it. Rounding can leave the draw above the final sum;
// the last key is returned in that case.
// Panics if dist is empty.
func Sample[K cmp.Ordered](dist map[K]float64, rng RandomSource) K {
	keys := Keys(dist)
	if len(keys) == 0 {
		panic("outcome: sample from empty distribution")
	}

	r := rng.Float64()
	cumulative := 0.0
	for _, k := range keys {
		cumulative += dist[k]
		if r < cumulative {
			return k
		}
	}
	return keys[len(keys)-1]
}
