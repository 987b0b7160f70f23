// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// categorical.go — weighted-categorical sampling primitive.
//
// Purpose:
//   - Replace ad-hoc threshold ladders (u < 0.60 ... u < 0.90 ...) with a
//     cumulative-distribution table built once and searched per draw.
//   - The table is tiny (three subtypes today), so a linear scan beats a
//     binary search; the scan order matches the declared subtype order.
//
// Determinism:
//   - One rng.Float64() per pick; identical seeds yield identical picks.

package synth

import (
	"fmt"
	"math"
	"math/rand"
)

// categorical draws indexes 0..n-1 with fixed probabilities via a
// cumulative table.
type categorical struct {
	// cum[i] is the cumulative probability of indexes 0..i; cum[n-1] is
	// forced to exactly 1 so a draw of 0.999... cannot fall off the end.
	cum []float64
}

// newCategorical builds the cumulative table from positive weights that
// sum to 1 within weightSumTolerance.
// Complexity: O(n) time, O(n) space.
func newCategorical(weights []float64) (categorical, error) {
	if len(weights) == 0 {
		return categorical{}, fmt.Errorf("no weights")
	}

	cum := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		if w <= 0 {
			return categorical{}, fmt.Errorf("weight %d is %g, want > 0", i, w)
		}
		sum += w
		cum[i] = sum
	}
	if math.Abs(sum-unitHi) > weightSumTolerance {
		return categorical{}, fmt.Errorf("weights sum to %g, want 1", sum)
	}

	// Pin the last entry so floating-point drift can never lose a draw.
	cum[len(cum)-1] = unitHi

	return categorical{cum: cum}, nil
}

// pick draws one index: u ~ U[0,1), return the first i with u < cum[i].
// Complexity: O(n) with n = number of categories (tiny).
func (c categorical) pick(rng *rand.Rand) int {
	u := rng.Float64()
	for i, edge := range c.cum {
		if u < edge {
			return i
		}
	}

	// Unreachable: cum ends at exactly 1 and u < 1.
	return len(c.cum) - 1
}
