// Double-bridge perturbation used between restarts.
package tsp

import "math/rand"

// doubleBridge applies the classic 4-opt double-bridge kick to a tour
// sequence: three random cuts 0 < p < q < r < n split the sequence into
// A|B|C|D, and the result is A C B D. The move preserves the orientation
// of every segment (valid for asymmetric instances) and is not reachable
// by any series of 2-opt moves, which is what lets restarts escape 2-opt
// local optima.
//
// Requires n ≥ 4; shorter sequences are returned as an unchanged copy.
//
// Complexity: O(n) time and space.
func doubleBridge(seq []int, rng *rand.Rand) []int {
	var (
		n   = len(seq)
		out = make([]int, 0, n)
	)
	if n < 4 {
		return append(out, seq...)
	}

	// Three distinct interior cuts, sorted by construction.
	var (
		p = 1 + rng.Intn(n-3)
		q = p + 1 + rng.Intn(n-p-2)
		r = q + 1 + rng.Intn(n-q-1)
	)

	out = append(out, seq[:p]...)
	out = append(out, seq[q:r]...)
	out = append(out, seq[p:q]...)
	out = append(out, seq[r:]...)

	return out
}
