// Dense weight prefetch shared by all search phases.
//
// The oracle is read exactly once per Solve into a flat row-major buffer
// w[u*n+v], removing interface indirection and error handling from the hot
// loops. Sentinel semantics enforced during the prefetch:
//   - NaN      ⇒ ErrInvalidWeight (ill-posed input),
//   - negative ⇒ ErrNegativeWeight (forbidden),
//   - +Inf     ⇒ allowed; moves that rely on a +Inf arc are rejected.
package tsp

import (
	"math"

	"github.com/HellOwhatAs/elkai-go/oracle"
)

// roundScale controls final cost stabilization precision (1e-9). It avoids
// tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// +Inf passes through untouched. Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// weights is the read-only dense cost view shared (by reference) across
// runs and worker goroutines.
type weights struct {
	n int
	w []float64 // flat row-major, length n*n
}

// at returns the cost of the directed arc u→v. Hot path, no checks.
func (d *weights) at(u, v int) float64 { return d.w[u*d.n+v] }

// symmetric reports whether the prefetched buffer is symmetric within the
// 1e-12 structural tolerance. Complexity: O(n²).
func (d *weights) symmetric() bool {
	var (
		i, j int
		diff float64
	)
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			diff = d.w[i*d.n+j] - d.w[j*d.n+i]
			if diff < 0 {
				diff = -diff
			}
			if diff > 1e-12 {
				return false
			}
		}
	}

	return true
}

// prefetchWeights reads the full n×n cost table from the oracle with
// strict validation. Oracle lookup failures surface as-is (the oracle owns
// its sentinel vocabulary for index errors).
//
// Complexity: O(n²) time and space.
func prefetchWeights(o oracle.Oracle) (*weights, error) {
	var (
		n    = o.N()
		w    = make([]float64, n*n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = o.Cost(i, j)
			if err != nil {
				return nil, err
			}
			if math.IsNaN(x) {
				return nil, ErrInvalidWeight
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return &weights{n: n, w: w}, nil
}

// tourCost sums the closed-cycle cost of a tour sequence (open, length n).
// +Inf propagates (a tour over a missing arc has infinite cost), which is
// how infeasible constructions lose to any finite competitor.
//
// Complexity: O(n).
func (d *weights) tourCost(order []int) float64 {
	var (
		sum  float64
		i    int
		last = len(order) - 1
	)
	for i = 0; i < last; i++ {
		sum += d.at(order[i], order[i+1])
	}
	sum += d.at(order[last], order[0])

	return sum
}
