// Package oracle defines the distance oracle consumed by the TSP engine:
// a uniform, read-only view of edge costs over n nodes indexed 0..n-1.
//
// Two concrete oracles are provided:
//
//   - Matrix — a dense n×n cost matrix (asymmetric allowed), row-major
//     flat storage for O(1) cache-friendly lookups.
//   - Euclid — 2D coordinates with cost derived as Euclidean distance
//     under a configurable rounding policy.
//
// Design principles:
//
//	– Oracles are immutable after construction and safe for concurrent
//	  readers; no hidden mutable state.
//	– Strict sentinel errors only; no panics on user input.
//	– +Inf encodes a missing edge; NaN and negative costs are invalid.
//
// Errors (sentinel):
//
//	– ErrNonSquare        if the input matrix is not square or is empty.
//	– ErrInvalidWeight    if any cost is NaN.
//	– ErrNegativeWeight   if any cost is negative.
//	– ErrIndexOutOfBounds if a queried index is outside [0..n-1].
//	– ErrTooFewPoints     if a coordinate set has fewer than 2 points.
package oracle

import "errors"

// Sentinel errors returned by oracle constructors and lookups.
var (
	// ErrNonSquare indicates that the distance input is not a square
	// n×n matrix (ragged rows count as non-square).
	ErrNonSquare = errors.New("oracle: distance matrix is not square")

	// ErrInvalidWeight indicates a NaN cost entry.
	ErrInvalidWeight = errors.New("oracle: cost is NaN")

	// ErrNegativeWeight indicates a negative cost entry.
	ErrNegativeWeight = errors.New("oracle: negative cost")

	// ErrIndexOutOfBounds indicates a node index outside [0..n-1].
	ErrIndexOutOfBounds = errors.New("oracle: node index out of bounds")

	// ErrTooFewPoints indicates a coordinate set with fewer than two points.
	ErrTooFewPoints = errors.New("oracle: at least two points required")
)

// symTol is the structural tolerance used when deciding whether a matrix
// is symmetric. It is independent from any local-search acceptance epsilon.
const symTol = 1e-12

// Oracle yields the cost of directed edges over nodes 0..n-1.
//
// Implementations must be side-effect free and safe to call concurrently
// from multiple search goroutines.
type Oracle interface {
	// N reports the node count.
	N() int

	// Cost returns the non-negative cost of the directed edge i→j.
	// +Inf means the edge does not exist. Out-of-range indices yield
	// ErrIndexOutOfBounds; Cost never panics.
	Cost(i, j int) (float64, error)
}

// symmetrical is the optional capability an Oracle may expose when it
// knows its own symmetry up front (both concrete oracles here do).
type symmetrical interface {
	Symmetric() bool
}

// IsSymmetric reports whether cost(i,j) == cost(j,i) for all pairs,
// within a 1e-12 tolerance. Oracles exposing a Symmetric() bool method
// answer in O(1); otherwise every ordered pair is probed.
//
// Complexity: O(1) with the capability, O(n²) probing fallback.
func IsSymmetric(o Oracle) (bool, error) {
	if s, ok := o.(symmetrical); ok {
		return s.Symmetric(), nil
	}

	var (
		n        = o.N()
		i, j     int
		cij, cji float64
		err      error
		diff     float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cij, err = o.Cost(i, j); err != nil {
				return false, err
			}
			if cji, err = o.Cost(j, i); err != nil {
				return false, err
			}
			diff = cij - cji
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return false, nil
			}
		}
	}

	return true, nil
}
