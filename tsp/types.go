package tsp

import "errors"

// Sentinel errors surfaced by Solve and the exported tour utilities.
// All input problems are reported before any search begins; the engine
// itself cannot fail on a well-formed instance.
var (
	// ErrNilOracle indicates that a nil distance oracle was supplied.
	ErrNilOracle = errors.New("tsp: distance oracle is nil")

	// ErrInvalidConfig indicates an inconsistent Options value
	// (Runs < 1, CandidateCount < 1, negative tolerance or limits,
	// unknown candidate metric or symmetry mode).
	ErrInvalidConfig = errors.New("tsp: invalid solver configuration")

	// ErrTooFewNodes indicates an instance with fewer than 3 nodes;
	// a tour needs at least 3 nodes to be meaningful.
	ErrTooFewNodes = errors.New("tsp: instance requires at least 3 nodes")

	// ErrAsymmetry indicates that ModeSymmetric was requested (or an
	// algorithm requiring symmetry, such as α-nearness candidates) but
	// the distance input is asymmetric.
	ErrAsymmetry = errors.New("tsp: distance input is not symmetric")

	// ErrInvalidWeight indicates a NaN cost reported by the oracle.
	ErrInvalidWeight = errors.New("tsp: cost is NaN")

	// ErrNegativeWeight indicates a negative cost reported by the oracle.
	ErrNegativeWeight = errors.New("tsp: negative cost")

	// ErrInfeasibleCandidates indicates that some node ended up with no
	// finite candidate edge. Cannot happen for complete graphs; kept for
	// defensive completeness on inputs with +Inf (missing) edges.
	ErrInfeasibleCandidates = errors.New("tsp: infeasible candidate set")

	// ErrCancelled indicates that the cooperative time or move budget
	// tripped mid-search. The best tour found so far is still returned
	// alongside this error (local search is anytime-improvable).
	ErrCancelled = errors.New("tsp: search cancelled by budget")

	// ErrBadTour indicates a sequence that is not a permutation of
	// 0..n-1 (duplicate, missing, or out-of-range nodes).
	ErrBadTour = errors.New("tsp: sequence is not a valid tour")
)

// Result holds the outcome of a Solve call. Immutable once returned.
type Result struct {
	// Tour is the best cycle found as a closed sequence of node indices:
	// len(Tour) == n+1 and Tour[0] == Tour[n] == Options.StartNode.
	Tour []int

	// Cost is the total cost of the cycle, stabilized to 1e-9.
	Cost float64
}
