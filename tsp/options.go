package tsp

import "time"

// CandidateMetric selects how candidate edges are ranked.
//
// NearestNeighbor ranks by direct (directed) cost; the default.
// AlphaNearness ranks by α-values derived from a Held–Karp 1-tree, which
// gives usually tighter candidate sets; symmetric instances only.
type CandidateMetric uint8

const (
	// NearestNeighbor ranks candidates by direct edge cost.
	NearestNeighbor CandidateMetric = iota

	// AlphaNearness ranks candidates by 1-tree α-values (symmetric only).
	AlphaNearness
)

// Mode declares the expected symmetry of the distance input.
//
// ModeAuto detects it from the oracle (asymmetric matrix ⇒ ATSP moves).
// ModeSymmetric requires symmetry; asymmetric input fails with ErrAsymmetry.
// ModeAsymmetric forces the orientation-preserving ATSP move set even on
// symmetric inputs (useful for parity testing).
type Mode uint8

const (
	// ModeAuto detects symmetry from the oracle. Default.
	ModeAuto Mode = iota

	// ModeSymmetric requires a symmetric instance.
	ModeSymmetric

	// ModeAsymmetric forces the ATSP move set.
	ModeAsymmetric
)

// DefaultCandidateCount bounds each node's candidate list when the caller
// does not override it. Values in 5–10 are the practical sweet spot.
const DefaultCandidateCount = 8

// DefaultEps is the strict-improvement tolerance: a move is accepted only
// when its gain exceeds Eps, which guarantees termination (ties are never
// applied).
const DefaultEps = 1e-9

// DefaultMaxSegment bounds the Or-opt relocation segment length.
const DefaultMaxSegment = 3

// Options configures a Solve call.
//
// Runs is the number of independent restarts (≥ 1). CandidateCount bounds
// the candidate edges per node (≥ 1); Metric selects their ranking and
// Mode the expected symmetry of the input. StartNode anchors both ends of
// the returned closed tour. Eps is the strict-improvement tolerance (≥ 0).
// TimeLimit is an optional wall-clock budget for the whole solve (0 ⇒
// none) and MoveLimit an optional cap on total applied moves (0 ⇒
// unlimited). Seed drives all randomness; 0 selects a fixed default
// stream, so equal seeds always reproduce equal tours and costs. Workers
// sets restart parallelism: 1 (default) keeps the reference
// single-threaded behavior, >1 runs restarts on a pool. MaxSegment is the
// longest segment Or-opt may relocate (1..n-2).
type Options struct {
	Runs           int
	CandidateCount int
	Metric         CandidateMetric
	Mode           Mode
	StartNode      int
	Eps            float64
	TimeLimit      time.Duration
	MoveLimit      int
	Seed           int64
	Workers        int
	MaxSegment     int
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithRuns sets the number of independent restarts.
func WithRuns(runs int) Option {
	return func(o *Options) { o.Runs = runs }
}

// WithCandidateCount bounds each node's candidate list.
func WithCandidateCount(k int) Option {
	return func(o *Options) { o.CandidateCount = k }
}

// WithMetric selects the candidate ranking metric.
func WithMetric(m CandidateMetric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithMode declares the expected symmetry of the input.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithStartNode fixes the start (and end) node of the returned tour.
func WithStartNode(v int) Option {
	return func(o *Options) { o.StartNode = v }
}

// WithEps sets the strict-improvement tolerance.
func WithEps(eps float64) Option {
	return func(o *Options) { o.Eps = eps }
}

// WithTimeLimit sets a wall-clock budget for the whole solve.
// The budget is cooperative: it is inspected at the top of each scan
// iteration, and tripping it returns the best tour so far with ErrCancelled.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithMoveLimit caps the total number of applied moves across all runs.
func WithMoveLimit(moves int) Option {
	return func(o *Options) { o.MoveLimit = moves }
}

// WithSeed makes randomized construction and perturbation reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers runs restarts on a pool of the given size.
func WithWorkers(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithMaxSegment bounds the Or-opt relocation segment length.
func WithMaxSegment(l int) Option {
	return func(o *Options) { o.MaxSegment = l }
}

// DefaultOptions returns the baseline configuration: a single run with
// nearest-neighbor candidates of size DefaultCandidateCount, auto-detected
// symmetry, strict 1e-9 improvement tolerance, no budget, seed 0
// (deterministic default stream), and single-threaded execution.
func DefaultOptions() Options {
	return Options{
		Runs:           1,
		CandidateCount: DefaultCandidateCount,
		Metric:         NearestNeighbor,
		Mode:           ModeAuto,
		StartNode:      0,
		Eps:            DefaultEps,
		TimeLimit:      0,
		MoveLimit:      0,
		Seed:           0,
		Workers:        1,
		MaxSegment:     DefaultMaxSegment,
	}
}

// validateOptions checks internal consistency of Options without touching
// the oracle. All violations map to ErrInvalidConfig; symmetry conflicts
// are detected later, once the instance is known.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Runs < 1 {
		return ErrInvalidConfig
	}
	if o.CandidateCount < 1 {
		return ErrInvalidConfig
	}
	if o.Eps < 0 {
		return ErrInvalidConfig
	}
	if o.TimeLimit < 0 || o.MoveLimit < 0 {
		return ErrInvalidConfig
	}
	if o.Workers < 1 {
		return ErrInvalidConfig
	}
	if o.MaxSegment < 1 {
		return ErrInvalidConfig
	}
	switch o.Metric {
	case NearestNeighbor, AlphaNearness:
		// ok
	default:
		return ErrInvalidConfig
	}
	switch o.Mode {
	case ModeAuto, ModeSymmetric, ModeAsymmetric:
		// ok
	default:
		return ErrInvalidConfig
	}

	return nil
}
