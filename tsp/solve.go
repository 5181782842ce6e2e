// Run controller: the canonical entry point.
//
// Solve validates the configuration and the distance input up front (no
// search starts on bad input), prefetches the oracle into a dense weight
// buffer, builds the candidate lists once, and then executes Runs
// independent local searches, keeping the best tour found:
//
//	run 0   – deterministic nearest-neighbor construction;
//	run r>0 – double-bridge kick of the current best (sequential mode) or
//	          of the run-0 base tour (parallel mode, so every run depends
//	          only on (seed, r) and results stay reproducible).
//
// Ties keep the earliest-found best (stable selection). When the
// cooperative budget trips, the best tour found so far is returned
// together with ErrCancelled — a partial-result success, since local
// search is anytime-improvable.
package tsp

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/HellOwhatAs/elkai-go/oracle"
)

// Solve computes a near-optimal closed tour over the oracle's nodes.
//
// Errors (all surfaced before any search begins):
//   - ErrInvalidConfig, ErrNilOracle, ErrTooFewNodes — see types.go;
//   - ErrAsymmetry — ModeSymmetric (or α-nearness candidates) on an
//     asymmetric instance;
//   - ErrInvalidWeight / ErrNegativeWeight — ill-posed costs;
//   - ErrInfeasibleCandidates — some node has no finite candidate edge.
//
// ErrCancelled is the only mid-search return and still carries the best
// result found so far.
//
// Complexity: O(n²) setup + O(Runs · moves · n) search, with the
// neighborhood scans bounded by the candidate lists (O(n·k) per sweep).
func Solve(o oracle.Oracle, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if o == nil {
		return Result{}, ErrNilOracle
	}
	n := o.N()
	if n < 3 {
		return Result{}, ErrTooFewNodes
	}
	if opts.StartNode < 0 || opts.StartNode >= n {
		return Result{}, ErrInvalidConfig
	}

	d, err := prefetchWeights(o)
	if err != nil {
		return Result{}, err
	}

	// Symmetry: detected from the prefetched buffer under ModeAuto (the
	// historical wrapper behavior: TSP vs ATSP chosen by matrix shape),
	// enforced under ModeSymmetric, forced off under ModeAsymmetric.
	sym := d.symmetric()
	switch opts.Mode {
	case ModeSymmetric:
		if !sym {
			return Result{}, ErrAsymmetry
		}
	case ModeAsymmetric:
		sym = false
	}
	if opts.Metric == AlphaNearness && !sym {
		return Result{}, ErrAsymmetry
	}

	cand, err := buildCandidates(d, opts.CandidateCount, opts.Metric)
	if err != nil {
		return Result{}, err
	}

	var (
		bud  = newBudget(opts)
		base = nearestNeighborSeq(d, opts.StartNode)
	)
	if opts.Workers > 1 && opts.Runs > 1 {
		return solveParallel(d, cand, sym, opts, bud, base)
	}

	return solveSequential(d, cand, sym, opts, bud, base)
}

// mustTour wraps NewTour for engine-internal sequences, which are valid
// permutations by construction; a failure here is a programming error, not
// a recoverable condition.
func mustTour(seq []int) *Tour {
	t, err := NewTour(seq)
	if err != nil {
		panic("tsp: internal tour construction violated the cycle invariant")
	}

	return t
}

// solveSequential is the single-threaded reference controller: each kick
// perturbs the best tour found so far.
func solveSequential(d *weights, cand *candidateSet, sym bool, opts Options, bud *budget, base []int) (Result, error) {
	var (
		best      *Tour
		bestCost  = math.Inf(1)
		cancelled bool
		r         int
		seq       []int
		c         float64
	)
	for r = 0; r < opts.Runs; r++ {
		if r == 0 {
			seq = base
		} else if math.IsInf(bestCost, 1) {
			// The greedy base crossed a missing arc; diversify with a
			// random construction instead of kicking an infinite tour.
			seq = randomSeq(d.n, opts.StartNode, runRNG(opts.Seed, r))
		} else {
			seq = doubleBridge(best.Sequence(), runRNG(opts.Seed, r))
		}

		t := mustTour(seq)
		s := newSearcher(d, cand, t, sym, opts, bud)
		serr := s.optimize()

		c = round1e9(s.cost)
		// Strict improvement: ties keep the earliest-found best. best==nil
		// covers the all-+Inf case where no run ever beats the initial bound.
		if best == nil || c < bestCost {
			best, bestCost = t, c
		}
		if serr != nil {
			cancelled = true

			break
		}
	}

	res := Result{Tour: best.Closed(opts.StartNode), Cost: bestCost}
	if cancelled {
		return res, ErrCancelled
	}

	return res, nil
}

// solveParallel runs the restarts on a worker pool. Weights and candidate
// lists are shared read-only; each run owns its tour. The best slot is
// guarded by a mutex held O(1) per run; the move budget is a shared atomic
// counter. Runs kick the run-0 base tour, so every run's input depends
// only on (seed, run index) and the outcome is reproducible regardless of
// goroutine scheduling.
func solveParallel(d *weights, cand *candidateSet, sym bool, opts Options, bud *budget, base []int) (Result, error) {
	var (
		mu       sync.Mutex
		best     *Tour
		bestCost = math.Inf(1)
		bestRun  = math.MaxInt

		cancelled atomic.Bool
		nextRun   atomic.Int64
		wg        sync.WaitGroup

		baseInf = math.IsInf(d.tourCost(base), 1)
		workers = opts.Workers
	)
	if workers > opts.Runs {
		workers = opts.Runs
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				r := int(nextRun.Add(1)) - 1
				if r >= opts.Runs || cancelled.Load() {
					return
				}

				var seq []int
				switch {
				case r == 0:
					seq = base
				case baseInf:
					seq = randomSeq(d.n, opts.StartNode, runRNG(opts.Seed, r))
				default:
					seq = doubleBridge(base, runRNG(opts.Seed, r))
				}

				t := mustTour(seq)
				s := newSearcher(d, cand, t, sym, opts, bud)
				serr := s.optimize()
				c := round1e9(s.cost)

				mu.Lock()
				if best == nil || c < bestCost || (c == bestCost && r < bestRun) {
					best, bestCost, bestRun = t, c, r
				}
				mu.Unlock()

				if serr != nil {
					cancelled.Store(true)

					return
				}
			}
		}()
	}
	wg.Wait()

	res := Result{Tour: best.Closed(opts.StartNode), Cost: bestCost}
	if cancelled.Load() {
		return res, ErrCancelled
	}

	return res, nil
}
