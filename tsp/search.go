// Local search engine driver.
//
// The engine moves a Tour from its initial state to a local optimum under
// the candidate-restricted move set. The scan is organized as a queue of
// active nodes (SCANNING); an applied move (APPLYING) re-enqueues the
// nodes whose incident edges changed, so scanning restarts from the
// affected region instead of continuing a stale sweep. The engine is
// CONVERGED only after a full pass over all n nodes — primary phase plus
// the Or-opt sweep — applies no move.
//
// Move set:
//   - symmetric instances: candidate-guided first-improvement 2-opt
//     (primary) + Or-opt segment relocation (secondary);
//   - asymmetric instances: orientation-preserving 3-opt tail swap
//     (primary) + forward-only Or-opt (secondary). Segment reversal is
//     never used on directed costs.
//
// Every accepted move strictly decreases the tour cost (gain > eps), which
// bounds the number of moves and guarantees termination. The engine cannot
// fail on a well-formed tour; the only non-nil return is ErrCancelled from
// the cooperative budget, checked at the top of each scan iteration.
package tsp

import (
	"math"
	"sync/atomic"
	"time"
)

// budget is the cooperative cancellation state shared by every run of one
// Solve call (and by all workers when restarts are parallel). The move
// counter is atomic; the deadline is probed sparsely to keep the hot path
// overhead negligible.
type budget struct {
	useDeadline bool
	deadline    time.Time
	moveLimit   int64 // 0 ⇒ unlimited
	moves       atomic.Int64
}

func newBudget(opts Options) *budget {
	b := &budget{moveLimit: int64(opts.MoveLimit)}
	if opts.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	return b
}

// exhausted reports whether the budget has tripped. The wall clock is
// probed every 64th call per searcher; the move cap every call (one atomic
// load).
func (b *budget) exhausted(tick *uint64) bool {
	if b.moveLimit > 0 && b.moves.Load() >= b.moveLimit {
		return true
	}
	*tick++
	if b.useDeadline && (*tick&63) == 0 && time.Now().After(b.deadline) {
		return true
	}

	return false
}

// searcher drives one tour to a local optimum. It owns the tour
// exclusively; weights and candidates are shared read-only.
type searcher struct {
	d    *weights
	cand *candidateSet
	t    *Tour
	cost float64 // maintained incrementally, stabilized on return
	eps  float64
	sym  bool
	seg  int // Or-opt max segment length

	bud  *budget
	tick uint64

	queue   []int
	inQueue []bool

	applied int // moves accepted by this searcher
}

func newSearcher(d *weights, cand *candidateSet, t *Tour, sym bool, opts Options, bud *budget) *searcher {
	return &searcher{
		d:       d,
		cand:    cand,
		t:       t,
		cost:    d.tourCost(t.order),
		eps:     opts.Eps,
		sym:     sym,
		seg:     opts.MaxSegment,
		bud:     bud,
		queue:   make([]int, 0, t.Len()),
		inQueue: make([]bool, t.Len()),
	}
}

// push marks a node active unless it already is.
func (s *searcher) push(v int) {
	if !s.inQueue[v] {
		s.inQueue[v] = true
		s.queue = append(s.queue, v)
	}
}

// pop removes and returns the next active node.
func (s *searcher) pop() int {
	v := s.queue[0]
	s.queue = s.queue[1:]
	s.inQueue[v] = false

	return v
}

// improving reports whether a strict-improvement gain clears the
// tolerance. Gains over +Inf arcs can degenerate to NaN (both the removed
// and the added set carry a missing arc); such moves are never taken.
// A +Inf gain — the move drops a missing arc for finite ones — is taken.
func (s *searcher) improving(gain float64) bool {
	return !math.IsNaN(gain) && gain > s.eps
}

// accept commits a move's bookkeeping: incremental cost update, budget
// accounting, and re-activation of the affected nodes. An infinite gain
// breaks incremental arithmetic (Inf−Inf), so the cost is re-anchored by
// a full recomputation in that case.
func (s *searcher) accept(gain float64, affected ...int) {
	s.cost -= gain
	if math.IsInf(gain, 0) || math.IsNaN(s.cost) {
		s.cost = s.d.tourCost(s.t.order)
	}
	s.applied++
	s.bud.moves.Add(1)
	for _, v := range affected {
		s.push(v)
	}
}

// optimize runs the engine to convergence (nil) or until the budget trips
// (ErrCancelled). The tour is valid in both cases.
//
// Convergence requires a clean full pass: every pass re-seeds the queue
// with all n nodes before draining it. The endpoint re-enqueueing in
// accept only steers the scan order inside a pass — a move can enable an
// improvement at a node whose own incident edges did not change (the
// candidate pruning is direction-dependent), so a drained queue alone
// does not prove a local optimum. Only a pass that applies no move at all,
// primary and Or-opt phases included, does.
func (s *searcher) optimize() error {
	var (
		p      int
		before int
	)
	for {
		for p = 0; p < s.t.Len(); p++ {
			s.push(s.t.At(p))
		}
		before = s.applied

		// Primary phase: drain the active-node queue.
		for len(s.queue) > 0 {
			if s.bud.exhausted(&s.tick) {
				return ErrCancelled
			}
			t1 := s.pop()
			if s.sym {
				for s.improveTwoOpt(t1) {
				}
			} else {
				for s.improveTailSwap(t1) {
				}
			}
		}

		// Secondary phase: one Or-opt sweep; successes re-arm the primary
		// phase of the next pass via the nodes pushed by accept.
		for p = 0; p < s.t.Len(); p++ {
			if s.bud.exhausted(&s.tick) {
				return ErrCancelled
			}
			s.improveOrOpt(s.t.At(p))
		}

		if s.applied == before {
			return nil // a full clean pass: local optimum under the move set
		}
	}
}

// reverseShorter reverses the cyclic position segment [i..j], or its
// complement when that is shorter. For symmetric costs both encode the
// same cycle, so the cheaper rewrite is always taken. Symmetric mode only.
func (s *searcher) reverseShorter(i, j int) {
	var (
		n    = s.t.Len()
		size = j - i
	)
	if size < 0 {
		size += n
	}
	size++
	if 2*size > n {
		// Reverse the complement [j+1 .. i-1] instead.
		i, j = j+1, i-1
		if i == n {
			i = 0
		}
		if j < 0 {
			j = n - 1
		}
	}
	s.t.Reverse(i, j)
}
