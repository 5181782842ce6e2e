// α-nearness candidate ranking via the Held–Karp 1-tree relaxation.
//
// For a multiplier vector π define reduced costs c'(u,v) = c(u,v)+π(u)+π(v)
// (symmetric case). Build a minimum 1-tree T(π): MST over V\{root} on c'
// plus the two cheapest root-incident edges, and improve π by subgradient
// steps s(i) = deg_T(i) − 2 (tour feasibility needs degree 2 everywhere).
// With the final 1-tree, the α-value of an edge is the cost increase caused
// by forcing that edge into the 1-tree:
//
//	α(u,v) = c'(u,v) − β(u,v)
//
// where β(u,v) is the heaviest edge on the tree path between u and v
// (computed by an O(n²) DP over the Prim insertion order), and root edges
// are measured against the second-cheapest root edge. Edges of the 1-tree
// itself have α = 0, which is why α-ranked candidate lists reliably contain
// the tour-relevant edges that plain nearest-neighbor ranking misses.
//
// Scope: symmetric instances only; the candidate builder gates usage.
//
// Complexity: O(iters·n²) time, O(n²) space for β.
// Determinism: no RNG; Prim and root-edge selection break ties by index.
package tsp

import "math"

const (
	// alphaRoot is the distinguished 1-tree vertex.
	alphaRoot = 0

	// alphaIters bounds the subgradient loop; each iteration costs O(n²).
	alphaIters = 16

	// alphaStep scales the diminishing step schedule t = alphaStep/(1+iter).
	alphaStep = 0.9
)

// oneTree holds mutable state for building minimum 1-trees on reduced
// costs. Arrays are reused across subgradient iterations.
type oneTree struct {
	n int
	w []float64 // dense original costs, length n*n

	pi  []float64 // Lagrange multipliers
	deg []int     // vertex degree in the current 1-tree

	inTree []bool
	parent []int     // Prim parent over V\{root}
	key    []float64 // Prim tentative keys
	seq    []int     // Prim insertion order over V\{root}

	r1, r2 int     // endpoints of the two cheapest root edges
	m2     float64 // reduced cost of the second-cheapest root edge
}

// reduced returns c'(u,v) = c(u,v) + π(u) + π(v).
func (e *oneTree) reduced(u, v int) float64 {
	return e.w[u*e.n+v] + e.pi[u] + e.pi[v]
}

// build constructs a minimum 1-tree on reduced costs: Prim MST over
// V\{root} in O(n²), then the two cheapest root edges. Fills deg, parent
// and seq. Returns ErrInfeasibleCandidates when no 1-tree exists
// (disconnected V\{root} or fewer than two finite root edges).
func (e *oneTree) build() error {
	var (
		inf           = math.Inf(1)
		v, u, best, i int
		c             float64
	)
	for v = 0; v < e.n; v++ {
		e.deg[v] = 0
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
	}
	e.seq = e.seq[:0]

	// Deterministic Prim start in V\{root}.
	start := 0
	if start == alphaRoot {
		start = 1
	}
	e.key[start] = 0

	for i = 0; i < e.n-1; i++ {
		best = -1
		for v = 0; v < e.n; v++ {
			if v == alphaRoot || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] || (e.key[v] == e.key[best] && v < best) {
				best = v
			}
		}
		if best == -1 || math.IsInf(e.key[best], 0) {
			return ErrInfeasibleCandidates
		}

		e.inTree[best] = true
		e.seq = append(e.seq, best)
		if u = e.parent[best]; u != -1 {
			e.deg[best]++
			e.deg[u]++
		}

		for v = 0; v < e.n; v++ {
			if v == alphaRoot || e.inTree[v] || v == best {
				continue
			}
			c = e.reduced(best, v)
			if c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest root edges by reduced cost, index tiebreak.
	var m1 float64
	m1, e.m2 = inf, inf
	e.r1, e.r2 = -1, -1
	for v = 0; v < e.n; v++ {
		if v == alphaRoot {
			continue
		}
		c = e.reduced(alphaRoot, v)
		if c < m1 || (c == m1 && v < e.r1) {
			e.m2, e.r2 = m1, e.r1
			m1, e.r1 = c, v
		} else if c < e.m2 || (c == e.m2 && v < e.r2) {
			e.m2, e.r2 = c, v
		}
	}
	if math.IsInf(m1, 0) || math.IsInf(e.m2, 0) {
		return ErrInfeasibleCandidates
	}

	e.deg[alphaRoot] += 2
	e.deg[e.r1]++
	e.deg[e.r2]++

	return nil
}

// alphaNearness runs the subgradient loop and returns the dense symmetric
// α-matrix (flat n*n, diagonal and missing edges +Inf is never produced —
// missing edges simply stay +Inf because c' is +Inf there).
func alphaNearness(d *weights) ([]float64, error) {
	var (
		n = d.n
		e = &oneTree{
			n:      n,
			w:      d.w,
			pi:     make([]float64, n),
			deg:    make([]int, n),
			inTree: make([]bool, n),
			parent: make([]int, n),
			key:    make([]float64, n),
			seq:    make([]int, 0, n-1),
		}
		iter, i int
		norm2   int
		degDiff int
		step    float64
	)

	// Subgradient ascent on π with a diminishing step schedule; stops
	// early when the 1-tree is already a tour (all degrees equal 2).
	for iter = 0; iter < alphaIters; iter++ {
		if err := e.build(); err != nil {
			return nil, err
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			degDiff = e.deg[i] - 2
			norm2 += degDiff * degDiff
		}
		if norm2 == 0 {
			break
		}

		step = alphaStep / (1.0 + float64(iter))
		for i = 0; i < n; i++ {
			e.pi[i] += step * float64(e.deg[i]-2)
		}
	}
	// Rebuild once so the tree topology matches the final π.
	if err := e.build(); err != nil {
		return nil, err
	}

	// β(u,v) = heaviest reduced edge on the tree path u..v, via DP over the
	// Prim insertion order: β(u,v) = max(β(u,parent(v)), c'(v,parent(v))).
	var (
		beta = make([]float64, n*n)
		idx  int
		v, u int
		pc   float64
		b    float64
	)
	for idx = 0; idx < len(e.seq); idx++ {
		v = e.seq[idx]
		if e.parent[v] == -1 {
			continue // Prim start vertex, path DP base case
		}
		pc = e.reduced(v, e.parent[v])
		for i = 0; i < idx; i++ {
			u = e.seq[i]
			b = beta[u*n+e.parent[v]]
			if pc > b {
				b = pc
			}
			beta[u*n+v] = b
			beta[v*n+u] = b
		}
	}

	// α-values: tree edges get exactly 0 (c' equals β on them); root edges
	// are measured against the second-cheapest root edge.
	var (
		alpha = make([]float64, n*n)
		c     float64
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if u == v {
				alpha[u*n+v] = math.Inf(1)

				continue
			}
			if u == alphaRoot || v == alphaRoot {
				other := u
				if u == alphaRoot {
					other = v
				}
				if other == e.r1 || other == e.r2 {
					alpha[u*n+v] = 0

					continue
				}
				alpha[u*n+v] = e.reduced(u, v) - e.m2

				continue
			}
			c = e.reduced(u, v)
			if math.IsInf(c, 0) {
				alpha[u*n+v] = c

				continue
			}
			alpha[u*n+v] = c - beta[u*n+v]
		}
	}

	return alpha, nil
}
