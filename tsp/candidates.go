// Candidate Graph Builder: for each node, a bounded ordered set of
// promising outgoing edges restricting the search to a sparse graph.
//
// Candidate lists are built once per Solve and are read-only during the
// search, so they are shared by reference across parallel runs.
package tsp

import (
	"math"
	"sort"
)

// candidate is one promising edge out of a node: the neighbor, the direct
// (directed) arc cost used by the gain pruning rule, and the ranking key
// the configured metric assigned (equal to cost for NearestNeighbor).
type candidate struct {
	to   int
	cost float64
	rank float64
}

// candidateSet holds the per-node candidate lists, each sorted ascending
// by (rank, cost, node index) and bounded by the configured k.
type candidateSet struct {
	nbr [][]candidate

	// sortedByCost is true for NearestNeighbor ranking, where rank == cost
	// and the gain pruning rule may stop scanning a list early.
	sortedByCost bool
}

// buildCandidates computes the candidate lists.
//
// NearestNeighbor ranks by the directed oracle cost; AlphaNearness ranks
// by 1-tree α-values (symmetric instances only — enforced by the caller).
// +Inf arcs are never candidates. Every node must end up with at least one
// candidate edge, else the instance fails with ErrInfeasibleCandidates
// (cannot happen for complete graphs; documented defensive path).
//
// Complexity: O(n² log n) time, O(n·k) space for the lists
// (plus O(n²) working space for the α metric).
func buildCandidates(d *weights, k int, metric CandidateMetric) (*candidateSet, error) {
	var (
		n     = d.n
		alpha []float64
		err   error
	)
	if metric == AlphaNearness {
		if alpha, err = alphaNearness(d); err != nil {
			return nil, err
		}
	}

	var (
		cs = &candidateSet{
			nbr:          make([][]candidate, n),
			sortedByCost: metric == NearestNeighbor,
		}
		u, v int
		c, r float64
		row  []candidate
	)
	for u = 0; u < n; u++ {
		row = make([]candidate, 0, n-1)
		for v = 0; v < n; v++ {
			if v == u {
				continue
			}
			c = d.at(u, v)
			if math.IsInf(c, 0) {
				continue // missing arc, never a candidate
			}
			r = c
			if alpha != nil {
				r = alpha[u*n+v]
				if math.IsInf(r, 0) {
					continue
				}
			}
			row = append(row, candidate{to: v, cost: c, rank: r})
		}
		if len(row) == 0 {
			return nil, ErrInfeasibleCandidates
		}

		// Ascending by rank, then direct cost, then lower node index.
		sort.Slice(row, func(a, b int) bool {
			if row[a].rank != row[b].rank {
				return row[a].rank < row[b].rank
			}
			if row[a].cost != row[b].cost {
				return row[a].cost < row[b].cost
			}

			return row[a].to < row[b].to
		})
		if len(row) > k {
			row = row[:k:k]
		}
		cs.nbr[u] = row
	}

	return cs, nil
}
