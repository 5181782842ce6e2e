// Initial tour construction for the run controller.
package tsp

import (
	"math"
	"math/rand"
)

// nearestNeighborSeq builds a deterministic tour sequence greedily: from
// start, repeatedly move to the cheapest unvisited node (directed cost,
// ties by lower index). When only +Inf arcs remain, the lowest-index
// unvisited node is taken — the sequence stays a valid permutation and its
// infinite cost makes it lose to any finite competitor.
//
// Complexity: O(n²) time, O(n) space.
func nearestNeighborSeq(d *weights, start int) []int {
	var (
		n       = d.n
		seq     = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = start
		i, v    int
		best    int
		bestC   float64
		c       float64
	)
	seq = append(seq, cur)
	visited[cur] = true

	for i = 1; i < n; i++ {
		best = -1
		bestC = math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			c = d.at(cur, v)
			if best == -1 || c < bestC || (c == bestC && v < best) {
				best = v
				bestC = c
			}
		}
		seq = append(seq, best)
		visited[best] = true
		cur = best
	}

	return seq
}

// randomSeq returns a random permutation of 0..n-1 rotated so it begins at
// start, via an in-place Fisher–Yates shuffle of the remaining nodes.
//
// Complexity: O(n) time and space.
func randomSeq(n, start int, rng *rand.Rand) []int {
	var (
		seq  = make([]int, 0, n)
		v, i int
		j    int
	)
	seq = append(seq, start)
	for v = 0; v < n; v++ {
		if v != start {
			seq = append(seq, v)
		}
	}

	// Shuffle everything after the fixed start.
	for i = n - 1; i > 1; i-- {
		j = 1 + rng.Intn(i)
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq
}
