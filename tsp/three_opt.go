// Orientation-preserving 3-opt tail swap (asymmetric instances).
//
// On directed costs a plain 2-opt is unusable: reversing a segment changes
// the cost of every arc inside it. The cheapest sequential move that keeps
// all segment orientations intact removes three arcs and swaps two
// adjacent blocks. With the cycle written a→b …S1… c→d …S2… e→f …S3… a,
// the arcs (a→b), (c→d), (e→f) are replaced by (a→d), (e→b), (c→f),
// producing the single cycle a, S2, S1, S3 — no reversals.
//
// Candidate guidance: the first added arc a→d is drawn from the candidate
// list of a with cost(a,d) < cost(a,b) (the sequential-gain pruning rule);
// the middle cut e is then scanned over the S2 span. An applied move
// rebuilds the order array in O(n), mirroring the cost of the reversal it
// replaces.
package tsp

// improveTailSwap tries to apply one improving tail-swap move whose first
// broken arc leaves t1. Returns true when a move was applied.
//
// Complexity: O(k·n) checks per call, O(n) on an accepted move.
func (s *searcher) improveTailSwap(t1 int) bool {
	var (
		n       = s.t.Len()
		a       = t1
		b       = s.t.Next(a)
		gab     = s.d.at(a, b)
		row     = s.cand.nbr[a]
		i       int
		dn, cn  int // d and its tour predecessor c
		e, f    int
		pa, pd  int
		pe      int
		cad     float64
		removed float64
		gain    float64
	)
	pa = s.t.Pos(a)

	for i = 0; i < len(row); i++ {
		dn = row[i].to
		cad = row[i].cost
		if cad >= gab {
			if s.cand.sortedByCost {
				break
			}

			continue
		}
		if dn == b {
			continue // a→d is already the tour arc
		}
		cn = s.t.Prev(dn)
		pd = s.t.Pos(dn)

		// Scan the middle cut e over S2 = d..Prev(a).
		for pe = pd; pe != pa; pe = (pe + 1) % n {
			e = s.t.At(pe)
			f = s.t.Next(e)

			removed = gab + s.d.at(cn, dn) + s.d.at(e, f)
			gain = removed - cad - s.d.at(e, b) - s.d.at(cn, f)
			if !s.improving(gain) {
				continue
			}

			s.applyTailSwap(pa, pd, pe)
			s.accept(gain, a, b, cn, dn, e, f)

			return true
		}
	}

	return false
}

// applyTailSwap rewrites the order array as a, S2, S1, S3 where
// S1 = positions (pa..pd), S2 = positions [pd..pe], and S3 is the rest.
// All three segments keep their internal orientation.
//
// Complexity: O(n) time and space.
func (s *searcher) applyTailSwap(pa, pd, pe int) {
	var (
		n   = s.t.Len()
		out = make([]int, 0, n)
		p   int
	)
	out = append(out, s.t.At(pa))
	for p = pd; ; p = (p + 1) % n { // S2 = d..e
		out = append(out, s.t.At(p))
		if p == pe {
			break
		}
	}
	for p = (pa + 1) % n; p != pd; p = (p + 1) % n { // S1 = b..c
		out = append(out, s.t.At(p))
	}
	for p = (pe + 1) % n; p != pa; p = (p + 1) % n { // S3 = f..Prev(a)
		out = append(out, s.t.At(p))
	}

	s.t.setSequence(out)
}
