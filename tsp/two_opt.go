// Candidate-guided first-improvement 2-opt (symmetric instances).
//
// Move anatomy around a scanned node t1: let t2 be a tour neighbor of t1
// (both directions are tried) so that (t1,t2) is the broken edge. For each
// candidate neighbor t3 of t2 with cost(t2,t3) < cost(t1,t2) — a necessary
// condition, without it the move cannot improve — let t4 be the tour
// neighbor of t3 on t1's side, so that reversing the segment between t2
// and t4 reconnects the cycle with edges (t1,t4) and (t2,t3). The move is
// applied iff
//
//	cost(t1,t2) + cost(t3,t4) > cost(t2,t3) + cost(t4,t1) + eps
//
// (strict improvement only; ties are never applied, guaranteeing
// termination). The shorter side of the cycle is reversed.
package tsp

// improveTwoOpt tries to apply one improving 2-opt move incident to t1.
// Returns true when a move was applied. Complexity: O(k) candidate checks,
// O(n) worst-case on an accepted move (segment reversal).
func (s *searcher) improveTwoOpt(t1 int) bool {
	var (
		dir           int
		t2, t3, t4    int
		g1, gain, c23 float64
		i             int
		row           []candidate
		nnSorted      = s.cand.sortedByCost
	)
	for dir = 0; dir < 2; dir++ {
		if dir == 0 {
			t2 = s.t.Next(t1)
		} else {
			t2 = s.t.Prev(t1)
		}
		g1 = s.d.at(t1, t2)

		row = s.cand.nbr[t2]
		for i = 0; i < len(row); i++ {
			t3 = row[i].to
			c23 = row[i].cost

			// Pruning: a candidate edge at least as long as the broken one
			// cannot yield a gain. Cost-sorted lists allow a hard stop.
			if c23 >= g1 {
				if nnSorted {
					break
				}

				continue
			}
			if t3 == t1 {
				continue
			}

			if dir == 0 {
				t4 = s.t.Prev(t3)
			} else {
				t4 = s.t.Next(t3)
			}
			if t4 == t1 || t4 == t2 {
				continue // degenerate exchange, zero gain by construction
			}

			gain = g1 + s.d.at(t4, t3) - c23 - s.d.at(t4, t1)
			if !s.improving(gain) {
				continue
			}

			// Reconnect by reversing the span between t2 and t4 (the side
			// not containing t1 and t3).
			if dir == 0 {
				s.reverseShorter(s.t.Pos(t2), s.t.Pos(t4))
			} else {
				s.reverseShorter(s.t.Pos(t4), s.t.Pos(t2))
			}
			s.accept(gain, t1, t2, t3, t4)

			return true
		}
	}

	return false
}
