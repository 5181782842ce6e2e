// Or-opt: relocation of a short segment (1..MaxSegment nodes) to another
// cut point. Applied as the secondary move when the primary neighborhood
// is exhausted, before declaring convergence.
//
// With segment s1..sL (tour predecessor p, successor q) and insertion arc
// (u, w=next(u)), the forward move replaces arcs (p→s1), (sL→q), (u→w)
// with (p→q), (u→s1), (sL→w). The segment keeps its orientation, so the
// move is valid on directed costs; symmetric instances additionally try
// the reversed insertion (u→sL), (s1→w).
package tsp

// improveOrOpt tries to relocate one segment starting at node s1.
// Candidate lists of the segment head guide the insertion point. Returns
// true when a move was applied.
//
// Complexity: O(MaxSegment·k) checks per call, O(n) on an accepted move.
func (s *searcher) improveOrOpt(s1 int) bool {
	var (
		n        = s.t.Len()
		p        = s.t.Prev(s1)
		sL       int
		q        int
		ln       int
		base     float64
		row      = s.cand.nbr[s1]
		i        int
		u, w     int
		rel      int
		gain     float64
		inserted float64
	)
	sL = s1
	for ln = 1; ln <= s.seg && ln <= n-3; ln++ {
		if ln > 1 {
			sL = s.t.Next(sL)
		}
		q = s.t.Next(sL)

		// Cost released by cutting the segment out and healing p→q.
		base = s.d.at(p, s1) + s.d.at(sL, q) - s.d.at(p, q)

		for i = 0; i < len(row); i++ {
			u = row[i].to
			// Skip insertion points touching the segment or its healing arc.
			rel = s.t.Pos(u) - s.t.Pos(s1)
			if rel < 0 {
				rel += n
			}
			if rel < ln || u == p {
				continue
			}
			w = s.t.Next(u)

			// Forward insertion: u → s1 … sL → w.
			inserted = s.d.at(u, s1) + s.d.at(sL, w) - s.d.at(u, w)
			gain = base - inserted
			if s.improving(gain) {
				s.relocate(s1, sL, ln, u, false)
				s.accept(gain, p, s1, sL, q, u, w)

				return true
			}

			// Reversed insertion: u → sL … s1 → w. Symmetric costs only —
			// reversing the segment is free there.
			if s.sym && ln > 1 {
				inserted = s.d.at(u, sL) + s.d.at(s1, w) - s.d.at(u, w)
				gain = base - inserted
				if s.improving(gain) {
					s.relocate(s1, sL, ln, u, true)
					s.accept(gain, p, s1, sL, q, u, w)

					return true
				}
			}
		}
	}

	return false
}

// relocate rebuilds the order array with segment s1..sL (ln nodes) spliced
// in after u, optionally reversed.
//
// Complexity: O(n) time and space.
func (s *searcher) relocate(s1, sL, ln int, u int, reversed bool) {
	var (
		n   = s.t.Len()
		out = make([]int, 0, n)
		ps  = s.t.Pos(s1)
		p   int
		v   int
	)
	// Walk the cycle without the segment, starting just after it.
	for p = (ps + ln) % n; p != ps; p = (p + 1) % n {
		v = s.t.At(p)
		out = append(out, v)
		if v == u {
			if reversed {
				for q := s.t.Pos(sL); ; q-- {
					if q < 0 {
						q = n - 1
					}
					out = append(out, s.t.At(q))
					if s.t.At(q) == s1 {
						break
					}
				}
			} else {
				for q := ps; ; q = (q + 1) % n {
					out = append(out, s.t.At(q))
					if s.t.At(q) == sL {
						break
					}
				}
			}
		}
	}

	s.t.setSequence(out)
}
