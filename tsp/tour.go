// Tour representation: a single Hamiltonian cycle over nodes 0..n-1 with
// O(1) successor/predecessor/position queries and O(segment) reversal.
//
// Representation: order[p] is the node at cyclic position p, pos[v] is the
// inverse index. The cycle is stored open (length n); closure is implied
// between order[n-1] and order[0].
//
// Invariant preserved after every mutation: order is a permutation of
// 0..n-1 and pos is its exact inverse — i.e. the tour remains one cycle
// visiting every node exactly once. Mutations assume already-validated
// arguments; feeding garbage positions is a programming error and panics
// via bounds checks rather than returning a recoverable error.
package tsp

// Tour is a mutable Hamiltonian cycle. Construct via NewTour; the zero
// value is not usable.
type Tour struct {
	order []int // order[p] = node at position p, length n
	pos   []int // pos[v] = position of node v, inverse of order
}

// NewTour builds a tour from a sequence that must be a permutation of
// 0..n-1 with n ≥ 3. The sequence is copied. Violations yield ErrBadTour.
//
// Complexity: O(n) time and space.
func NewTour(seq []int) (*Tour, error) {
	n := len(seq)
	if n < 3 {
		return nil, ErrBadTour
	}

	var (
		t = &Tour{
			order: make([]int, n),
			pos:   make([]int, n),
		}
		p, v int
	)
	for p = range t.pos {
		t.pos[p] = -1
	}
	for p = 0; p < n; p++ {
		v = seq[p]
		if v < 0 || v >= n || t.pos[v] != -1 {
			return nil, ErrBadTour
		}
		t.order[p] = v
		t.pos[v] = p
	}

	return t, nil
}

// Len reports the number of nodes on the cycle. Complexity: O(1).
func (t *Tour) Len() int { return len(t.order) }

// Next returns the successor of node v on the cycle. Complexity: O(1).
func (t *Tour) Next(v int) int {
	p := t.pos[v] + 1
	if p == len(t.order) {
		p = 0
	}

	return t.order[p]
}

// Prev returns the predecessor of node v on the cycle. Complexity: O(1).
func (t *Tour) Prev(v int) int {
	p := t.pos[v]
	if p == 0 {
		p = len(t.order)
	}

	return t.order[p-1]
}

// Pos returns the sequence position of node v in [0..n-1]. Complexity: O(1).
func (t *Tour) Pos(v int) int { return t.pos[v] }

// At returns the node at cyclic position p (p taken modulo n must already
// hold: 0 ≤ p < n). Complexity: O(1).
func (t *Tour) At(p int) int { return t.order[p] }

// Between reports whether node b lies strictly inside the successor path
// from a to c (a, b, c pairwise distinct). Used to decide move feasibility
// and orientation.
//
// Complexity: O(1) via position arithmetic.
func (t *Tour) Between(a, b, c int) bool {
	var (
		n  = len(t.order)
		pa = t.pos[a]
		rb = t.pos[b] - pa
		rc = t.pos[c] - pa
	)
	if rb < 0 {
		rb += n
	}
	if rc < 0 {
		rc += n
	}

	return rb > 0 && rb < rc
}

// Reverse flips the orientation of the cyclic position segment [i..j]
// (inclusive, wrapping allowed) and repairs pos. Applying Reverse twice
// with the same bounds restores the tour exactly.
//
// Complexity: O(segment length) time, O(1) space.
func (t *Tour) Reverse(i, j int) {
	var (
		n     = len(t.order)
		size  = j - i
		steps int
	)
	if size < 0 {
		size += n
	}
	size++ // inclusive segment length

	for steps = size / 2; steps > 0; steps-- {
		ui, uj := t.order[i], t.order[j]
		t.order[i], t.order[j] = uj, ui
		t.pos[uj], t.pos[ui] = i, j

		if i++; i == n {
			i = 0
		}
		if j--; j < 0 {
			j = n - 1
		}
	}
}

// Sequence returns an independent copy of the open node order.
// Complexity: O(n).
func (t *Tour) Sequence() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)

	return out
}

// Closed returns a fresh closed tour of length n+1 rotated so that
// out[0] == out[n] == start.
//
// Complexity: O(n) time and space.
func (t *Tour) Closed(start int) []int {
	var (
		n     = len(t.order)
		pivot = t.pos[start]
		out   = make([]int, n+1)
		i     int
	)
	for i = 0; i < n; i++ {
		out[i] = t.order[(pivot+i)%n]
	}
	out[n] = start

	return out
}

// Validate re-checks the cycle invariant from scratch: order must be a
// permutation of 0..n-1 and pos its exact inverse. Intended for tests and
// defensive post-conditions; the engine keeps the invariant incrementally.
//
// Complexity: O(n) time and space.
func (t *Tour) Validate() error {
	n := len(t.order)
	if n < 3 || len(t.pos) != n {
		return ErrBadTour
	}
	seen := make([]bool, n)

	var p, v int
	for p = 0; p < n; p++ {
		v = t.order[p]
		if v < 0 || v >= n || seen[v] {
			return ErrBadTour
		}
		if t.pos[v] != p {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}

// setSequence overwrites the tour with a new node order and repairs pos.
// The caller guarantees seq is a permutation of 0..n-1 (engine-internal
// rewrites only); len(seq) must equal Len.
//
// Complexity: O(n).
func (t *Tour) setSequence(seq []int) {
	copy(t.order, seq)
	for p, v := range t.order {
		t.pos[v] = p
	}
}
