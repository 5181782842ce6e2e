// Package oracle — dense matrix oracle.
//
// Matrix is an n×n cost table stored row-major in a flat slice (same layout
// as the linearized weight buffers used by the search hot paths).
package oracle

import "math"

// Matrix is a dense, immutable distance oracle over n nodes.
// The zero value is not usable; construct via NewMatrix.
type Matrix struct {
	n         int       // node count (matrix order)
	w         []float64 // flat row-major costs, length n*n
	symmetric bool      // detected once at construction
}

// NewMatrix builds a dense oracle from row slices.
//
// Validation (all before any value is stored):
//   - rows must form a square n×n matrix with n ≥ 1 (ragged ⇒ ErrNonSquare),
//   - NaN entries ⇒ ErrInvalidWeight,
//   - negative entries ⇒ ErrNegativeWeight,
//   - +Inf is allowed off-diagonal and encodes a missing edge.
//
// Symmetry is decided here (|w[i][j]−w[j][i]| ≤ 1e-12 for all pairs) so
// that later Symmetric() calls are O(1).
//
// Complexity: O(n²) time and space.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrNonSquare
	}

	var (
		i, j int
		x    float64
		w    = make([]float64, n*n)
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if math.IsNaN(x) {
				return nil, ErrInvalidWeight
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	// Symmetry detection over the upper triangle.
	var (
		sym  = true
		diff float64
	)
	for i = 0; i < n && sym; i++ {
		for j = i + 1; j < n; j++ {
			diff = w[i*n+j] - w[j*n+i]
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				sym = false

				break
			}
		}
	}

	return &Matrix{n: n, w: w, symmetric: sym}, nil
}

// N reports the node count. Complexity: O(1).
func (m *Matrix) N() int { return m.n }

// Cost returns the cost of the directed edge i→j.
// Out-of-range indices yield ErrIndexOutOfBounds. Complexity: O(1).
func (m *Matrix) Cost(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}

	return m.w[i*m.n+j], nil
}

// Symmetric reports whether cost(i,j) == cost(j,i) for all pairs,
// as detected at construction. Complexity: O(1).
func (m *Matrix) Symmetric() bool { return m.symmetric }
