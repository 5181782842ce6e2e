// Package oracle — coordinate oracle.
//
// Euclid derives costs as Euclidean distances between 2D points under a
// configurable rounding policy.
package oracle

import "math"

// Rounding selects how a raw Euclidean distance becomes an edge cost.
//
// RoundNearest (the default) rounds to the nearest integer — the TSPLIB
// EUC_2D convention, keeping costs compatible with integer-cost solvers.
// RoundNone uses the exact floating-point distance.
type Rounding uint8

const (
	// RoundNearest rounds distances to the nearest integer (default).
	RoundNearest Rounding = iota

	// RoundNone keeps exact floating-point distances.
	RoundNone
)

// Euclid is an immutable 2D coordinate oracle. Costs are symmetric by
// construction. The zero value is not usable; construct via NewEuclid.
type Euclid struct {
	pts      [][2]float64 // private copy of the caller's points
	rounding Rounding
}

// NewEuclid builds a coordinate oracle from at least two points.
// The point slice is copied; later caller mutations do not leak in.
//
// Complexity: O(n) time and space.
func NewEuclid(points [][2]float64, rounding Rounding) (*Euclid, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	pts := make([][2]float64, len(points))
	copy(pts, points)

	return &Euclid{pts: pts, rounding: rounding}, nil
}

// N reports the node count. Complexity: O(1).
func (e *Euclid) N() int { return len(e.pts) }

// Cost returns the (possibly rounded) Euclidean distance between points
// i and j. Out-of-range indices yield ErrIndexOutOfBounds.
//
// Complexity: O(1).
func (e *Euclid) Cost(i, j int) (float64, error) {
	n := len(e.pts)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrIndexOutOfBounds
	}

	var (
		dx = e.pts[i][0] - e.pts[j][0]
		dy = e.pts[i][1] - e.pts[j][1]
		d  = math.Sqrt(dx*dx + dy*dy)
	)
	if e.rounding == RoundNearest {
		d = math.Round(d)
	}

	return d, nil
}

// Symmetric always reports true: Euclidean distance is symmetric.
// Complexity: O(1).
func (e *Euclid) Symmetric() bool { return true }
