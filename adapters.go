// Package elkai — input/output adapters.
//
// DistanceMatrix and Coordinates2D turn caller-supplied matrices or named
// coordinate maps into the canonical zero-based oracle and map the engine's
// index tour back to caller labels. The engine never sees labels.
package elkai

import (
	"errors"
	"sort"

	"github.com/HellOwhatAs/elkai-go/oracle"
	"github.com/HellOwhatAs/elkai-go/tsp"
)

// ErrTooFewCities indicates an instance with fewer than 3 cities.
var ErrTooFewCities = errors.New("elkai: at least 3 cities required")

// DistanceMatrix is a TSP instance described by an n×n cost matrix.
// Asymmetric matrices select the asymmetric move set automatically.
type DistanceMatrix struct {
	o *oracle.Matrix
}

// NewDistanceMatrix validates the matrix shape and values up front
// (square, no NaN, no negative costs) and returns the instance.
func NewDistanceMatrix(distances [][]float64) (*DistanceMatrix, error) {
	o, err := oracle.NewMatrix(distances)
	if err != nil {
		return nil, err
	}
	if o.N() < 3 {
		return nil, ErrTooFewCities
	}

	return &DistanceMatrix{o: o}, nil
}

// Solve returns the best tour found as zero-based indices starting at
// city 0, open form (no repeated closing index). runs is the number of
// independent restarts and must be ≥ 1.
func (m *DistanceMatrix) Solve(runs int) ([]int, error) {
	opts := tsp.DefaultOptions()
	opts.Runs = runs

	res, err := tsp.Solve(m.o, opts)
	if err != nil {
		return nil, err
	}

	return res.Tour[:len(res.Tour)-1], nil
}

// Coordinates2D is a TSP instance described by named 2D points
// {"city": {x, y}, ...}. Costs are exact Euclidean distances.
type Coordinates2D struct {
	names []string
	o     *oracle.Euclid
}

// NewCoordinates2D builds the instance with a stable label↔index mapping:
// labels are indexed in sorted order, so equal inputs always produce equal
// tours regardless of map iteration order.
func NewCoordinates2D(coords map[string][2]float64) (*Coordinates2D, error) {
	if len(coords) < 3 {
		return nil, ErrTooFewCities
	}

	names := make([]string, 0, len(coords))
	for name := range coords {
		names = append(names, name)
	}
	sort.Strings(names)

	pts := make([][2]float64, len(names))
	for i, name := range names {
		pts[i] = coords[name]
	}
	o, err := oracle.NewEuclid(pts, oracle.RoundNone)
	if err != nil {
		return nil, err
	}

	return &Coordinates2D{names: names, o: o}, nil
}

// Solve returns the best tour found as city names, open form, starting at
// the lexicographically first city. runs must be ≥ 1.
func (c *Coordinates2D) Solve(runs int) ([]string, error) {
	opts := tsp.DefaultOptions()
	opts.Runs = runs

	res, err := tsp.Solve(c.o, opts)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(c.names))
	for _, idx := range res.Tour[:len(res.Tour)-1] {
		out = append(out, c.names[idx])
	}

	return out, nil
}
