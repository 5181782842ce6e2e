// Package elkai solves Travelling Salesman Problems (symmetric and
// asymmetric) with a native restart-controlled local-search engine.
//
// The package is a Go reconstruction of the elkai wrapper around Keld
// Helsgaun's LKH solver: the same two-call API, but with the heuristic
// core implemented natively — structured in-memory inputs instead of a
// text protocol, per-invocation state instead of a global solver mutex,
// so concurrent solves are safe.
//
// Two input shapes are supported:
//
//	// A city-to-city distance matrix (asymmetric allowed):
//	m, _ := elkai.NewDistanceMatrix([][]float64{
//	    {0, 4, 0},
//	    {0, 0, 5},
//	    {0, 0, 0},
//	})
//	tour, _ := m.Solve(10) // [0 2 1]
//
//	// Named 2D coordinates:
//	c, _ := elkai.NewCoordinates2D(map[string][2]float64{
//	    "city1": {0, 0},
//	    "city2": {0, 4},
//	    "city3": {5, 0},
//	})
//	names, _ := c.Solve(10) // ["city1" "city2" "city3"]
//
// The runs argument is the number of independent restarts; more runs give
// better tours at linear cost. For the full configuration surface
// (candidate lists, budgets, seeds, parallel restarts) use the tsp and
// oracle subpackages directly.
package elkai
