package elkai_test

import (
	"fmt"

	elkai "github.com/HellOwhatAs/elkai-go"
)

// A city-to-city distance matrix; asymmetric inputs are detected and
// solved with orientation-preserving moves.
func ExampleDistanceMatrix_Solve() {
	m, err := elkai.NewDistanceMatrix([][]float64{
		{0, 4, 0},
		{0, 0, 5},
		{0, 0, 0},
	})
	if err != nil {
		panic(err)
	}

	tour, err := m.Solve(10)
	if err != nil {
		panic(err)
	}
	fmt.Println(tour)
	// Output: [0 2 1]
}

// Named 2D coordinates; the tour comes back as city names.
func ExampleCoordinates2D_Solve() {
	c, err := elkai.NewCoordinates2D(map[string][2]float64{
		"city1": {0, 0},
		"city2": {0, 4},
		"city3": {5, 0},
	})
	if err != nil {
		panic(err)
	}

	tour, err := c.Solve(10)
	if err != nil {
		panic(err)
	}
	fmt.Println(tour)
	// Output: [city1 city2 city3]
}
