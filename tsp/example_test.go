package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/subsetdp/tsp"
)

// ExampleSolver finds the only cheap round trip in a directed six-node graph.
func ExampleSolver() {
	const far = 10000
	dist := make([][]float64, 6)
	for i := range dist {
		dist[i] = []float64{far, far, far, far, far, far}
	}
	dist[5][0] = 10
	dist[1][5] = 12
	dist[4][1] = 2
	dist[2][4] = 4
	dist[3][2] = 6
	dist[0][3] = 8

	s, err := tsp.NewFromRows(dist, tsp.WithStart(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tour, _ := s.Tour()
	cost, _ := s.TourCost()

	fmt.Println("tour:", tour)
	fmt.Println("cost:", cost)
	// Output:
	// tour: [0 3 2 4 1 5 0]
	// cost: 42
}

// ExampleNewFromRows shows the rejection of a trivially small instance.
func ExampleNewFromRows() {
	_, err := tsp.NewFromRows([][]float64{{0, 1}, {1, 0}})
	fmt.Println(err)
	// Output:
	// tsp: invalid argument: n <= 2 not yet supported: n=2
}
