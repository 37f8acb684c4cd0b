package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subsetdp/matrix"
)

// BruteForceMaxNodes caps BruteForce at (n−1)! ≈ 3.6M tours.
const BruteForceMaxNodes = 11

// BruteForce enumerates every tour from start in lexicographic order of the
// remaining nodes and returns the cheapest one. The first optimum found wins
// ties. It is a reference for checking Solver on small inputs.
//
// Errors: the same validation sentinels as New (ErrTooLarge above
// BruteForceMaxNodes), and ErrIncompleteGraph when every tour uses a +Inf edge.
//
// Complexity: O(n·n!) time, O(n) space.
func BruteForce(dist matrix.Matrix, start int) (TSResult, error) {
	flat, n, err := validateDist(dist, start)
	if err != nil {
		return TSResult{}, err
	}
	if n > BruteForceMaxNodes {
		return TSResult{}, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, BruteForceMaxNodes)
	}

	perm := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			perm = append(perm, v)
		}
	}

	var (
		best     = math.Inf(1)
		bestTour = make([]int, n+1)
		c        float64
		prev     int
	)
	for {
		c, prev = 0, start
		for _, v := range perm {
			c += flat[prev*n+v]
			prev = v
		}
		c += flat[prev*n+start]
		if c < best {
			best = c
			copy(bestTour[1:n], perm)
		}
		if !nextPermutation(perm) {
			break
		}
	}
	if math.IsInf(best, 1) {
		return TSResult{}, ErrIncompleteGraph
	}
	bestTour[0], bestTour[n] = start, start

	return TSResult{Tour: bestTour, Cost: best}, nil
}
