// Package tsp - cost utilities shared by the Held–Karp and brute-force solvers.
//
// Sums are accumulated left to right along the tour, the same order the
// DP relaxes edges in, so TourCost(dist, Tour()) == TourCost() exactly.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subsetdp/matrix"
)

// TourCost sums dist[tour[i]][tour[i+1]] over consecutive positions of tour.
//
// Errors:
//   - ErrNilMatrix for nil dist, ErrNonSquare for a non-square one.
//   - ErrDimensionMismatch for len(tour) < 2 or an index outside [0, n).
//   - ErrIncompleteGraph when an edge of the tour is +Inf.
//   - ErrInvalidCost when an edge is NaN or −Inf.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("%w: %d x %d", ErrNonSquare, dist.Rows(), dist.Cols())
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: len(tour)=%d", ErrDimensionMismatch, len(tour))
	}

	var (
		n    = dist.Rows()
		sum  float64
		w    float64
		i    int
		u, v int
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: edge %d->%d, n=%d", ErrDimensionMismatch, u, v, n)
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
		}
		switch {
		case math.IsInf(w, 1):
			return 0, fmt.Errorf("%w: edge %d->%d", ErrIncompleteGraph, u, v)
		case math.IsNaN(w) || math.IsInf(w, -1):
			return 0, fmt.Errorf("%w: dist[%d][%d]=%g", ErrInvalidCost, u, v, w)
		}
		sum += w
	}

	return sum, nil
}
