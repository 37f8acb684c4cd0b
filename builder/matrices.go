package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subsetdp/matrix"
)

const (
	methodComplete     = "Complete"
	methodSymmetric    = "Symmetric"
	methodCycle        = "Cycle"
	methodEuclidean    = "Euclidean"
	methodPlantedTour  = "PlantedTour"
	methodPairedPoints = "PairedPoints"

	minNodes = 1
)

// Complete returns an n×n matrix where every off-diagonal entry is drawn
// independently from fn (a directed complete graph, generally asymmetric).
// Entries are filled row by row, so a fixed seed gives a fixed matrix.
//
// Complexity: O(n²).
func Complete(n int, fn WeightFn, seed int64) (*matrix.Dense, error) {
	if n < minNodes {
		return nil, builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodComplete, "%w", err)
	}
	rng := rngFromSeed(seed)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			_ = m.Set(i, j, fn(rng))
		}
	}

	return m, nil
}

// Symmetric returns an n×n matrix with cost[i][j] == cost[j][i] drawn from fn
// once per unordered pair, in lexicographic (i,j), i<j order.
//
// Complexity: O(n²).
func Symmetric(n int, fn WeightFn, seed int64) (*matrix.Dense, error) {
	if n < minNodes {
		return nil, builderErrorf(methodSymmetric, "n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodSymmetric, "%w", err)
	}
	rng := rngFromSeed(seed)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := fn(rng)
			_ = m.Set(i, j, w)
			_ = m.Set(j, i, w)
		}
	}

	return m, nil
}

// Cycle returns ring distances: cost[i][j] = min(|i−j|, n−|i−j|).
// The optimal tour walks the ring with cost n.
//
// Complexity: O(n²).
func Cycle(n int) (*matrix.Dense, error) {
	if n < minNodes {
		return nil, builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodCycle, "%w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := math.Abs(float64(i - j))
			_ = m.Set(i, j, math.Min(d, float64(n)-d))
		}
	}

	return m, nil
}

// Euclidean returns the pairwise Euclidean distances of points.
//
// Complexity: O(n²).
func Euclidean(points [][2]float64) (*matrix.Dense, error) {
	n := len(points)
	if n < minNodes {
		return nil, builderErrorf(methodEuclidean, "n=%d < min=%d: %w", n, minNodes, ErrTooFewVertices)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodEuclidean, "%w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(points[i][0]-points[j][0], points[i][1]-points[j][1])
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}

// PlantedTour returns a directed matrix where every entry is otherCost except
// the arcs of tour, which cost edgeCost. tour must be closed
// (tour[0] == tour[n]) and visit each of 0..n−1 exactly once.
// With edgeCost < otherCost the planted tour is the unique optimum,
// costing n·edgeCost.
//
// Complexity: O(n²).
func PlantedTour(n int, tour []int, edgeCost, otherCost float64) (*matrix.Dense, error) {
	if n < 2 {
		return nil, builderErrorf(methodPlantedTour, "n=%d < min=2: %w", n, ErrTooFewVertices)
	}
	for _, w := range []float64{edgeCost, otherCost} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, builderErrorf(methodPlantedTour, "weight %g: %w", w, ErrInvalidWeight)
		}
	}
	if err := checkClosedTour(n, tour); err != nil {
		return nil, builderErrorf(methodPlantedTour, "%w", err)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodPlantedTour, "%w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = m.Set(i, j, otherCost)
			}
		}
	}
	for k := 1; k < len(tour); k++ {
		_ = m.Set(tour[k-1], tour[k], edgeCost)
	}

	return m, nil
}

// checkClosedTour verifies len==n+1, closure and the permutation property.
func checkClosedTour(n int, tour []int) error {
	if len(tour) != n+1 || tour[0] != tour[n] {
		return fmt.Errorf("len=%d, want %d with tour[0]==tour[n]: %w", len(tour), n+1, ErrInvalidTour)
	}
	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("vertex %d repeated or out of range: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// PairedPoints lays out k vertical unit pairs (2i,0)–(2i,1), shuffled by seed,
// and returns the points. Neighbouring pairs sit 2 apart, so the optimal
// perfect matching joins every point with its vertical partner at total cost k.
//
// Complexity: O(k).
func PairedPoints(k int, seed int64) ([][2]float64, error) {
	if k < minNodes {
		return nil, builderErrorf(methodPairedPoints, "k=%d < min=%d: %w", k, minNodes, ErrTooFewVertices)
	}
	pts := make([][2]float64, 0, 2*k)
	for i := 0; i < k; i++ {
		pts = append(pts, [2]float64{float64(2 * i), 0}, [2]float64{float64(2 * i), 1})
	}
	rng := rngFromSeed(seed)
	rng.Shuffle(len(pts), func(a, b int) { pts[a], pts[b] = pts[b], pts[a] })

	return pts, nil
}
