package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subsetdp/matrix"
)

// BruteForceMaxNodes caps BruteForce: (n−1)!! pairings grow past 10⁹ at n=20.
const BruteForceMaxNodes = 16

// BruteForce finds a minimum-weight perfect matching by trying every pairing.
// It accepts the same input as New and serves as a reference for checking
// the DP on small instances.
//
// The returned matching uses the layout of Solver.Matching.
//
// Complexity: O(n·(n−1)!!) time, O(n) space.
func BruteForce(cost matrix.Matrix) (float64, []int, error) {
	flat, n, err := validateCost(cost, DefaultSymmetryTolerance)
	if err != nil {
		return 0, nil, err
	}
	if n > BruteForceMaxNodes {
		return 0, nil, fmt.Errorf("%w: brute force supports n ≤ %d, got %d", ErrTooLarge, BruteForceMaxNodes, n)
	}

	var (
		used    = make([]bool, n)
		current = make([]int, 0, n)
		best    = math.Inf(1)
		bestSeq []int
		rec     func(acc float64)
	)
	rec = func(acc float64) {
		// The lowest unused node must be paired with someone; fixing it
		// avoids enumerating the same pairing in several orders.
		u := -1
		for i := 0; i < n; i++ {
			if !used[i] {
				u = i
				break
			}
		}
		if u < 0 {
			if acc < best {
				best = acc
				bestSeq = append(bestSeq[:0], current...)
			}
			return
		}
		used[u] = true
		for v := u + 1; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			current = append(current, u, v)
			rec(acc + flat[u*n+v])
			current = current[:len(current)-2]
			used[v] = false
		}
		used[u] = false
	}
	rec(0)

	return best, bestSeq, nil
}
