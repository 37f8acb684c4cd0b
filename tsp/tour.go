// Package tsp - tour utilities shared by the Held–Karp and brute-force solvers.
//
// Helpers operate on tour structure only (index sequences):
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - EqualToursModuloDirection: equality of closed tours up to reversal.
//   - nextPermutation: lexicographic successor, used by BruteForce.
package tsp

import "fmt"

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Errors: ErrStartOutOfRange for a bad start, ErrDimensionMismatch otherwise.
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: len(tour)=%d, n=%d", ErrDimensionMismatch, len(tour), n)
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour must begin and end at %d", ErrDimensionMismatch, start)
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d out of range", ErrDimensionMismatch, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d visited twice", ErrDimensionMismatch, v)
		}
		seen[v] = true
	}

	return nil
}

// EqualToursModuloDirection reports whether closed tours a and b are equal
// as given or with b traversed backwards. Both must share the same start.
//
// Complexity: O(n).
func EqualToursModuloDirection(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	fwd, bwd := true, true
	for i := 0; i < n && (fwd || bwd); i++ {
		if a[i] != b[i] {
			fwd = false
		}
		if a[i] != b[n-1-i] {
			bwd = false
		}
	}

	return fwd || bwd
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false (leaving p sorted descending) when p was already the last one.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
