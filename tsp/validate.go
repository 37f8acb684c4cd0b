// Package tsp - input validation shared by the Held–Karp and brute-force solvers.
//
// Checks run in a fixed order so the reported sentinel is stable:
// size (n ≤ 2) → shape → start range → size cap → numeric policy.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subsetdp/matrix"
)

// validateDist verifies dist and start and returns a flat row-major copy of dist with n.
//
// Contract:
//   - n is taken from the column count; n ≤ 2 is rejected first.
//   - Rows must equal n.
//   - start ∈ [0, n).
//   - n ≤ MaxNodes.
//   - Off-diagonal entries may be finite or +Inf; NaN and −Inf are rejected.
//
// Complexity: O(n²).
func validateDist(dist matrix.Matrix, start int) ([]float64, int, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return nil, 0, ErrNilMatrix
	}

	n := dist.Cols()
	if n <= 2 {
		return nil, 0, fmt.Errorf("%w: n=%d", ErrTooSmall, n)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, 0, fmt.Errorf("%w: %d x %d", ErrNonSquare, dist.Rows(), n)
	}
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}
	if n > MaxNodes {
		return nil, 0, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, MaxNodes)
	}

	flat, _, _, err := matrix.Flatten(dist)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if err = matrix.ValidateDistances(dist); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}

	return flat, n, nil
}

// fromRows adapts a [][]float64 into a matrix.Matrix, mapping the shape
// failures of matrix.NewDenseFromRows onto this package's sentinels.
func fromRows(rows [][]float64) (matrix.Matrix, error) {
	if rows == nil {
		return nil, ErrNilMatrix
	}
	// n comes from the first row, as in validateDist.
	if len(rows) == 0 || len(rows[0]) <= 2 {
		n := 0
		if len(rows) > 0 {
			n = len(rows[0])
		}

		return nil, fmt.Errorf("%w: n=%d", ErrTooSmall, n)
	}
	d, err := matrix.NewDenseFromRows(rows)
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return d, nil
}
