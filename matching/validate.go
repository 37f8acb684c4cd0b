package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/subsetdp/matrix"
)

// validateCost checks shape, parity, size and numeric policy, in that order,
// and returns a flat row-major copy of cost together with n.
// Diagonal entries are never read by the solver and are not checked.
//
// Complexity: O(n²).
func validateCost(cost matrix.Matrix, symTol float64) ([]float64, int, error) {
	if err := matrix.ValidateSquareNonNil(cost); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, 0, ErrNilMatrix
		}
		if cost.Rows() == 0 || cost.Cols() == 0 {
			return nil, 0, ErrEmptyMatrix
		}

		return nil, 0, fmt.Errorf("%w: %d x %d", ErrNonSquare, cost.Rows(), cost.Cols())
	}

	n := cost.Rows()
	switch {
	case n == 0:
		return nil, 0, ErrEmptyMatrix
	case n%2 != 0:
		return nil, 0, fmt.Errorf("%w: n=%d", ErrOddSize, n)
	case n > MaxNodes:
		return nil, 0, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, MaxNodes)
	}

	flat, _, _, err := matrix.Flatten(cost)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if err = matrix.ValidateFinite(cost); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}

	if err = matrix.ValidateSymmetric(cost, symTol); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrAsymmetric, err)
	}

	return flat, n, nil
}

// fromRows adapts a [][]float64 into a matrix.Matrix, mapping the shape
// failures of matrix.NewDenseFromRows onto this package's sentinels.
func fromRows(rows [][]float64) (matrix.Matrix, error) {
	if rows == nil {
		return nil, ErrNilMatrix
	}
	d, err := matrix.NewDenseFromRows(rows)
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return nil, ErrEmptyMatrix
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return d, nil
}
