// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetdp/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", mustDense(t, [][]float64{{0}}), nil},
		{"2x2", mustDense(t, [][]float64{{0, 1}, {1, 0}}), nil},
		{"2x3", mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 2}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	near := mustDense(t, [][]float64{{0, 1}, {1 + 1e-12, 0}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-9), "negative tol is taken by absolute value")
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)

	asym := mustDense(t, [][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-9), matrix.ErrAsymmetry)

	nan := mustDense(t, [][]float64{{0, math.NaN()}, {math.NaN(), 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(nan, 1), matrix.ErrAsymmetry)

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(mustDense(t, [][]float64{{0, 1}}), 0), matrix.ErrNonSquare)
}

func TestValidateFiniteAndDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		v            float64
		wantFinite   error
		wantDistance error
	}{
		{"zero", 0, nil, nil},
		{"negative", -3, nil, nil},
		{"+Inf", math.Inf(1), matrix.ErrNaNInf, nil},
		{"-Inf", math.Inf(-1), matrix.ErrNaNInf, matrix.ErrNaNInf},
		{"NaN", math.NaN(), matrix.ErrNaNInf, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustDense(t, [][]float64{{0, tc.v}, {1, 0}})

			err := matrix.ValidateFinite(m)
			if tc.wantFinite == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantFinite)
			}

			err = matrix.ValidateDistances(m)
			if tc.wantDistance == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantDistance)
			}
		})
	}

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

func TestValidateFiniteSkipsDiagonal(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]float64{
		{math.NaN(), 1, 2},
		{1, math.Inf(-1), 3},
		{2, 3, math.Inf(1)},
	})
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateDistances(m))

	bad := mustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, math.NaN(), 0}})
	err := matrix.ValidateFinite(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(2,1)")
}
