package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetdp/builder"
	"github.com/katalvlaran/subsetdp/tsp"
)

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 3, 2}, 4, 2))

	tests := []struct {
		name  string
		tour  []int
		n     int
		start int
		want  error
	}{
		{"short", []int{0, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"zero n", []int{0}, 0, 0, tsp.ErrDimensionMismatch},
		{"bad start", []int{0, 1, 2, 0}, 3, 5, tsp.ErrStartOutOfRange},
		{"not closed", []int{0, 1, 2, 1}, 3, 0, tsp.ErrDimensionMismatch},
		{"wrong start", []int{1, 0, 2, 1}, 3, 0, tsp.ErrDimensionMismatch},
		{"repeat", []int{0, 1, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"out of range", []int{0, 1, 7, 0}, 3, 0, tsp.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tsp.ValidateTour(tc.tour, tc.n, tc.start), tc.want)
		})
	}
}

func TestTourCost(t *testing.T) {
	dist := mustDense(t, [][]float64{
		{0, 1, 5},
		{2, 0, 3},
		{4, math.Inf(1), 0},
	})

	c, err := tsp.TourCost(dist, []int{0, 1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 8.0, c)

	// Directed: the reverse tour uses different arcs.
	_, err = tsp.TourCost(dist, []int{0, 2, 1, 0})
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)

	_, err = tsp.TourCost(dist, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.TourCost(dist, []int{0, 3})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.TourCost(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	rect := mustDense(t, [][]float64{{0, 1, 1}, {1, 0, 1}})
	_, err = tsp.TourCost(rect, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	nan := mustDense(t, [][]float64{{0, math.NaN()}, {1, 0}})
	_, err = tsp.TourCost(nan, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrInvalidCost)
}

func TestTourCostMatchesSolverExactly(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		dist, err := builder.Complete(10, builder.UniformWeightFn(0.1, 3.7), seed)
		require.NoError(t, err)
		s, err := tsp.New(dist)
		require.NoError(t, err)

		res, err := s.Result()
		require.NoError(t, err)
		got, err := tsp.TourCost(dist, res.Tour)
		require.NoError(t, err)
		require.Equal(t, res.Cost, got, "seed=%d", seed)
	}
}

func TestEqualToursModuloDirection(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	require.True(t, tsp.EqualToursModuloDirection(a, []int{0, 1, 2, 3, 0}))
	require.True(t, tsp.EqualToursModuloDirection(a, []int{0, 3, 2, 1, 0}))
	require.False(t, tsp.EqualToursModuloDirection(a, []int{0, 2, 1, 3, 0}))
	require.False(t, tsp.EqualToursModuloDirection(a, []int{0, 1, 2, 0}))
}
