package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetdp/builder"
	"github.com/katalvlaran/subsetdp/matrix"
)

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestCompleteDeterministic(t *testing.T) {
	a, err := builder.Complete(6, builder.IntegerWeightFn(100), 42)
	require.NoError(t, err)
	b, err := builder.Complete(6, builder.IntegerWeightFn(100), 42)
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	for i := 0; i < 6; i++ {
		require.Zero(t, at(t, a, i, i))
		for j := 0; j < 6; j++ {
			v := at(t, a, i, j)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 100.0)
			require.Equal(t, math.Trunc(v), v)
		}
	}

	_, err = builder.Complete(0, builder.IntegerWeightFn(10), 1)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestSymmetric(t *testing.T) {
	m, err := builder.Symmetric(7, builder.UniformWeightFn(1, 5), 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			v := at(t, m, i, j)
			require.GreaterOrEqual(t, v, 1.0)
			require.Less(t, v, 5.0)
		}
	}
}

func TestCycle(t *testing.T) {
	m, err := builder.Cycle(5)
	require.NoError(t, err)
	require.Equal(t, 1.0, at(t, m, 0, 1))
	require.Equal(t, 1.0, at(t, m, 0, 4))
	require.Equal(t, 2.0, at(t, m, 0, 2))
	require.Equal(t, 2.0, at(t, m, 1, 4))
}

func TestEuclidean(t *testing.T) {
	m, err := builder.Euclidean([][2]float64{{0, 0}, {3, 4}, {0, 4}})
	require.NoError(t, err)
	require.Equal(t, 5.0, at(t, m, 0, 1))
	require.Equal(t, 5.0, at(t, m, 1, 0))
	require.Equal(t, 3.0, at(t, m, 1, 2))
	require.Equal(t, 4.0, at(t, m, 0, 2))

	_, err = builder.Euclidean(nil)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPlantedTour(t *testing.T) {
	tour := []int{2, 0, 3, 1, 2}
	m, err := builder.PlantedTour(4, tour, 5, 100)
	require.NoError(t, err)
	require.Equal(t, 5.0, at(t, m, 2, 0))
	require.Equal(t, 5.0, at(t, m, 0, 3))
	require.Equal(t, 5.0, at(t, m, 3, 1))
	require.Equal(t, 5.0, at(t, m, 1, 2))
	require.Equal(t, 100.0, at(t, m, 0, 2))
	require.Zero(t, at(t, m, 3, 3))

	_, err = builder.PlantedTour(4, []int{0, 1, 2, 3}, 5, 100)
	require.ErrorIs(t, err, builder.ErrInvalidTour)
	_, err = builder.PlantedTour(4, []int{0, 1, 1, 3, 0}, 5, 100)
	require.ErrorIs(t, err, builder.ErrInvalidTour)
	_, err = builder.PlantedTour(4, tour, math.NaN(), 100)
	require.ErrorIs(t, err, builder.ErrInvalidWeight)
}

func TestPairedPoints(t *testing.T) {
	pts, err := builder.PairedPoints(4, 7)
	require.NoError(t, err)
	require.Len(t, pts, 8)

	count := map[[2]float64]int{}
	for _, p := range pts {
		count[p]++
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, 1, count[[2]float64{float64(2 * i), 0}])
		require.Equal(t, 1, count[[2]float64{float64(2 * i), 1}])
	}
}

func TestWeightFnPanics(t *testing.T) {
	require.Panics(t, func() { builder.ConstantWeightFn(math.Inf(1)) })
	require.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	require.Panics(t, func() { builder.IntegerWeightFn(0) })

	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(0, 10)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.IntegerWeightFn(10)(nil))
	require.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(nil))
}
