package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetdp/builder"
	"github.com/katalvlaran/subsetdp/matching"
)

func TestBruteForceKnownOptimum(t *testing.T) {
	cost, err := builder.Euclidean([][2]float64{{0, 0}, {10, 0}, {0, 1}, {10, 1}})
	require.NoError(t, err)

	got, seq, err := matching.BruteForce(cost)
	require.NoError(t, err)
	require.Equal(t, 2.0, got)
	require.Equal(t, []int{0, 2, 1, 3}, seq)
}

func TestBruteForceRejects(t *testing.T) {
	_, _, err := matching.BruteForce(nil)
	require.ErrorIs(t, err, matching.ErrNilMatrix)

	cost, err := builder.Symmetric(18, builder.IntegerWeightFn(10), 1)
	require.NoError(t, err)
	_, _, err = matching.BruteForce(cost)
	require.ErrorIs(t, err, matching.ErrTooLarge)
}
