package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subsetdp/builder"
	"github.com/katalvlaran/subsetdp/tsp"
)

func TestBruteForceKnownOptimum(t *testing.T) {
	res, err := tsp.BruteForce(mustDense(t, sixNodeRows(10000)), 0)
	require.NoError(t, err)
	require.Equal(t, 42.0, res.Cost)
	require.Equal(t, []int{0, 3, 2, 4, 1, 5, 0}, res.Tour)

	// Same cycle read from another start.
	res, err = tsp.BruteForce(mustDense(t, sixNodeRows(10000)), 4)
	require.NoError(t, err)
	require.Equal(t, 42.0, res.Cost)
	require.Equal(t, []int{4, 1, 5, 0, 3, 2, 4}, res.Tour)
}

func TestBruteForceRejects(t *testing.T) {
	_, err := tsp.BruteForce(nil, 0)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	_, err = tsp.BruteForce(mustDense(t, filled(3, 1)), 3)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	big, err := builder.Complete(tsp.BruteForceMaxNodes+1, builder.ConstantWeightFn(1), 1)
	require.NoError(t, err)
	_, err = tsp.BruteForce(big, 0)
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}
