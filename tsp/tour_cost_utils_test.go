package tsp_test

import (
	"math"
	"testing"

	"github.com/planvo/tourkit/tsp"
	"github.com/stretchr/testify/require"
)

func TestTourCost_IncludesWraparound(t *testing.T) {
	// Two cities, one edge of weight 5: 5 out plus 5 back.
	cost, err := tsp.TourCost(twoCities(), []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 10.0, cost)
}

func TestTourCost_SquarePerimeter(t *testing.T) {
	cost, err := tsp.TourCost(squareCorners(), []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 40.0, cost, epsCost)
}

func TestTourCost_SingleNodeIsZero(t *testing.T) {
	// A one-node prefix wraps onto itself; the diagonal is zero.
	cost, err := tsp.TourCost(twoCities(), []int{1})
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

func TestTourCost_MissingEdgeYieldsInfinity(t *testing.T) {
	// 0-1 and 1-2 exist, the closing edge 2-0 does not: the cyclic
	// convention must price the tour at +Inf, not drop the edge.
	path := tsp.MatrixOracle{
		{0, 1, inf},
		{1, 0, 1},
		{inf, 1, 0},
	}
	cost, err := tsp.TourCost(path, []int{0, 1, 2})
	require.NoError(t, err)
	require.True(t, math.IsInf(cost, 1))
}

func TestTourCost_Sentinels(t *testing.T) {
	_, err := tsp.TourCost(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrNilOracle)

	_, err = tsp.TourCost(twoCities(), nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(twoCities(), []int{0, 2})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	nan := tsp.MatrixOracle{
		{0, math.NaN()},
		{math.NaN(), 0},
	}
	_, err = tsp.TourCost(nan, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidWeight)

	neg := tsp.MatrixOracle{
		{0, -3},
		{-3, 0},
	}
	_, err = tsp.TourCost(neg, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, tsp.ValidatePermutation([]int{2, 0, 1}, 3))

	// Wrong length, out-of-range element, duplicate.
	require.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1}, 3), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1, 3}, 3), tsp.ErrDimensionMismatch)
	require.ErrorIs(t, tsp.ValidatePermutation([]int{0, 1, 1}, 3), tsp.ErrDimensionMismatch)
}

func TestCopyTour_Independence(t *testing.T) {
	src := []int{0, 2, 1}
	dup := tsp.CopyTour(src)
	require.Equal(t, src, dup)

	dup[0] = 9
	require.Equal(t, 0, src[0])

	require.Nil(t, tsp.CopyTour(nil))
}
