package sumgroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

func rowBoard(n int) *lib.Board {
	b := lib.NewBoard(n)
	cells := make([]int, n)
	for i := range cells {
		cells[i] = i
	}
	b.AddRegion("row0", cells, "row", "")
	return b
}

func TestMinMaxSumFullGroup(t *testing.T) {
	b := rowBoard(9)
	g := New([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, 0)
	min, max := g.MinMaxSum(b)
	require.Equal(t, 45, min)
	require.Equal(t, 45, max)
}

func TestMinMaxSumSingleCell(t *testing.T) {
	b := rowBoard(9)
	b.ClearCellMask(0, bitutil.MaskFromValues([]int{5, 6, 7, 8, 9}))
	g := New([]int{0}, 0)
	min, max := g.MinMaxSum(b)
	require.Equal(t, 1, min)
	require.Equal(t, 4, max)
}

func TestPossibleSumsTwoCellPair(t *testing.T) {
	b := rowBoard(9)
	g := New([]int{0, 1}, 0)
	sums := g.PossibleSums(b)
	require.Contains(t, sums, 3) // {1,2}
	require.Contains(t, sums, 17)
	require.NotContains(t, sums, 2) // can't both be 1
}

func TestIsSumPossible(t *testing.T) {
	b := rowBoard(9)
	g := New([]int{0, 1}, 0)
	require.True(t, g.IsSumPossible(b, 3))
	require.False(t, g.IsSumPossible(b, 1))
}

func TestRestrictSumsFixedSumFive(t *testing.T) {
	b := rowBoard(9)
	g := New([]int{0, 1}, 0)
	res := g.RestrictSums(b, []int{5})
	require.Equal(t, lib.CHANGED, res)
	require.Equal(t, bitutil.MaskFromValues([]int{1, 2, 3, 4}), b.CandidateMask(0))
	require.Equal(t, bitutil.MaskFromValues([]int{1, 2, 3, 4}), b.CandidateMask(1))
}

func TestRestrictSumsNoRealizationIsInvalid(t *testing.T) {
	b := rowBoard(4)
	g := New([]int{0, 1}, 0)
	res := g.RestrictSums(b, []int{100})
	require.Equal(t, lib.INVALID, res)
}

func TestRestrictSumsIsMemoizedAndIdempotent(t *testing.T) {
	b := rowBoard(9)
	g := New([]int{0, 1}, 0)
	require.Equal(t, lib.CHANGED, g.RestrictSums(b, []int{5}))
	require.Equal(t, lib.UNCHANGED, g.RestrictSums(b, []int{5}))
}
