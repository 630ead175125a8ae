package sumcells

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

func twoRowBoard(n int) *lib.Board {
	b := lib.NewBoard(n)
	row0 := make([]int, n)
	row1 := make([]int, n)
	for i := 0; i < n; i++ {
		row0[i] = i
		row1[i] = n + i
	}
	b.AddRegion("row0", row0, "row", "")
	b.AddRegion("row1", row1, "row", "")
	return b
}

func TestMinMaxSumAcrossIndependentGroups(t *testing.T) {
	b := twoRowBoard(9)
	// one cell from row0, one cell from row1: independent groups, each 1-9
	h := New([]int{0, 9}, 0)
	min, max := h.MinMaxSum(b)
	require.Equal(t, 2, min)
	require.Equal(t, 18, max)
}

func TestPossibleSumsKillerCageStyle(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddRegion("cage", []int{0, 1, 2}, "killer", "")
	h := New([]int{0, 1, 2}, 0)
	sums := h.PossibleSums(b)
	require.Contains(t, sums, 6) // {1,2,3}
	require.NotContains(t, sums, 2)
}

func TestRestrictSumsSingleIncompleteGroupIsExact(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddRegion("cage", []int{0, 1, 2}, "killer", "")
	h := New([]int{0, 1, 2}, 0)
	res := h.RestrictSums(b, []int{6})
	require.Equal(t, lib.CHANGED, res)
	require.Equal(t, 3, bitutil.PopCount(b.CandidateMask(0)))
}

func TestRestrictSumsInfeasibleIsInvalid(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddRegion("cage", []int{0, 1, 2}, "killer", "")
	h := New([]int{0, 1, 2}, 0)
	res := h.RestrictSums(b, []int{1})
	require.Equal(t, lib.INVALID, res)
}
