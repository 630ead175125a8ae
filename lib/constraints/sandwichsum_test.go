package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestSandwichSumForcesMiddleCellWhenOnlyEndPlacementsFit(t *testing.T) {
	b := lib.NewBoard(3)
	// on a 3-cell line the only placements of 1 and 3 that leave a
	// nonzero gap are the two ends, forcing the middle cell to 2
	b.AddConstraint(NewSandwichSumConstraint(3, []int{0, 1, 2}, 2))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())

	require.True(t, b.IsGiven(1))
	require.Equal(t, 2, b.GetValue(1))
	require.False(t, b.HasCandidate(0, 2))
	require.False(t, b.HasCandidate(2, 2))
}

func TestSandwichSumInvalidWhenNoPlacementFits(t *testing.T) {
	b := lib.NewBoard(3)
	// target 5 is out of range for the single-cell gap and nonzero for
	// the zero-gap placements, so every candidate placement is rejected
	b.AddConstraint(NewSandwichSumConstraint(3, []int{0, 1, 2}, 5))
	require.Equal(t, lib.INVALID, b.FinalizeConstraints())
}
