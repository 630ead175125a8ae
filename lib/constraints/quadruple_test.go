package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestQuadrupleExpandsIntoOneCardinalityPerDigit(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewQuadrupleConstraint(4, []int{0, 1, 2, 3}, []int{2, 2, 3}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	// digit 2 required twice, digit 3 required once -> two Cardinality
	// constraints survive (each reduces further only when forced)
	require.Len(t, b.Constraints(), 2)
}

func TestQuadrupleSingleDigitForcesRemainingCellsWhenNoSlackRemains(t *testing.T) {
	b := lib.NewBoard(4)
	// digit 2 must appear twice; once cells 0 and 1 are fixed to 1, only
	// cells 2 and 3 can still carry it, so both are forced to 2
	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 1))
	require.Equal(t, lib.CHANGED, b.SetAsGiven(1, 1))
	b.AddConstraint(NewQuadrupleConstraint(4, []int{0, 1, 2, 3}, []int{2, 2}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	// finalize only registers the count; forcing the last two cells is a
	// logical step
	for _, c := range append([]lib.Constraint(nil), b.Constraints()...) {
		for _, d := range c.LogicalStep(b) {
			require.NotEqual(t, lib.INVALID, lib.ApplyDeduction(b, d))
		}
	}
	require.True(t, b.IsGiven(2))
	require.Equal(t, 2, b.GetValue(2))
	require.True(t, b.IsGiven(3))
	require.Equal(t, 2, b.GetValue(3))
}
