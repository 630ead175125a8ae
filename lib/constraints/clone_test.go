package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestCloneConstraintForcesEqualValues(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewCloneConstraint(4, []int{0, 1}, []int{8, 9}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())

	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 2))
	require.False(t, b.HasCandidate(8, 1))
	require.False(t, b.HasCandidate(8, 3))
	require.False(t, b.HasCandidate(8, 4))
	require.True(t, b.IsGiven(8))
	require.Equal(t, 2, b.GetValue(8))
}

func TestCloneConstraintMismatchedLengthsIsInvalid(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewCloneConstraint(4, []int{0, 1}, []int{8}))
	require.Equal(t, lib.INVALID, b.FinalizeConstraints())
}
