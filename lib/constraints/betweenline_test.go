package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestBetweenLineRestrictsMiddleToStrictlyBetweenEndpoints(t *testing.T) {
	b := lib.NewBoard(5)
	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 1))
	require.Equal(t, lib.CHANGED, b.SetAsGiven(1, 5))
	b.AddConstraint(NewBetweenLineConstraint(5, 0, 1, []int{2}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())

	require.False(t, b.HasCandidate(2, 1))
	require.False(t, b.HasCandidate(2, 5))
	require.True(t, b.HasCandidate(2, 2))
	require.True(t, b.HasCandidate(2, 3))
	require.True(t, b.HasCandidate(2, 4))
}

func TestBetweenLineSelfDeletesIntoOr(t *testing.T) {
	b := lib.NewBoard(5)
	b.AddConstraint(NewBetweenLineConstraint(5, 0, 1, []int{2}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Len(t, b.Constraints(), 1)
}
