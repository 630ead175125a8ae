package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestLockoutRestrictsMiddleOutsideEndpointSpan(t *testing.T) {
	b := lib.NewBoard(9)
	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 2))
	require.Equal(t, lib.CHANGED, b.SetAsGiven(1, 7))
	b.AddConstraint(NewLockoutConstraint(9, 4, 0, 1, []int{2}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())

	require.True(t, b.HasCandidate(2, 1))
	require.True(t, b.HasCandidate(2, 8))
	require.True(t, b.HasCandidate(2, 9))
	for v := 2; v <= 7; v++ {
		require.Falsef(t, b.HasCandidate(2, v), "value %d should be excluded from the middle cell", v)
	}
}

func TestLockoutInvalidWhenEndpointsTooClose(t *testing.T) {
	b := lib.NewBoard(9)
	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 4))
	require.Equal(t, lib.CHANGED, b.SetAsGiven(1, 5))
	b.AddConstraint(NewLockoutConstraint(9, 4, 0, 1, []int{2}))
	require.Equal(t, lib.INVALID, b.FinalizeConstraints())
}
