package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestSingleCellOddEliminatesEvenValues(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewSingleCellConstraint(4, 0, "odd"))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	require.True(t, b.HasCandidate(0, 1))
	require.True(t, b.HasCandidate(0, 3))
	require.False(t, b.HasCandidate(0, 2))
	require.False(t, b.HasCandidate(0, 4))
}

func TestSingleCellMaximumRestrictsToN(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewSingleCellConstraint(4, 0, "maximum"))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsGiven(0))
	require.Equal(t, 4, b.GetValue(0))
}

func TestSingleCellMinimumRestrictsToOne(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewSingleCellConstraint(4, 0, "minimum"))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsGiven(0))
	require.Equal(t, 1, b.GetValue(0))
}
