package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestFixedSumSingleCellBecomesGiven(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewFixedSumConstraint("single", 4, []int{0}, 3))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsGiven(0))
	require.Equal(t, 3, b.GetValue(0))
}

func TestFixedSumTwoCellsForbidsNonMatchingPairs(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewFixedSumConstraint("pair", 4, []int{0, 1}, 5))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 1, 4)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 4, 4)))
}

func TestFixedSumThreeCellsUnreachableIsInvalid(t *testing.T) {
	b := lib.NewBoard(4)
	// three cells sum to at least 1+1+1 = 3 (a fixed sum alone does not make
	// them distinct), so 2 is out of reach
	b.AddConstraint(NewFixedSumConstraint("triple", 4, []int{0, 1, 2}, 2))
	require.Equal(t, lib.INVALID, b.FinalizeConstraints())
}

func TestEqualSumConstraintRestrictsOtherGroupToGivenSum(t *testing.T) {
	b := lib.NewBoard(4)
	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 2))
	b.AddConstraint(NewEqualSumConstraint("equal", 4, [][]int{{0}, {1}}, 0, false))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.HasCandidate(1, 2))
	require.False(t, b.HasCandidate(1, 1))
	require.False(t, b.HasCandidate(1, 3))
	require.False(t, b.HasCandidate(1, 4))
}

func TestEqualSumConstraintWithOffsetGroupReducesToFixedSum(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewEqualSumConstraint("offset", 4, [][]int{{0, 1}, {}}, 5, true))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 1, 4)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 4, 4)))
}
