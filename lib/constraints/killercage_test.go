package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestKillerCageExpandsIntoRegionAndFixedSum(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewKillerCageConstraint(4, []int{0, 1}, 5))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	// distinctness from the region half
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 4), lib.NewCandidateIndex(1, 2, 4)))
	// sum-5 restriction from the fixed-sum half
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 1, 4)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 4, 4)))
}

func TestKillerCageWithoutTargetIsDistinctnessOnly(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewKillerCageConstraint(4, []int{0, 1}, 0))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 4), lib.NewCandidateIndex(1, 2, 4)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 4, 4)))
}

func TestLittleKillerReducesToFixedSumOverRay(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewLittleKillerConstraint(4, []int{0, 5, 10, 15}, 10))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	// the ray has 4 cells, so FixedSum keeps a live helper instead of
	// self-deleting further
	require.Len(t, b.Constraints(), 1)
	require.False(t, b.InvalidInit())
}
