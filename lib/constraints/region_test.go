package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestRowConstraintAddsRegionAndSelfDeletes(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewRowConstraint(4, 0))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 1, 4)))
}

func TestDiagonalConstraintPicksCorrectCells(t *testing.T) {
	b := lib.NewBoard(3)
	b.AddConstraint(NewDiagonalConstraint(3, false)) // main diagonal: 0,4,8
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 3), lib.NewCandidateIndex(4, 1, 3)))
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(4, 1, 3), lib.NewCandidateIndex(8, 1, 3)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(1, 1, 3), lib.NewCandidateIndex(3, 1, 3)))
}

func TestDisjointGroupsConstraintExpandsIntoOneRegionPerPosition(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewDisjointGroupsConstraint(4, 2, 2))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	// top-left position of every 2x2 box: cells 0, 2, 8, 10
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(2, 1, 4)))
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(10, 1, 4)))
}
