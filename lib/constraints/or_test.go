package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestOrConstraintEliminatesCandidatesNotKeptByAnySubboard(t *testing.T) {
	b := lib.NewBoard(4)

	sbA := b.SubboardClone()
	require.Equal(t, lib.CHANGED, sbA.SetAsGiven(0, 1))
	sbB := b.SubboardClone()
	require.Equal(t, lib.CHANGED, sbB.SetAsGiven(0, 2))

	b.AddConstraint(NewOrConstraint("case-split", []int{0}, []*lib.Board{sbA, sbB}))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())

	require.True(t, b.HasCandidate(0, 1))
	require.True(t, b.HasCandidate(0, 2))
	require.False(t, b.HasCandidate(0, 3))
	require.False(t, b.HasCandidate(0, 4))
}

func TestOrConstraintInvalidWhenNoDisjunctSurvives(t *testing.T) {
	b := lib.NewBoard(4)
	require.Equal(t, lib.CHANGED, b.SetAsGiven(0, 1))

	sbA := b.SubboardClone()
	require.Equal(t, lib.INVALID, sbA.SetAsGiven(0, 2))

	b.AddConstraint(NewOrConstraint("dead-end", []int{0}, []*lib.Board{sbA}))
	require.Equal(t, lib.INVALID, b.FinalizeConstraints())
}
