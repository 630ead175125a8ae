package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestPairClueDifferenceAllowsOnlyMatchingGap(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddConstraint(NewPairClueConstraint(9, 0, 1, "difference", 3))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 9), lib.NewCandidateIndex(1, 2, 9)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 9), lib.NewCandidateIndex(1, 4, 9)))
}

func TestPairClueRatioAllowsEitherDirection(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddConstraint(NewPairClueConstraint(9, 0, 1, "ratio", 2))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 9), lib.NewCandidateIndex(1, 4, 9)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 4, 9), lib.NewCandidateIndex(1, 2, 9)))
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 9), lib.NewCandidateIndex(1, 5, 9)))
}

func TestPairClueXVAllowsFiveOrTen(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddConstraint(NewPairClueConstraint(9, 0, 1, "xv", 0))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 9), lib.NewCandidateIndex(1, 3, 9)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 4, 9), lib.NewCandidateIndex(1, 6, 9)))
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 9), lib.NewCandidateIndex(1, 4, 9)))
}

func TestNegativePairClueForbidsWhatPositiveWouldAllow(t *testing.T) {
	b := lib.NewBoard(9)
	b.AddConstraint(NewNegativePairClueConstraint(9, 0, 1, "ratio", 2))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 9), lib.NewCandidateIndex(1, 4, 9)))
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 2, 9), lib.NewCandidateIndex(1, 5, 9)))
}
