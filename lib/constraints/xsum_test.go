package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestXSumRestrictsFirstCellToFeasibleCounts(t *testing.T) {
	b := lib.NewBoard(4)
	b.AddConstraint(NewXSumConstraint(4, []int{0, 1, 2, 3}, 6))
	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())

	// k=1 (target out of single-cell range) and k=4 (4 plus three more cells
	// of at least 1 already exceeds 6) are unreachable; only k=2 and k=3
	// survive
	require.False(t, b.HasCandidate(0, 1))
	require.True(t, b.HasCandidate(0, 2))
	require.True(t, b.HasCandidate(0, 3))
	require.False(t, b.HasCandidate(0, 4))

	require.False(t, b.HasCandidate(1, 3))
}

func TestXSumInvalidWhenNoCountIsFeasible(t *testing.T) {
	b := lib.NewBoard(4)
	// no k in [1,4] can make a sum of 100 reachable
	b.AddConstraint(NewXSumConstraint(4, []int{0, 1, 2, 3}, 100))
	require.Equal(t, lib.INVALID, b.FinalizeConstraints())
}
