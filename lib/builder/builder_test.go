package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func emptyGrid(n int) []CellEntry {
	return make([]CellEntry, n*n)
}

func TestBuildStandardPuzzleSucceeds(t *testing.T) {
	grid := emptyGrid(4)
	grid[0] = CellEntry{Value: 1}
	desc := PuzzleDescription{Size: 4, Grid: grid}

	b, err := Build(desc)
	require.NoError(t, err)
	require.True(t, b.IsGiven(0))
	require.Equal(t, 1, b.GetValue(0))
	// rows + columns + boxes, all distinctness-only and self-deleted by
	// finalize
	require.Empty(t, b.Constraints())
}

func TestBuildRejectsNonPositiveSize(t *testing.T) {
	_, err := Build(PuzzleDescription{Size: 0})
	require.Error(t, err)
}

func TestBuildRejectsMismatchedGridLength(t *testing.T) {
	_, err := Build(PuzzleDescription{Size: 4, Grid: emptyGrid(3)})
	require.Error(t, err)
}

func TestBuildRejectsOutOfRangeGiven(t *testing.T) {
	grid := emptyGrid(4)
	grid[0] = CellEntry{Value: 9}
	_, err := Build(PuzzleDescription{Size: 4, Grid: grid})
	require.Error(t, err)
}

func TestBuildReportsContradictionAtFinalize(t *testing.T) {
	grid := emptyGrid(4)
	grid[0] = CellEntry{Value: 1}
	grid[1] = CellEntry{Value: 1} // same row, same value: row distinctness fails
	_, err := Build(PuzzleDescription{Size: 4, Grid: grid})
	require.Error(t, err)
}

func TestBuildWithKillerCageWiresFixedSumAndRegion(t *testing.T) {
	grid := emptyGrid(4)
	desc := PuzzleDescription{
		Size: 4, Grid: grid,
		KillerCages: []CageClue{{Cells: []int{0, 1}, Target: 3}},
	}
	b, err := Build(desc)
	require.NoError(t, err)
	require.False(t, b.HasCandidate(0, 3))
	require.False(t, b.HasCandidate(0, 4))
}

func TestBuildJigsawUsesRegionFieldInsteadOfBoxes(t *testing.T) {
	grid := emptyGrid(4)
	// four 4-cell jigsaw regions that differ from the standard 2x2 boxes:
	// {0,1,2,4}, {3,5,6,7}, {8,9,12,13}, {10,11,14,15}
	regionOf := []int{0, 0, 0, 1, 0, 1, 1, 1, 2, 2, 3, 3, 2, 2, 3, 3}
	for i := range grid {
		grid[i].Region = regionOf[i]
	}
	desc := PuzzleDescription{Size: 4, Grid: grid, Jigsaw: true}
	b, err := Build(desc)
	require.NoError(t, err)
	require.NotNil(t, b)
	// cells 2 and 4 share only jigsaw region 0
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(2, 1, 4), lib.NewCandidateIndex(4, 1, 4)))
	// cells 0 and 5 share only the standard box, which is not used
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(5, 1, 4)))
}

func TestBuildNegativeConstraintSkipsExplicitlyMarkedEdges(t *testing.T) {
	grid := emptyGrid(4)
	desc := PuzzleDescription{
		Size: 4, Grid: grid,
		PairClues: []PairRef{{CellA: 0, CellB: 1, Kind: "ratio", K: 2}},
		Negative:  []NegativeRule{{Kind: "ratio"}},
	}
	b, err := Build(desc)
	require.NoError(t, err)
	// the explicit ratio(2) clue on (0,1) still allows ratio pairs; the
	// negative sweep must not double-apply a *negative* ratio rule to the
	// same edge, which would forbid them too
	require.False(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 2, 4)))

	// an edge with no explicit clue (0,4) gets the negative rule: a
	// ratio-2 pair there must be forbidden
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(4, 2, 4)))
}
