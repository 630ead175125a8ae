package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib"
)

func TestWeakLinksConstraintInitAddsLinksAndSelfDeletes(t *testing.T) {
	b := lib.NewBoard(4)
	pairs := []Pair{{CellA: 0, ValueA: 1, CellB: 1, ValueB: 1}}
	c := NewWeakLinksConstraint("test", pairs)
	b.AddConstraint(c)

	require.Equal(t, lib.UNCHANGED, b.FinalizeConstraints())
	require.Empty(t, b.Constraints())
	require.True(t, b.IsWeakLink(lib.NewCandidateIndex(0, 1, 4), lib.NewCandidateIndex(1, 1, 4)))
}

func TestGenerateLEWeakLinksForbidsOutOfOrderAndTooClose(t *testing.T) {
	pairs := GenerateLEWeakLinks(4, 0, 1, -1)
	forbidden := map[[2]int]bool{}
	for _, p := range pairs {
		forbidden[[2]int{p.ValueA, p.ValueB}] = true
	}
	require.True(t, forbidden[[2]int{2, 1}], "descending pair must be forbidden")
	require.True(t, forbidden[[2]int{2, 2}], "equal values must be forbidden (strict increase)")
	require.False(t, forbidden[[2]int{1, 2}], "ascending pair satisfying the gap must survive")
}

func TestGenerateNEQWeakLinksOnlyForbidsEqualValues(t *testing.T) {
	pairs := GenerateNEQWeakLinks(3, 5, 6)
	for _, p := range pairs {
		require.Equal(t, p.ValueA, p.ValueB)
	}
	require.Len(t, pairs, 3)
}

func TestGenerateMinDiffWeakLinks(t *testing.T) {
	pairs := GenerateMinDiffWeakLinks(9, 0, 1, 5)
	for _, p := range pairs {
		d := p.ValueA - p.ValueB
		if d < 0 {
			d = -d
		}
		require.Less(t, d, 5)
	}
}

func TestGenerateModWeakLinksForbidsSameResidue(t *testing.T) {
	pairs := GenerateModWeakLinks(9, 0, 1, 3)
	for _, p := range pairs {
		require.Equal(t, (p.ValueA-1)%3, (p.ValueB-1)%3)
	}
}
