package lib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

func TestNewBoardAllCandidates(t *testing.T) {
	b := NewBoard(9)
	require.Equal(t, 81, b.NumCells())
	for cell := 0; cell < b.NumCells(); cell++ {
		require.Equal(t, bitutil.AllValues(9), b.Cell(cell))
		require.False(t, b.IsGiven(cell))
	}
}

func TestSetAsGivenPropagatesWeakLinks(t *testing.T) {
	b := NewBoard(4)
	// link (cell0,val1) to (cell1,val1), as a row region would
	a := NewCandidateIndex(0, 1, 4)
	c := NewCandidateIndex(1, 1, 4)
	require.Equal(t, CHANGED, b.AddWeakLink(a, c))

	res := b.SetAsGiven(0, 1)
	require.Equal(t, CHANGED, res)
	require.True(t, b.IsGiven(0))
	require.Equal(t, 1, b.GetValue(0))
	require.False(t, b.HasCandidate(1, 1))
}

func TestSetAsGivenRejectsExcludedValue(t *testing.T) {
	b := NewBoard(4)
	require.Equal(t, CHANGED, b.ClearCellMask(0, bitutil.ValueBit(1)))
	require.Equal(t, INVALID, b.SetAsGiven(0, 1))
}

func TestKeepCellMaskToEmptyIsInvalid(t *testing.T) {
	b := NewBoard(4)
	require.Equal(t, INVALID, b.KeepCellMask(0, 0))
	require.True(t, b.InvalidInit())
}

func TestNakedSingleCascades(t *testing.T) {
	b := NewBoard(4)
	// reduce cell 0 to exactly one candidate; it must auto-promote to given
	require.Equal(t, CHANGED, b.ClearCellMask(0, bitutil.MaskFromValues([]int{2, 3, 4})))
	require.True(t, b.IsGiven(0))
	require.Equal(t, 1, b.GetValue(0))
}

func TestAddRegionLinksAllPairsAndValues(t *testing.T) {
	b := NewBoard(3)
	cells := []int{0, 1, 2}
	require.Equal(t, CHANGED, b.AddRegion("row0", cells, "row", ""))
	require.Equal(t, UNCHANGED, b.AddRegion("row0", cells, "row", ""))

	for v := 1; v <= 3; v++ {
		a := NewCandidateIndex(0, v, 3)
		c := NewCandidateIndex(1, v, 3)
		require.True(t, b.IsWeakLink(a, c))
	}
}

func TestAddRegionSetAsGivenEliminatesRowmates(t *testing.T) {
	b := NewBoard(3)
	require.Equal(t, CHANGED, b.AddRegion("row0", []int{0, 1, 2}, "row", ""))
	require.Equal(t, CHANGED, b.SetAsGiven(0, 1))
	require.False(t, b.HasCandidate(1, 1))
	require.False(t, b.HasCandidate(2, 1))
}

type recordingConstraint struct {
	BaseConstraint
	sawSet, sawElim int
}

func (r *recordingConstraint) Clone() Constraint {
	cp := *r
	return &cp
}

func (r *recordingConstraint) OnCellSet(cell, value int) bool {
	r.sawSet++
	return true
}

func (r *recordingConstraint) OnCandidateEliminated(cell, value int) bool {
	r.sawElim++
	return true
}

func TestAddConstraintReceivesDispatch(t *testing.T) {
	b := NewBoard(4)
	c := &recordingConstraint{BaseConstraint: BaseConstraint{Name: "test", Cells: []int{0, 1}}}
	b.AddConstraint(c)

	require.Equal(t, CHANGED, b.ClearCellMask(1, bitutil.ValueBit(2)))
	require.Equal(t, 1, c.sawElim)

	require.Equal(t, CHANGED, b.SetAsGiven(0, 1))
	require.Equal(t, 1, c.sawSet)
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(4)
	b.AddConstraint(&recordingConstraint{BaseConstraint: BaseConstraint{Name: "test", Cells: []int{0}}})
	nb := b.Clone()

	require.Equal(t, CHANGED, nb.SetAsGiven(0, 1))
	require.False(t, b.IsGiven(0))
	require.True(t, nb.IsGiven(0))

	original := b.Constraints()[0].(*recordingConstraint)
	cloned := nb.Constraints()[0].(*recordingConstraint)
	require.Equal(t, 0, original.sawSet)
	require.Equal(t, 1, cloned.sawSet)
}

func TestFinalizeConstraintsRunsInitFixpoint(t *testing.T) {
	b := NewBoard(4)
	b.AddConstraint(&recordingConstraint{BaseConstraint: BaseConstraint{Name: "test", Cells: []int{0}}})
	require.Equal(t, UNCHANGED, b.FinalizeConstraints())
	require.True(t, b.ConstraintsFinalized())
}

func TestSplitIntoGroups(t *testing.T) {
	b := NewBoard(4)
	require.Equal(t, CHANGED, b.AddRegion("row0", []int{0, 1}, "row", ""))
	groups := b.SplitIntoGroups([]int{0, 1, 5})
	require.Len(t, groups, 2)
}
