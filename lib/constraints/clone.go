package constraints

import "github.com/holloway-dev/variantsudoku/lib"

// CloneConstraint requires two equal-length cell lists to hold identical
// values position-by-position. Reduces to weak links forbidding every
// differing-value combination between paired cells.
type CloneConstraint struct {
	lib.BaseConstraint
	N         int
	CellsA    []int
	CellsB    []int
}

// NewCloneConstraint builds a clone pairing cellsA[i] with cellsB[i].
func NewCloneConstraint(n int, cellsA, cellsB []int) *CloneConstraint {
	all := append(append([]int(nil), cellsA...), cellsB...)
	return &CloneConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Clone", Specific: "Clone", Cells: all},
		N:              n, CellsA: cellsA, CellsB: cellsB,
	}
}

func (c *CloneConstraint) Clone() lib.Constraint {
	cp := *c
	cp.CellsA = append([]int(nil), c.CellsA...)
	cp.CellsB = append([]int(nil), c.CellsB...)
	cp.Cells = append([]int(nil), c.Cells...)
	return &cp
}

func (c *CloneConstraint) Init(b *lib.Board) lib.InitResult {
	if len(c.CellsA) != len(c.CellsB) {
		return lib.InvalidResult()
	}
	var pairs []Pair
	for i := range c.CellsA {
		pairs = append(pairs, GenerateEQWeakLinks(c.N, c.CellsA[i], c.CellsB[i])...)
	}
	return lib.SelfDelete(c, NewWeakLinksConstraint("Clone", pairs))
}
