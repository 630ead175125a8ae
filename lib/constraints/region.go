package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// RegionConstraint asserts its cells are pairwise distinct by registering a
// Board region, then self-deletes (the region itself, not the constraint,
// is what enforces anything from here on).
type RegionConstraint struct {
	lib.BaseConstraint
	RegionType string
}

// NewRowConstraint builds the standard row region for row r on a board of
// size n.
func NewRowConstraint(n, r int) *RegionConstraint {
	cells := make([]int, n)
	for c := 0; c < n; c++ {
		cells[c] = r*n + c
	}
	return newRegion(fmt_row(r), cells, "row")
}

// NewColumnConstraint builds the standard column region for column c.
func NewColumnConstraint(n, c int) *RegionConstraint {
	cells := make([]int, n)
	for r := 0; r < n; r++ {
		cells[r] = r*n + c
	}
	return newRegion(fmt_col(c), cells, "col")
}

// NewBoxConstraint builds a box region given its cell list (box geometry —
// which cells belong to which box — is computed by the builder layer via
// utils.BoxNumber, since it depends on the board's factorization).
func NewBoxConstraint(name string, cells []int) *RegionConstraint {
	return newRegion(name, cells, "region")
}

// NewDisjointGroupCellConstraint builds one disjoint-group region: the
// cells occupying the same relative position within every box.
func NewDisjointGroupCellConstraint(name string, cells []int) *RegionConstraint {
	return newRegion(name, cells, "disjointgroup")
}

// NewExtraRegionConstraint builds an arbitrary extra-region clue.
func NewExtraRegionConstraint(name string, cells []int) *RegionConstraint {
	return newRegion(name, cells, "extraregion")
}

func newRegion(name string, cells []int, regionType string) *RegionConstraint {
	return &RegionConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Region", Specific: name, Cells: cells},
		RegionType:     regionType,
	}
}

func (r *RegionConstraint) Clone() lib.Constraint {
	cp := *r
	cp.Cells = append([]int(nil), r.Cells...)
	return &cp
}

func (r *RegionConstraint) Init(b *lib.Board) lib.InitResult {
	res := b.AddRegion(r.Specific, r.Cells, r.RegionType, r.Name)
	if res == lib.INVALID {
		return lib.InvalidResult()
	}
	return lib.InitResult{Result: res, DeleteConstraints: []lib.Constraint{r}}
}

// DiagonalConstraint is a distinctness rule over one of the two main
// diagonals; it reduces to Region.
type DiagonalConstraint struct {
	lib.BaseConstraint
	Positive bool // true = "/" (anti-diagonal), false = "\" (main diagonal)
}

// NewDiagonalConstraint builds the positive ("/") or negative ("\")
// diagonal region for a board of size n.
func NewDiagonalConstraint(n int, positive bool) *DiagonalConstraint {
	cells := make([]int, n)
	for i := 0; i < n; i++ {
		if positive {
			cells[i] = i*n + (n - 1 - i)
		} else {
			cells[i] = i*n + i
		}
	}
	name := "Diagonal \\"
	if positive {
		name = "Diagonal /"
	}
	return &DiagonalConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Diagonal", Specific: name, Cells: cells},
		Positive:       positive,
	}
}

func (d *DiagonalConstraint) Clone() lib.Constraint {
	cp := *d
	cp.Cells = append([]int(nil), d.Cells...)
	return &cp
}

func (d *DiagonalConstraint) Init(b *lib.Board) lib.InitResult {
	return lib.SelfDelete(d, newRegion(d.Specific, d.Cells, "diagonal"))
}

// DisjointGroupsConstraint expands the boolean "disjointgroups" flag into
// one region per within-box position.
type DisjointGroupsConstraint struct {
	lib.BaseConstraint
	N        int
	BoxRows  int
	BoxCols  int
}

// NewDisjointGroupsConstraint builds the flag constraint for a board whose
// boxes are boxRows x boxCols.
func NewDisjointGroupsConstraint(n, boxRows, boxCols int) *DisjointGroupsConstraint {
	return &DisjointGroupsConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "DisjointGroups", Specific: "Disjoint Groups"},
		N:              n, BoxRows: boxRows, BoxCols: boxCols,
	}
}

func (d *DisjointGroupsConstraint) Clone() lib.Constraint {
	cp := *d
	return &cp
}

func (d *DisjointGroupsConstraint) Init(b *lib.Board) lib.InitResult {
	boxesPerRow := d.N / d.BoxCols
	var regions []lib.Constraint
	for withinRow := 0; withinRow < d.BoxRows; withinRow++ {
		for withinCol := 0; withinCol < d.BoxCols; withinCol++ {
			cells := make([]int, 0, d.N)
			for boxRow := 0; boxRow < d.N/d.BoxRows; boxRow++ {
				for boxCol := 0; boxCol < boxesPerRow; boxCol++ {
					row := boxRow*d.BoxRows + withinRow
					col := boxCol*d.BoxCols + withinCol
					cells = append(cells, row*d.N+col)
				}
			}
			name := fmt_disjoint(withinRow, withinCol)
			regions = append(regions, newRegion(name, cells, "disjointgroup"))
		}
	}
	return lib.SelfDelete(d, regions...)
}

func fmt_row(r int) string         { return fmt.Sprintf("Row %d", r+1) }
func fmt_col(c int) string         { return fmt.Sprintf("Column %d", c+1) }
func fmt_disjoint(r, c int) string { return fmt.Sprintf("Disjoint Group %d-%d", r+1, c+1) }
