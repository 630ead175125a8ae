package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/utils"
)

// ArrowConstraint requires a circle cell's value to equal the sum of its
// shaft cells. Reduces to EqualSum between the singleton circle group and
// the shaft group.
type ArrowConstraint struct {
	lib.BaseConstraint
	N      int
	Circle int
	Shaft  []int
}

// NewArrowConstraint builds an arrow with one circle and its shaft cells.
func NewArrowConstraint(n, circle int, shaft []int) *ArrowConstraint {
	cells := append([]int{circle}, shaft...)
	return &ArrowConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Arrow", Specific: fmt.Sprintf("Arrow at %s", utils.CellName(circle, n)), Cells: cells},
		N:              n, Circle: circle, Shaft: append([]int(nil), shaft...),
	}
}

func (a *ArrowConstraint) Clone() lib.Constraint {
	cp := *a
	cp.Shaft = append([]int(nil), a.Shaft...)
	cp.Cells = append([]int(nil), a.Cells...)
	return &cp
}

func (a *ArrowConstraint) Init(b *lib.Board) lib.InitResult {
	groups := [][]int{{a.Circle}, a.Shaft}
	return lib.SelfDelete(a, NewEqualSumConstraint(a.Specific, a.N, groups, 0, false))
}

// DoubleArrowConstraint requires the sum of its two end-circle cells to
// equal the sum of the connecting shaft cells between them.
type DoubleArrowConstraint struct {
	lib.BaseConstraint
	N        int
	Circles  []int
	Shaft    []int
}

// NewDoubleArrowConstraint builds a double arrow with two circles and the
// shaft cells between them.
func NewDoubleArrowConstraint(n int, circles, shaft []int) *DoubleArrowConstraint {
	cells := append(append([]int(nil), circles...), shaft...)
	return &DoubleArrowConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "DoubleArrow", Specific: "Double Arrow", Cells: cells},
		N:              n, Circles: append([]int(nil), circles...), Shaft: append([]int(nil), shaft...),
	}
}

func (d *DoubleArrowConstraint) Clone() lib.Constraint {
	cp := *d
	cp.Circles = append([]int(nil), d.Circles...)
	cp.Shaft = append([]int(nil), d.Shaft...)
	cp.Cells = append([]int(nil), d.Cells...)
	return &cp
}

func (d *DoubleArrowConstraint) Init(b *lib.Board) lib.InitResult {
	groups := [][]int{d.Circles, d.Shaft}
	return lib.SelfDelete(d, NewEqualSumConstraint(d.Specific, d.N, groups, 0, false))
}

// ZipperLineConstraint requires every pair of cells equidistant from the
// line's two ends (and the middle cell alone, for an odd-length line) to
// share a common sum. Reduces to EqualSum across the symmetric pairs.
type ZipperLineConstraint struct {
	lib.BaseConstraint
	N int
}

// NewZipperLineConstraint builds a zipper line over cells in line order.
func NewZipperLineConstraint(n int, cells []int) *ZipperLineConstraint {
	return &ZipperLineConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "ZipperLine", Specific: "Zipper Line", Cells: cells},
		N:              n,
	}
}

func (z *ZipperLineConstraint) Clone() lib.Constraint {
	cp := *z
	cp.Cells = append([]int(nil), z.Cells...)
	return &cp
}

func (z *ZipperLineConstraint) Init(b *lib.Board) lib.InitResult {
	cells := z.Cells
	n := len(cells)
	var groups [][]int
	for i := 0; i < n/2; i++ {
		groups = append(groups, []int{cells[i], cells[n-1-i]})
	}
	if n%2 == 1 {
		groups = append(groups, []int{cells[n/2]})
	}
	if len(groups) < 2 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{z}}
	}
	return lib.SelfDelete(z, NewEqualSumConstraint(z.Specific, z.N, groups, 0, false))
}

// RegionSumLineConstraint requires every segment of a line that falls
// within a single region to sum to the same value as every other segment
// (reduces to EqualSum). Segments are supplied pre-split by
// the builder, which knows the board's region geometry.
type RegionSumLineConstraint struct {
	lib.BaseConstraint
	N        int
	Segments [][]int
}

// NewRegionSumLineConstraint builds a region-sum-line rule from
// pre-computed per-region segments of the line.
func NewRegionSumLineConstraint(n int, segments [][]int) *RegionSumLineConstraint {
	var cells []int
	for _, s := range segments {
		cells = append(cells, s...)
	}
	return &RegionSumLineConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "RegionSumLines", Specific: "Region Sum Line", Cells: cells},
		N:              n, Segments: segments,
	}
}

func (r *RegionSumLineConstraint) Clone() lib.Constraint {
	cp := *r
	cp.Segments = make([][]int, len(r.Segments))
	for i, s := range r.Segments {
		cp.Segments[i] = append([]int(nil), s...)
	}
	cp.Cells = append([]int(nil), r.Cells...)
	return &cp
}

func (r *RegionSumLineConstraint) Init(b *lib.Board) lib.InitResult {
	if len(r.Segments) < 2 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{r}}
	}
	return lib.SelfDelete(r, NewEqualSumConstraint(r.Specific, r.N, r.Segments, 0, false))
}
