package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// XSumConstraint requires the sum of the first X cells from an edge —
// where X is the value of the first cell itself — to equal Target. The
// value of X is the case split, so it reduces to an Or
// over every possible first-cell value.
type XSumConstraint struct {
	lib.BaseConstraint
	N      int
	Target int
}

// NewXSumConstraint builds an X-sum clue over a line's cells in line
// order, first cell first.
func NewXSumConstraint(n int, cells []int, target int) *XSumConstraint {
	return &XSumConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "XSum", Specific: fmt.Sprintf("X-Sum (%d)", target), Cells: cells},
		N:              n, Target: target,
	}
}

func (x *XSumConstraint) Clone() lib.Constraint {
	cp := *x
	cp.Cells = append([]int(nil), x.Cells...)
	return &cp
}

func (x *XSumConstraint) Init(b *lib.Board) lib.InitResult {
	var subboards []*lib.Board
	for k := 1; k <= x.N && k <= len(x.Cells); k++ {
		sb := b.SubboardClone()
		if sb.SetAsGiven(x.Cells[0], k) == lib.INVALID {
			continue
		}
		prefix := append([]int(nil), x.Cells[:k]...)
		sb.AddConstraint(NewFixedSumConstraint(x.Specific, x.N, prefix, x.Target))
		subboards = append(subboards, sb)
	}
	if len(subboards) == 0 {
		return lib.InvalidResult()
	}
	return lib.SelfDelete(x, NewOrConstraint(x.Specific, x.Cells, subboards))
}
