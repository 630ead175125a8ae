package constraints

import (
	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

// OrConstraint wraps lib.Or as a Constraint: the disjunctive-subboard
// mechanism reserved for case splits too rich for plain weak
// links (sandwich sum, X-sum, between-line/lockout ordering). Concrete
// variants build the subboards (each a parent clone plus
// one case's extra constraints) and hand them to NewOrConstraint.
type OrConstraint struct {
	lib.BaseConstraint
	or *lib.Or
}

// NewOrConstraint wraps pre-built subboards (one per disjunct) as a
// Constraint scoped to cells.
func NewOrConstraint(name string, cells []int, subboards []*lib.Board) *OrConstraint {
	return &OrConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Or", Specific: name, Cells: cells},
		or:             lib.NewOr(subboards, cells),
	}
}

func (o *OrConstraint) Clone() lib.Constraint {
	cp := &OrConstraint{BaseConstraint: o.BaseConstraint, or: o.or.Clone()}
	cp.Cells = append([]int(nil), o.Cells...)
	return cp
}

func (o *OrConstraint) Init(b *lib.Board) lib.InitResult {
	res := o.or.Init(b)
	if res == lib.INVALID {
		return lib.InvalidResult()
	}
	return lib.InitResult{Result: res}
}

func (o *OrConstraint) OnCellSet(cell, value int) bool {
	return o.or.TryAssign(cell, value) != lib.INVALID
}

func (o *OrConstraint) OnCandidateEliminated(cell, value int) bool {
	var live []*lib.Board
	for _, sb := range o.or.Subboards {
		if sb.ClearCellMask(cell, bitutil.ValueBit(value)) == lib.INVALID {
			continue
		}
		live = append(live, sb)
	}
	o.or.Subboards = live
	return len(live) > 0
}

func (o *OrConstraint) LogicalStep(b *lib.Board) []lib.Deduction {
	res := o.or.Step(b)
	if res == lib.INVALID {
		return []lib.Deduction{lib.InvalidDeduction(o.Specific + ": every case eliminated")}
	}
	return nil
}
