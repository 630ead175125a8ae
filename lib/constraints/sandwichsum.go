package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// SandwichSumConstraint requires the cells strictly between the 1 and the
// N along a line to sum to Target. Which positions hold 1 and N is itself
// the case split too rich for weak links, so it reduces to
// an Or over every ordered placement of the two bookend digits.
type SandwichSumConstraint struct {
	lib.BaseConstraint
	N      int
	Target int
}

// NewSandwichSumConstraint builds a sandwich-sum clue over a line's cells
// in line order.
func NewSandwichSumConstraint(n int, cells []int, target int) *SandwichSumConstraint {
	return &SandwichSumConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "SandwichSum", Specific: fmt.Sprintf("Sandwich Sum (%d)", target), Cells: cells},
		N:              n, Target: target,
	}
}

func (s *SandwichSumConstraint) Clone() lib.Constraint {
	cp := *s
	cp.Cells = append([]int(nil), s.Cells...)
	return &cp
}

func (s *SandwichSumConstraint) Init(b *lib.Board) lib.InitResult {
	cells := s.Cells
	var subboards []*lib.Board
	for i := 0; i < len(cells); i++ {
		for j := 0; j < len(cells); j++ {
			if i == j {
				continue
			}
			between := betweenIndices(cells, i, j)
			sb := b.SubboardClone()
			if sb.SetAsGiven(cells[i], 1) == lib.INVALID {
				continue
			}
			if sb.SetAsGiven(cells[j], s.N) == lib.INVALID {
				continue
			}
			if len(between) == 0 {
				if s.Target != 0 {
					continue
				}
			} else {
				sb.AddConstraint(NewFixedSumConstraint(s.Specific, s.N, between, s.Target))
			}
			subboards = append(subboards, sb)
		}
	}
	if len(subboards) == 0 {
		return lib.InvalidResult()
	}
	return lib.SelfDelete(s, NewOrConstraint(s.Specific, cells, subboards))
}

// betweenIndices returns the cells strictly between position i and j in
// cells' line order (whichever comes first).
func betweenIndices(cells []int, i, j int) []int {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	return append([]int(nil), cells[lo+1:hi]...)
}
