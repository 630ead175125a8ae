package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// QuadrupleConstraint requires each clue digit to appear at least as many
// times among its four cells as it appears in the clue list (a repeated
// clue digit demands that many occurrences). Reduces to one Cardinality
// per distinct clue digit.
type QuadrupleConstraint struct {
	lib.BaseConstraint
	N      int
	Digits []int
}

// NewQuadrupleConstraint builds a quadruple clue over the four cells
// meeting at a grid intersection.
func NewQuadrupleConstraint(n int, cells []int, digits []int) *QuadrupleConstraint {
	return &QuadrupleConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Quadruple", Specific: "Quadruple", Cells: cells},
		N:              n, Digits: append([]int(nil), digits...),
	}
}

func (q *QuadrupleConstraint) Clone() lib.Constraint {
	cp := *q
	cp.Digits = append([]int(nil), q.Digits...)
	cp.Cells = append([]int(nil), q.Cells...)
	return &cp
}

func (q *QuadrupleConstraint) Init(b *lib.Board) lib.InitResult {
	counts := map[int]int{}
	for _, d := range q.Digits {
		counts[d]++
	}
	var replacements []lib.Constraint
	for digit, required := range counts {
		var candidates []lib.CandidateIndex
		for _, cell := range q.Cells {
			candidates = append(candidates, lib.NewCandidateIndex(cell, digit, q.N))
		}
		var allowed []int
		for k := required; k <= len(q.Cells); k++ {
			allowed = append(allowed, k)
		}
		replacements = append(replacements, NewCardinalityConstraint(
			fmt.Sprintf("%s (%d x%d)", q.Specific, digit, required), q.N, candidates, allowed))
	}
	return lib.SelfDelete(q, replacements...)
}
