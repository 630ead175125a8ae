package constraints

import "github.com/holloway-dev/variantsudoku/lib"

// SingleCellConstraint restricts one cell's value by a simple predicate
// (odd, even, minimum, maximum). Each reduces to a single-cell weak link
// set: an outright elimination of every value failing the predicate.
type SingleCellConstraint struct {
	lib.BaseConstraint
	N    int
	Cell int
	Kind string // "odd", "even", "minimum", "maximum"
}

// NewSingleCellConstraint builds an odd/even/minimum/maximum clue over a
// single cell.
func NewSingleCellConstraint(n, cell int, kind string) *SingleCellConstraint {
	return &SingleCellConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "SingleCell", Specific: kind, Cells: []int{cell}},
		N:              n, Cell: cell, Kind: kind,
	}
}

func (s *SingleCellConstraint) Clone() lib.Constraint {
	cp := *s
	cp.Cells = append([]int(nil), s.Cells...)
	return &cp
}

func (s *SingleCellConstraint) forbidden(v int) bool {
	switch s.Kind {
	case "odd":
		return v%2 == 0
	case "even":
		return v%2 == 1
	case "minimum":
		return v != 1
	case "maximum":
		return v != s.N
	default:
		return false
	}
}

func (s *SingleCellConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for v := 1; v <= s.N; v++ {
		if s.forbidden(v) {
			pairs = append(pairs, Pair{CellA: s.Cell, ValueA: v, CellB: s.Cell, ValueB: v})
		}
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{s}}
	}
	return lib.SelfDelete(s, NewWeakLinksConstraint(s.Kind, pairs))
}
