package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// PairClueConstraint covers the edge-marker family that restricts exactly
// two cells by a fixed arithmetic relation between their values:
// difference/Kropki-white dots (|a-b|=k), ratio/Kropki-black dots (a=k*b
// or b=k*a), plain sum (a+b=k), and XV (a+b=5 or a+b=10). All reduce to a
// single WeakLinks pass forbidding every non-conforming value pair.
//
// Negate flips the constraint into its "negative" form: every pair that
// WOULD satisfy the relation is forbidden instead. Builders use this to
// encode a puzzle-wide negative constraint (e.g. "no unmarked adjacent
// pair may be a ratio of 2") on edges that carry no explicit clue.
type PairClueConstraint struct {
	lib.BaseConstraint
	N      int
	CellA  int
	CellB  int
	Kind   string // "difference", "ratio", "sum", "xv"
	K      int    // the clue's numeric parameter (ignored for "xv")
	Negate bool
}

// NewPairClueConstraint builds a two-cell arithmetic clue.
func NewPairClueConstraint(n, cellA, cellB int, kind string, k int) *PairClueConstraint {
	return &PairClueConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "PairClue", Specific: fmt.Sprintf("%s(%d)", kind, k), Cells: []int{cellA, cellB}},
		N:              n, CellA: cellA, CellB: cellB, Kind: kind, K: k,
	}
}

// NewNegativePairClueConstraint builds the puzzle-wide negative form of a
// pair clue over a single unmarked edge.
func NewNegativePairClueConstraint(n, cellA, cellB int, kind string, k int) *PairClueConstraint {
	p := NewPairClueConstraint(n, cellA, cellB, kind, k)
	p.Negate = true
	p.Specific = fmt.Sprintf("not-%s(%d)", kind, k)
	return p
}

func (p *PairClueConstraint) Clone() lib.Constraint {
	cp := *p
	cp.Cells = append([]int(nil), p.Cells...)
	return &cp
}

func (p *PairClueConstraint) satisfies(a, b int) bool {
	switch p.Kind {
	case "difference":
		d := a - b
		if d < 0 {
			d = -d
		}
		return d == p.K
	case "ratio":
		return a == p.K*b || b == p.K*a
	case "sum":
		return a+b == p.K
	case "xv":
		return a+b == 5 || a+b == 10
	default:
		return true
	}
}

func (p *PairClueConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for d1 := 1; d1 <= p.N; d1++ {
		for d2 := 1; d2 <= p.N; d2++ {
			forbidden := !p.satisfies(d1, d2)
			if p.Negate {
				forbidden = p.satisfies(d1, d2)
			}
			if forbidden {
				pairs = append(pairs, Pair{CellA: p.CellA, ValueA: d1, CellB: p.CellB, ValueB: d2})
			}
		}
	}
	return lib.SelfDelete(p, NewWeakLinksConstraint(p.Specific, pairs))
}
