package constraints

import "github.com/holloway-dev/variantsudoku/lib"

// BetweenLineConstraint requires every middle cell's value to lie
// strictly between its two (unordered) endpoint values. Which endpoint is
// the lower bound is itself a case split, so it reduces to an Or over the
// two orderings ("endpoints ascending" and "endpoints descending").
type BetweenLineConstraint struct {
	lib.BaseConstraint
	N              int
	EndpointA      int
	EndpointB      int
	Middle         []int
}

// NewBetweenLineConstraint builds a between-line clue with two endpoints
// and the cells strictly between them.
func NewBetweenLineConstraint(n, endpointA, endpointB int, middle []int) *BetweenLineConstraint {
	cells := append([]int{endpointA, endpointB}, middle...)
	return &BetweenLineConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "BetweenLine", Specific: "Between Line", Cells: cells},
		N:              n, EndpointA: endpointA, EndpointB: endpointB, Middle: append([]int(nil), middle...),
	}
}

func (bl *BetweenLineConstraint) Clone() lib.Constraint {
	cp := *bl
	cp.Middle = append([]int(nil), bl.Middle...)
	cp.Cells = append([]int(nil), bl.Cells...)
	return &cp
}

// orderedCase builds a subboard in which lo must be strictly less than
// every middle cell, and every middle cell strictly less than hi.
func orderedCase(parent *lib.Board, n, lo, hi int, middle []int, name string) *lib.Board {
	sb := parent.SubboardClone()
	var pairs []Pair
	pairs = append(pairs, GenerateLEWeakLinks(n, lo, hi, -1)...)
	for _, m := range middle {
		pairs = append(pairs, GenerateLEWeakLinks(n, lo, m, -1)...)
		pairs = append(pairs, GenerateLEWeakLinks(n, m, hi, -1)...)
	}
	sb.AddConstraint(NewWeakLinksConstraint(name, pairs))
	return sb
}

func (bl *BetweenLineConstraint) Init(b *lib.Board) lib.InitResult {
	low := orderedCase(b, bl.N, bl.EndpointA, bl.EndpointB, bl.Middle, bl.Specific+" (A<B)")
	high := orderedCase(b, bl.N, bl.EndpointB, bl.EndpointA, bl.Middle, bl.Specific+" (B<A)")
	return lib.SelfDelete(bl, NewOrConstraint(bl.Specific, bl.Cells, []*lib.Board{low, high}))
}
