package constraints

import "github.com/holloway-dev/variantsudoku/lib"

// LockoutConstraint requires its two endpoints to differ by at least Gap,
// and every other cell on the line to lie strictly outside the closed
// interval the endpoints span. Which endpoint is the low one, and for
// each middle cell which side of the interval it falls on, are both case
// splits — two levels of Or nested inside each other.
type LockoutConstraint struct {
	lib.BaseConstraint
	N         int
	Gap       int
	EndpointA int
	EndpointB int
	Middle    []int
}

// NewLockoutConstraint builds a lockout line (classically Gap=4) with two
// endpoints and the cells that must fall outside their span.
func NewLockoutConstraint(n, gap, endpointA, endpointB int, middle []int) *LockoutConstraint {
	cells := append([]int{endpointA, endpointB}, middle...)
	return &LockoutConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Lockout", Specific: "Lockout Line", Cells: cells},
		N:              n, Gap: gap, EndpointA: endpointA, EndpointB: endpointB, Middle: append([]int(nil), middle...),
	}
}

func (lo *LockoutConstraint) Clone() lib.Constraint {
	cp := *lo
	cp.Middle = append([]int(nil), lo.Middle...)
	cp.Cells = append([]int(nil), lo.Cells...)
	return &cp
}

// outsideCase builds a subboard where low+gap<=high and, for middle cell
// m, a nested Or decides whether m falls below low or above high.
func outsideCase(parent *lib.Board, n, gap, low, high int, middle []int, name string) *lib.Board {
	sb := parent.SubboardClone()
	sb.AddConstraint(NewWeakLinksConstraint(name+" (gap)", GenerateLEWeakLinks(n, low, high, -gap)))
	if sb.RunInitFixpoint() == lib.INVALID {
		return sb
	}
	for _, m := range middle {
		belowPairs := GenerateLEWeakLinks(n, m, low, -1)
		abovePairs := GenerateLEWeakLinks(n, high, m, -1)
		below := sb.SubboardClone()
		below.AddConstraint(NewWeakLinksConstraint(name, belowPairs))
		above := sb.SubboardClone()
		above.AddConstraint(NewWeakLinksConstraint(name, abovePairs))
		sb.AddConstraint(NewOrConstraint(
			name, []int{m, low, high}, []*lib.Board{below, above},
		))
	}
	return sb
}

func (lo *LockoutConstraint) Init(b *lib.Board) lib.InitResult {
	caseA := outsideCase(b, lo.N, lo.Gap, lo.EndpointA, lo.EndpointB, lo.Middle, lo.Specific+" (A low)")
	caseB := outsideCase(b, lo.N, lo.Gap, lo.EndpointB, lo.EndpointA, lo.Middle, lo.Specific+" (B low)")
	return lib.SelfDelete(lo, NewOrConstraint(lo.Specific, lo.Cells, []*lib.Board{caseA, caseB}))
}
