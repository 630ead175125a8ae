package constraints

import "github.com/holloway-dev/variantsudoku/lib"

// ThermometerConstraint requires values to strictly increase from the
// bulb end of Cells to the tip. Reduces to an LE weak link on every
// adjacent pair.
type ThermometerConstraint struct {
	lib.BaseConstraint
	N int
}

// NewThermometerConstraint builds a thermometer over cells ordered
// bulb-first.
func NewThermometerConstraint(n int, cells []int) *ThermometerConstraint {
	return &ThermometerConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Thermometer", Specific: "Thermometer", Cells: cells},
		N:              n,
	}
}

func (t *ThermometerConstraint) Clone() lib.Constraint {
	cp := *t
	cp.Cells = append([]int(nil), t.Cells...)
	return &cp
}

func (t *ThermometerConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for i := 0; i+1 < len(t.Cells); i++ {
		pairs = append(pairs, GenerateLEWeakLinks(t.N, t.Cells[i], t.Cells[i+1], -1)...)
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{t}}
	}
	return lib.SelfDelete(t, NewWeakLinksConstraint(t.Specific, pairs))
}

// PalindromeConstraint requires a line to read the same digit sequence
// forwards and backwards. Reduces to an EQ weak link on each symmetric
// cell pair.
type PalindromeConstraint struct {
	lib.BaseConstraint
	N int
}

// NewPalindromeConstraint builds a palindrome line.
func NewPalindromeConstraint(n int, cells []int) *PalindromeConstraint {
	return &PalindromeConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Palindrome", Specific: "Palindrome", Cells: cells},
		N:              n,
	}
}

func (p *PalindromeConstraint) Clone() lib.Constraint {
	cp := *p
	cp.Cells = append([]int(nil), p.Cells...)
	return &cp
}

func (p *PalindromeConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for i := 0; i < len(p.Cells)/2; i++ {
		pairs = append(pairs, GenerateEQWeakLinks(p.N, p.Cells[i], p.Cells[len(p.Cells)-1-i])...)
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{p}}
	}
	return lib.SelfDelete(p, NewWeakLinksConstraint(p.Specific, pairs))
}

// WhispersConstraint (German Whispers) requires adjacent cells to differ
// by at least Gap. Reduces to a min-diff weak link on every adjacent
// pair.
type WhispersConstraint struct {
	lib.BaseConstraint
	N   int
	Gap int
}

// NewWhispersConstraint builds a whispers line requiring adjacent cells
// to differ by at least gap (the classic German Whispers gap is 5 on a
// 9x9 grid).
func NewWhispersConstraint(n, gap int, cells []int) *WhispersConstraint {
	return &WhispersConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Whispers", Specific: "German Whispers", Cells: cells},
		N:              n, Gap: gap,
	}
}

func (w *WhispersConstraint) Clone() lib.Constraint {
	cp := *w
	cp.Cells = append([]int(nil), w.Cells...)
	return &cp
}

func (w *WhispersConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for i := 0; i+1 < len(w.Cells); i++ {
		pairs = append(pairs, GenerateMinDiffWeakLinks(w.N, w.Cells[i], w.Cells[i+1], w.Gap)...)
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{w}}
	}
	return lib.SelfDelete(w, NewWeakLinksConstraint(w.Specific, pairs))
}

// RenbanConstraint requires a line's cells to hold a set of distinct
// consecutive values in any order. Reduces to plain distinctness plus a
// span bound of len-1 between every pair, which together force
// consecutiveness.
type RenbanConstraint struct {
	lib.BaseConstraint
	N int
}

// NewRenbanConstraint builds a renban line.
func NewRenbanConstraint(n int, cells []int) *RenbanConstraint {
	return &RenbanConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Renban", Specific: "Renban Line", Cells: cells},
		N:              n,
	}
}

func (r *RenbanConstraint) Clone() lib.Constraint {
	cp := *r
	cp.Cells = append([]int(nil), r.Cells...)
	return &cp
}

func (r *RenbanConstraint) Init(b *lib.Board) lib.InitResult {
	maxDiff := len(r.Cells) - 1
	var pairs []Pair
	for i := 0; i < len(r.Cells); i++ {
		for j := i + 1; j < len(r.Cells); j++ {
			pairs = append(pairs, GenerateNEQWeakLinks(r.N, r.Cells[i], r.Cells[j])...)
			pairs = append(pairs, GenerateMaxDiffWeakLinks(r.N, r.Cells[i], r.Cells[j], maxDiff)...)
		}
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{r}}
	}
	return lib.SelfDelete(r, NewWeakLinksConstraint(r.Specific, pairs))
}

// NabnerConstraint requires a line's cells to be pairwise distinct and
// pairwise non-consecutive. Reduces to a single min-diff-2 weak link on
// every pair — one generator covers both requirements at once.
type NabnerConstraint struct {
	lib.BaseConstraint
	N int
}

// NewNabnerConstraint builds a nabner line.
func NewNabnerConstraint(n int, cells []int) *NabnerConstraint {
	return &NabnerConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Nabner", Specific: "Nabner Line", Cells: cells},
		N:              n,
	}
}

func (nb *NabnerConstraint) Clone() lib.Constraint {
	cp := *nb
	cp.Cells = append([]int(nil), nb.Cells...)
	return &cp
}

func (nb *NabnerConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for i := 0; i < len(nb.Cells); i++ {
		for j := i + 1; j < len(nb.Cells); j++ {
			pairs = append(pairs, GenerateMinDiffWeakLinks(nb.N, nb.Cells[i], nb.Cells[j], 2)...)
		}
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{nb}}
	}
	return lib.SelfDelete(nb, NewWeakLinksConstraint(nb.Specific, pairs))
}

// ModularConstraint requires every window of Modulus consecutive cells
// along the line to hold Modulus distinct residues mod Modulus. Reduces
// to a residue-distinctness weak link on every pair within each window.
type ModularConstraint struct {
	lib.BaseConstraint
	N       int
	Modulus int
}

// NewModularConstraint builds a modular line with the given modulus
// (commonly 3 on a 9x9 grid).
func NewModularConstraint(n, modulus int, cells []int) *ModularConstraint {
	return &ModularConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Modular", Specific: "Modular Line", Cells: cells},
		N:              n, Modulus: modulus,
	}
}

func (m *ModularConstraint) Clone() lib.Constraint {
	cp := *m
	cp.Cells = append([]int(nil), m.Cells...)
	return &cp
}

func (m *ModularConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for start := 0; start+m.Modulus <= len(m.Cells); start++ {
		window := m.Cells[start : start+m.Modulus]
		for i := 0; i < len(window); i++ {
			for j := i + 1; j < len(window); j++ {
				pairs = append(pairs, GenerateModWeakLinks(m.N, window[i], window[j], m.Modulus)...)
			}
		}
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{m}}
	}
	return lib.SelfDelete(m, NewWeakLinksConstraint(m.Specific, pairs))
}

// EntropicConstraint requires every window of three consecutive cells
// along the line to hold one low, one mid, and one high digit — the N
// values split into three near-equal classes. Reduces to a
// distinct-class weak link on every pair within each window.
type EntropicConstraint struct {
	lib.BaseConstraint
	N int
}

// NewEntropicConstraint builds an entropic line.
func NewEntropicConstraint(n int, cells []int) *EntropicConstraint {
	return &EntropicConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Entropic", Specific: "Entropic Line", Cells: cells},
		N:              n,
	}
}

func (e *EntropicConstraint) Clone() lib.Constraint {
	cp := *e
	cp.Cells = append([]int(nil), e.Cells...)
	return &cp
}

func entropicClass(n, v int) int {
	third := (n + 2) / 3
	switch {
	case v <= third:
		return 0
	case v <= 2*third:
		return 1
	default:
		return 2
	}
}

func (e *EntropicConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for start := 0; start+3 <= len(e.Cells); start++ {
		window := e.Cells[start : start+3]
		for i := 0; i < len(window); i++ {
			for j := i + 1; j < len(window); j++ {
				a, c := window[i], window[j]
				for d1 := 1; d1 <= e.N; d1++ {
					for d2 := 1; d2 <= e.N; d2++ {
						if entropicClass(e.N, d1) == entropicClass(e.N, d2) {
							pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: c, ValueB: d2})
						}
					}
				}
			}
		}
	}
	if len(pairs) == 0 {
		return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{e}}
	}
	return lib.SelfDelete(e, NewWeakLinksConstraint(e.Specific, pairs))
}
