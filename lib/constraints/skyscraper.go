package constraints

import (
	"fmt"
	"sync"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

// SkyscraperConstraint requires that, sighting down the line from its
// first cell, exactly Target cells are "visible" (strictly taller than
// every cell before them). Distinctness is already guaranteed by the
// row/column region the line lies in; this constraint only restricts
// candidates via a position/max-so-far DP.
type SkyscraperConstraint struct {
	lib.BaseConstraint
	N      int
	Target int
}

// NewSkyscraperConstraint builds a skyscraper clue over a line's cells in
// sighting order (nearest cell first).
func NewSkyscraperConstraint(n int, cells []int, target int) *SkyscraperConstraint {
	return &SkyscraperConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Skyscraper", Specific: fmt.Sprintf("Skyscraper (%d)", target), Cells: cells},
		N:              n, Target: target,
	}
}

func (s *SkyscraperConstraint) Clone() lib.Constraint {
	cp := *s
	cp.Cells = append([]int(nil), s.Cells...)
	return &cp
}

// skyTransition is the value-independent part of the DP step: from
// max-so-far m, placing value v moves to max newM and contributes inc to
// the visible count. Precomputed per N and shared across every call.
type skyTransition struct {
	newM, inc int
}

var (
	skyTransMu    sync.Mutex
	skyTransCache = map[int][][]skyTransition{} // [m][v] for m,v in 0..n
)

func skyTransitions(n int) [][]skyTransition {
	skyTransMu.Lock()
	defer skyTransMu.Unlock()
	if t, ok := skyTransCache[n]; ok {
		return t
	}
	t := make([][]skyTransition, n+1)
	for m := 0; m <= n; m++ {
		t[m] = make([]skyTransition, n+1)
		for v := 1; v <= n; v++ {
			if v > m {
				t[m][v] = skyTransition{newM: v, inc: 1}
			} else {
				t[m][v] = skyTransition{newM: m, inc: 0}
			}
		}
	}
	skyTransCache[n] = t
	return t
}

func (s *SkyscraperConstraint) restrict(b *lib.Board) lib.ConstraintResult {
	n, target := s.N, s.Target
	if target < 1 || target > n {
		return lib.INVALID
	}
	trans := skyTransitions(n)
	cells := s.Cells
	L := len(cells)

	masks := make([]bitutil.Mask, L)
	for i, c := range cells {
		masks[i] = b.CandidateMask(c)
	}

	// forward[i][m] = set of counts (as a bool array 0..target) reachable
	// after processing the first i cells with max-so-far m.
	forward := make([][][]bool, L+1)
	for i := range forward {
		forward[i] = make([][]bool, n+1)
		for m := range forward[i] {
			forward[i][m] = make([]bool, target+1)
		}
	}
	forward[0][0][0] = true
	for i := 0; i < L; i++ {
		for m := 0; m <= n; m++ {
			for c := 0; c <= target; c++ {
				if !forward[i][m][c] {
					continue
				}
				for v := 1; v <= n; v++ {
					if masks[i]&bitutil.ValueBit(v) == 0 {
						continue
					}
					tr := trans[m][v]
					nc := c + tr.inc
					if nc > target {
						continue
					}
					forward[i+1][tr.newM][nc] = true
				}
			}
		}
	}

	// backward[i][m] = set of remaining-counts-needed reachable from
	// position i onward, starting with max-so-far m, ending with max==n.
	backward := make([][][]bool, L+1)
	for i := range backward {
		backward[i] = make([][]bool, n+1)
		for m := range backward[i] {
			backward[i][m] = make([]bool, target+1)
		}
	}
	for m := 0; m <= n; m++ {
		if m == n {
			backward[L][m][0] = true
		}
	}
	for i := L - 1; i >= 0; i-- {
		for m := 0; m <= n; m++ {
			for v := 1; v <= n; v++ {
				if masks[i]&bitutil.ValueBit(v) == 0 {
					continue
				}
				tr := trans[m][v]
				for r2 := 0; r2 <= target; r2++ {
					if !backward[i+1][tr.newM][r2] {
						continue
					}
					r := r2 + tr.inc
					if r <= target {
						backward[i][m][r] = true
					}
				}
			}
		}
	}

	result := lib.UNCHANGED
	for i, cell := range cells {
		var survivors bitutil.Mask
		for v := 1; v <= n; v++ {
			if masks[i]&bitutil.ValueBit(v) == 0 {
				continue
			}
			ok := false
			for m := 0; m <= n && !ok; m++ {
				for c := 0; c <= target && !ok; c++ {
					if !forward[i][m][c] {
						continue
					}
					tr := trans[m][v]
					nc := c + tr.inc
					if nc > target {
						continue
					}
					if backward[i+1][tr.newM][target-nc] {
						ok = true
					}
				}
			}
			if ok {
				survivors |= bitutil.ValueBit(v)
			}
		}
		eliminated := masks[i] &^ survivors
		if eliminated == 0 {
			continue
		}
		if b.ClearCellMask(cell, eliminated) == lib.INVALID {
			return lib.INVALID
		}
		result = lib.CHANGED
	}
	return result
}

func (s *SkyscraperConstraint) Init(b *lib.Board) lib.InitResult {
	return lib.InitResult{Result: s.restrict(b)}
}

func (s *SkyscraperConstraint) LogicalStep(b *lib.Board) []lib.Deduction {
	res := s.restrict(b)
	if res == lib.INVALID {
		return []lib.Deduction{lib.InvalidDeduction(fmt.Sprintf("%s: no visibility count of %d remains reachable", s.Specific, s.Target))}
	}
	return nil
}
