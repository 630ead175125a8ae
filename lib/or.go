package lib

import "github.com/holloway-dev/variantsudoku/lib/bitutil"

// Or holds an ordered list of subboards representing a disjunction: the
// real board state is whichever subboard turns out consistent, so a
// candidate survives the parent only if at least one subboard keeps it,
// and a weak link belongs in the parent only if every surviving subboard
// agrees on it. This is how case splits too rich to express as direct
// weak links get encoded: sandwich sum, X-sum, and the
// ordering half of between-line and lockout.
type Or struct {
	Subboards []*Board
	cells     []int
}

// NewOr builds an Or over subboards already seeded with their
// case-specific constraints (added via AddConstraint on each subboard
// before calling Init). cells scopes the weak-link lift-up to the
// candidates the owning constraint actually cares about — lifting over
// the full board is not worth its O(cells^2) cost for what is usually a
// handful of relevant cells.
func NewOr(subboards []*Board, cells []int) *Or {
	return &Or{Subboards: subboards, cells: append([]int(nil), cells...)}
}

// propagateDown copies the parent's current cell masks and regions, and
// the parent's weak links among the Or's own cells, into every live
// subboard.
func (o *Or) propagateDown(parent *Board) {
	for _, sb := range o.Subboards {
		for cell := 0; cell < parent.NumCells(); cell++ {
			sb.KeepCellMask(cell, parent.Cell(cell))
		}
		for _, r := range parent.Regions() {
			sb.AddRegion(r.Name, r.Cells, r.Type, r.FromConstraint)
		}
		n := parent.Size()
		for _, a := range o.cells {
			for _, c := range o.cells {
				for va := 1; va <= n; va++ {
					for vc := 1; vc <= n; vc++ {
						ai := NewCandidateIndex(a, va, n)
						ci := NewCandidateIndex(c, vc, n)
						if parent.IsWeakLink(ai, ci) {
							sb.AddWeakLink(ai, ci)
						}
					}
				}
			}
		}
	}
}

// liftUp pushes eliminations and weak links shared by every surviving
// subboard back up into the parent. Returns INVALID if no subboard
// survives.
func (o *Or) liftUp(parent *Board) ConstraintResult {
	if len(o.Subboards) == 0 {
		return INVALID
	}

	result := UNCHANGED
	n := parent.Size()

	for cell := 0; cell < parent.NumCells(); cell++ {
		var union bitutil.Mask
		for _, sb := range o.Subboards {
			union |= sb.CandidateMask(cell)
		}
		eliminated := parent.CandidateMask(cell) &^ union
		if eliminated == 0 {
			continue
		}
		if parent.ClearCellMask(cell, eliminated) == INVALID {
			return INVALID
		}
		result = CHANGED
	}

	for _, a := range o.cells {
		for _, c := range o.cells {
			for va := 1; va <= n; va++ {
				for vc := 1; vc <= n; vc++ {
					ai := NewCandidateIndex(a, va, n)
					ci := NewCandidateIndex(c, vc, n)
					if parent.IsWeakLink(ai, ci) {
						continue
					}
					sharedByAll := true
					for _, sb := range o.Subboards {
						if !sb.IsWeakLink(ai, ci) {
							sharedByAll = false
							break
						}
					}
					if sharedByAll {
						if parent.AddWeakLink(ai, ci) == CHANGED {
							result = CHANGED
						}
					}
				}
			}
		}
	}

	return result
}

// Init runs every subboard's constraints to fixpoint, drops any that go
// INVALID, and lifts shared conclusions back into parent.
func (o *Or) Init(parent *Board) ConstraintResult {
	o.propagateDown(parent)
	var live []*Board
	for _, sb := range o.Subboards {
		if sb.RunInitFixpoint() == INVALID || sb.InvalidInit() {
			continue
		}
		live = append(live, sb)
	}
	o.Subboards = live
	return o.liftUp(parent)
}

// TryAssign attempts cell=value in every subboard, dropping any that go
// INVALID. Reports INVALID only when every subboard drops.
func (o *Or) TryAssign(cell, value int) ConstraintResult {
	var live []*Board
	for _, sb := range o.Subboards {
		if sb.SetAsGiven(cell, value) == INVALID {
			continue
		}
		live = append(live, sb)
	}
	o.Subboards = live
	if len(live) == 0 {
		return INVALID
	}
	return UNCHANGED
}

// Step propagates the parent's state down, drives every subboard's
// constraints through one internal logical-step fixpoint (discarding
// their human-facing explanations), drops subboards
// that go INVALID, and lifts shared conclusions back up.
func (o *Or) Step(parent *Board) ConstraintResult {
	o.propagateDown(parent)
	var live []*Board
	for _, sb := range o.Subboards {
		if stepToFixpoint(sb) == INVALID {
			continue
		}
		live = append(live, sb)
	}
	o.Subboards = live
	return o.liftUp(parent)
}

// stepToFixpoint repeatedly runs every active constraint's LogicalStep on
// sb, applying deductions as they arrive, until none report CHANGED.
func stepToFixpoint(sb *Board) ConstraintResult {
	for {
		changed := false
		for _, c := range append([]Constraint(nil), sb.Constraints()...) {
			for _, d := range c.LogicalStep(sb) {
				res := ApplyDeduction(sb, d)
				if res == INVALID {
					return INVALID
				}
				if res == CHANGED {
					changed = true
				}
			}
		}
		if !changed {
			return UNCHANGED
		}
	}
}

// Clone deep-clones every subboard, producing an independent Or.
func (o *Or) Clone() *Or {
	cloned := make([]*Board, len(o.Subboards))
	for i, sb := range o.Subboards {
		cloned[i] = sb.Clone()
	}
	return &Or{Subboards: cloned, cells: append([]int(nil), o.cells...)}
}
