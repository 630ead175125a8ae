package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
	"github.com/holloway-dev/variantsudoku/lib/sumcells"
)

// FixedSumConstraint requires the given cells to sum to exactly Target.
// Size 1 reduces to a given; size 2 first drops every value with no
// partner in the other cell, then reduces to pairwise weak links over every
// incompatible value pair; size >= 3 keeps a SumCellsHelper alive across
// logical steps.
type FixedSumConstraint struct {
	lib.BaseConstraint
	N      int
	Target int
	helper *sumcells.SumCellsHelper
}

// NewFixedSumConstraint builds a fixed-sum rule over cells with the given
// target.
func NewFixedSumConstraint(name string, n int, cells []int, target int) *FixedSumConstraint {
	return &FixedSumConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "FixedSum", Specific: name, Cells: cells},
		N:              n, Target: target,
	}
}

func (f *FixedSumConstraint) Clone() lib.Constraint {
	cp := *f
	cp.Cells = append([]int(nil), f.Cells...)
	return &cp
}

func (f *FixedSumConstraint) Init(b *lib.Board) lib.InitResult {
	switch len(f.Cells) {
	case 0:
		return lib.InvalidResult()
	case 1:
		if f.Target < 1 || f.Target > f.N {
			return lib.InvalidResult()
		}
		res := b.SetAsGiven(f.Cells[0], f.Target)
		if res == lib.INVALID {
			return lib.InvalidResult()
		}
		return lib.InitResult{Result: lib.CHANGED, DeleteConstraints: []lib.Constraint{f}}
	case 2:
		var pairs []Pair
		a, c := f.Cells[0], f.Cells[1]
		var keepA, keepC bitutil.Mask
		for d1 := 1; d1 <= f.N; d1++ {
			for d2 := 1; d2 <= f.N; d2++ {
				if d1+d2 != f.Target {
					pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: c, ValueB: d2})
				} else if b.HasCandidate(a, d1) && b.HasCandidate(c, d2) {
					keepA |= bitutil.ValueBit(d1)
					keepC |= bitutil.ValueBit(d2)
				}
			}
		}
		if b.KeepCellMask(a, keepA|b.GivenBit()) == lib.INVALID || b.KeepCellMask(c, keepC|b.GivenBit()) == lib.INVALID {
			return lib.InvalidResult()
		}
		return lib.SelfDelete(f, NewWeakLinksConstraint(f.Specific, pairs))
	default:
		if f.helper == nil {
			f.helper = sumcells.New(f.Cells, 0)
		}
		res := f.helper.RestrictSums(b, []int{f.Target})
		if res == lib.INVALID {
			return lib.InvalidResult()
		}
		return lib.InitResult{Result: res}
	}
}

func (f *FixedSumConstraint) LogicalStep(b *lib.Board) []lib.Deduction {
	if f.helper == nil || len(f.Cells) < 3 {
		return nil
	}
	res := f.helper.RestrictSums(b, []int{f.Target})
	if res == lib.INVALID {
		return []lib.Deduction{lib.InvalidDeduction(fmt.Sprintf("%s: sum %d unreachable", f.Specific, f.Target))}
	}
	return nil
}

// EqualSumConstraint requires several disjoint cell lists to share a
// common (otherwise unconstrained) sum, optionally with one list empty and
// offset by a constant.
type EqualSumConstraint struct {
	lib.BaseConstraint
	N       int
	Groups  [][]int
	Offset  int
	HasOffsetGroup bool
	helpers []*sumcells.SumCellsHelper
}

// NewEqualSumConstraint builds an equal-sum rule across groups. If one
// group is empty, offset supplies the constant that group contributes.
func NewEqualSumConstraint(name string, n int, groups [][]int, offset int, hasOffsetGroup bool) *EqualSumConstraint {
	var cells []int
	for _, g := range groups {
		cells = append(cells, g...)
	}
	return &EqualSumConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "EqualSum", Specific: name, Cells: cells},
		N:              n, Groups: groups, Offset: offset, HasOffsetGroup: hasOffsetGroup,
	}
}

func (e *EqualSumConstraint) Clone() lib.Constraint {
	cp := *e
	cp.Groups = make([][]int, len(e.Groups))
	for i, g := range e.Groups {
		cp.Groups[i] = append([]int(nil), g...)
	}
	cp.Cells = append([]int(nil), e.Cells...)
	return &cp
}

func (e *EqualSumConstraint) ensureHelpers() {
	if e.helpers != nil {
		return
	}
	e.helpers = make([]*sumcells.SumCellsHelper, len(e.Groups))
	for i, g := range e.Groups {
		e.helpers[i] = sumcells.New(g, 0)
	}
}

func (e *EqualSumConstraint) Init(b *lib.Board) lib.InitResult {
	e.ensureHelpers()

	if e.HasOffsetGroup {
		var replacements []lib.Constraint
		for i, g := range e.Groups {
			if len(g) == 0 {
				continue
			}
			replacements = append(replacements, NewFixedSumConstraint(
				fmt.Sprintf("%s (group %d)", e.Specific, i), e.N, g, e.Offset))
		}
		return lib.SelfDelete(e, replacements...)
	}

	return lib.InitResult{Result: e.restrictToSharedSum(b)}
}

func (e *EqualSumConstraint) restrictToSharedSum(b *lib.Board) lib.ConstraintResult {
	if len(e.helpers) == 0 {
		return lib.UNCHANGED
	}

	shared := e.helpers[0].PossibleSums(b)
	for _, h := range e.helpers[1:] {
		shared = intersectSorted(shared, h.PossibleSums(b))
	}
	if len(shared) == 0 {
		return lib.INVALID
	}

	result := lib.UNCHANGED
	for _, h := range e.helpers {
		res := h.RestrictSums(b, shared)
		if res == lib.INVALID {
			return lib.INVALID
		}
		if res == lib.CHANGED {
			result = lib.CHANGED
		}
	}
	return result
}

func (e *EqualSumConstraint) LogicalStep(b *lib.Board) []lib.Deduction {
	if e.HasOffsetGroup {
		return nil
	}
	res := e.restrictToSharedSum(b)
	if res == lib.INVALID {
		return []lib.Deduction{lib.InvalidDeduction(e.Specific + ": no shared sum remains")}
	}
	return nil
}

func intersectSorted(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []int
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}
