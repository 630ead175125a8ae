// Package sumcells composes several SumGroups formed by partitioning a
// cell list into mutually-exclusive distinctness groups (cells in
// different groups carry no uniqueness relation to each other), and
// aggregates their sums additively. It backs every multi-cell sum rule
// that isn't itself a single region: killer cages, arrows, little-killer
// clues, region-sum lines.
package sumcells

import (
	"sort"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/sumgroup"
)

// exactGroupThreshold bounds the sumset convolution in PossibleSums: above
// this many still-unsolved groups, an exact convolution would enumerate
// too many combinations, so PossibleSums falls back to the conservative
// [min,max] interval.
const exactGroupThreshold = 5

// SumCellsHelper aggregates sum reasoning over a cell list that may span
// several independent distinctness groups.
type SumCellsHelper struct {
	Cells         []int
	ExcludedValue int
}

// New builds a SumCellsHelper over cells, excluding excludedValue (0 for
// none) from consideration in every group.
func New(cells []int, excludedValue int) *SumCellsHelper {
	return &SumCellsHelper{Cells: append([]int(nil), cells...), ExcludedValue: excludedValue}
}

func (h *SumCellsHelper) groups(b *lib.Board) []*sumgroup.SumGroup {
	parts := b.SplitIntoGroups(h.Cells)
	out := make([]*sumgroup.SumGroup, len(parts))
	for i, p := range parts {
		out[i] = sumgroup.New(p, h.ExcludedValue)
	}
	return out
}

func incompleteGroups(b *lib.Board, groups []*sumgroup.SumGroup) []*sumgroup.SumGroup {
	var out []*sumgroup.SumGroup
	for _, g := range groups {
		for _, c := range g.Cells {
			if !b.IsGiven(c) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// MinMaxSum returns the smallest and largest sums realizable across every
// group combined.
func (h *SumCellsHelper) MinMaxSum(b *lib.Board) (int, int) {
	groups := h.groups(b)
	min, max := 0, 0
	for _, g := range groups {
		gmin, gmax := g.MinMaxSum(b)
		min += gmin
		max += gmax
	}
	return min, max
}

// PossibleSums returns every attainable total sum, exact when at most
// exactGroupThreshold groups still have unset cells, otherwise the full
// [min,max] interval as a conservative superset.
func (h *SumCellsHelper) PossibleSums(b *lib.Board) []int {
	groups := h.groups(b)
	if len(incompleteGroups(b, groups)) > exactGroupThreshold {
		min, max := h.MinMaxSum(b)
		out := make([]int, 0, max-min+1)
		for s := min; s <= max; s++ {
			out = append(out, s)
		}
		return out
	}

	sums := []int{0}
	for _, g := range groups {
		sums = convolve(sums, g.PossibleSums(b))
	}
	sort.Ints(sums)
	return sums
}

func convolve(a, b []int) []int {
	seen := make(map[int]bool)
	for _, x := range a {
		for _, y := range b {
			seen[x+y] = true
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// IsSumPossible reports whether sum is attainable across all groups.
func (h *SumCellsHelper) IsSumPossible(b *lib.Board, sum int) bool {
	for _, s := range h.PossibleSums(b) {
		if s == sum {
			return true
		}
	}
	return false
}

func rangeInts(lo, hi int) []int {
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

// RestrictSums intersects the realizable sums of this cell list with
// sums, tightening each group's candidates via a degrees-of-freedom
// analysis: a group's sum may rise above its own minimum by as much as the
// slack between the target's maximum and the aggregate minimum, and fall
// below its own maximum by as much as the slack between the aggregate
// maximum and the target's minimum. When only one group still has unset
// cells, its target is narrowed to an exact shifted copy of sums instead.
func (h *SumCellsHelper) RestrictSums(b *lib.Board, sums []int) lib.ConstraintResult {
	if len(sums) == 0 {
		return lib.INVALID
	}
	groups := h.groups(b)

	targetMin, targetMax := sums[0], sums[0]
	for _, s := range sums {
		if s < targetMin {
			targetMin = s
		}
		if s > targetMax {
			targetMax = s
		}
	}

	totalMin, totalMax := 0, 0
	groupBounds := make([][2]int, len(groups))
	for i, g := range groups {
		gmin, gmax := g.MinMaxSum(b)
		groupBounds[i] = [2]int{gmin, gmax}
		totalMin += gmin
		totalMax += gmax
	}

	if totalMin > targetMax || totalMax < targetMin {
		return lib.INVALID
	}

	incomplete := incompleteGroups(b, groups)
	if len(incomplete) == 0 {
		total := totalMin // totalMin == totalMax when every group is fully given
		for _, s := range sums {
			if s == total {
				return lib.UNCHANGED
			}
		}
		return lib.INVALID
	}

	if len(incomplete) == 1 {
		otherGivenSum := totalMin // sum of every other (fully-given) group
		for i, g := range groups {
			if g == incomplete[0] {
				otherGivenSum -= groupBounds[i][0]
			}
		}
		shifted := make([]int, len(sums))
		for i, s := range sums {
			shifted[i] = s - otherGivenSum
		}
		return incomplete[0].RestrictSums(b, shifted)
	}

	result := lib.UNCHANGED
	for i, g := range groups {
		gmin, gmax := groupBounds[i][0], groupBounds[i][1]
		lo := gmax - (totalMax - targetMin)
		if lo < gmin {
			lo = gmin
		}
		hi := gmin + (targetMax - totalMin)
		if hi > gmax {
			hi = gmax
		}
		if lo > hi {
			return lib.INVALID
		}
		res := g.RestrictSums(b, rangeInts(lo, hi))
		if res == lib.INVALID {
			return lib.INVALID
		}
		if res == lib.CHANGED {
			result = lib.CHANGED
		}
	}
	return result
}
