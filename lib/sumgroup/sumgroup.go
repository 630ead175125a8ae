// Package sumgroup implements the combinatorial sum-reasoning engine
// described by the core: a SumGroup is a set of cells known (via the
// Board's region graph) to hold pairwise-distinct values, optionally with
// one value excluded from consideration. It answers three questions —
// what sums are attainable, whether a particular sum is attainable, and
// which per-cell candidates survive restricting to a set of target sums —
// all memoized against the Board so repeated queries during search are
// cheap.
package sumgroup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

// SumGroup represents cells known to be pairwise distinct, with an
// optional excluded value (0 means no exclusion).
type SumGroup struct {
	Cells         []int
	ExcludedValue int
}

// New builds a SumGroup over cells, excluding excludedValue (0 for none)
// from every cell's consideration.
func New(cells []int, excludedValue int) *SumGroup {
	return &SumGroup{Cells: append([]int(nil), cells...), ExcludedValue: excludedValue}
}

func maskSignature(b *lib.Board, cells []int) string {
	var sb strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&sb, "%d:%d,", c, b.Cell(c))
	}
	return sb.String()
}

func (g *SumGroup) usableMask(b *lib.Board, cell int) bitutil.Mask {
	m := b.CandidateMask(cell)
	if g.ExcludedValue != 0 {
		m &^= bitutil.ValueBit(g.ExcludedValue)
	}
	return m
}

func (g *SumGroup) memoKey(purpose string, b *lib.Board, extra string) string {
	return fmt.Sprintf("sumgroup|%s|%v|%d|%s|%s", purpose, g.Cells, g.ExcludedValue, maskSignature(b, g.Cells), extra)
}

// unsetCells returns the cells of the group that are not yet given, and
// the sum already contributed by given cells.
func (g *SumGroup) unsetCells(b *lib.Board) ([]int, int) {
	var unset []int
	givenSum := 0
	for _, c := range g.Cells {
		if b.IsGiven(c) {
			givenSum += b.GetValue(c)
		} else {
			unset = append(unset, c)
		}
	}
	return unset, givenSum
}

// MinMaxSum returns the smallest and largest sums realizable by placing a
// valid assignment into this group's still-unset cells, given their
// current candidate sets.
func (g *SumGroup) MinMaxSum(b *lib.Board) (int, int) {
	key := g.memoKey("minmax", b, "")
	if cached, ok := b.GetMemo(key); ok {
		pair := cached.([2]int)
		return pair[0], pair[1]
	}

	min, max := g.computeMinMaxSum(b)
	b.StoreMemo(key, [2]int{min, max})
	return min, max
}

func (g *SumGroup) computeMinMaxSum(b *lib.Board) (int, int) {
	n := b.Size()
	unset, givenSum := g.unsetCells(b)

	if len(unset) == 0 {
		return givenSum, givenSum
	}

	// N cells covering the full group (no exclusion): sum is forced.
	if g.ExcludedValue == 0 && len(g.Cells) == n && len(unset) == n {
		total := n * (n + 1) / 2
		return total, total
	}

	union := bitutil.Mask(0)
	for _, c := range unset {
		union |= g.usableMask(b, c)
	}
	values := bitutil.Values(union)

	// k unset values equal k unset cells: a hidden-subset style proof that
	// every one of those values must be used, so the sum is exact.
	if len(values) == len(unset) {
		sum := givenSum
		for _, v := range values {
			sum += v
		}
		return sum, sum
	}

	if len(unset) == 1 {
		m := g.usableMask(b, unset[0])
		return givenSum + bitutil.FirstValue(m), givenSum + bitutil.LastValue(m)
	}

	min, max := -1, -1
	for _, combo := range bitutil.Combinations(values, len(unset)) {
		if !b.CanPlaceDigitsAnyOrder(unset, combo) {
			continue
		}
		sum := givenSum
		for _, v := range combo {
			sum += v
		}
		if min == -1 || sum < min {
			min = sum
		}
		if max == -1 || sum > max {
			max = sum
		}
	}
	return min, max
}

// PossibleSums returns every sum attainable by some valid assignment of
// this group's unset cells, sorted ascending.
func (g *SumGroup) PossibleSums(b *lib.Board) []int {
	key := g.memoKey("possible", b, "")
	if cached, ok := b.GetMemo(key); ok {
		return append([]int(nil), cached.([]int)...)
	}

	sums := g.computePossibleSums(b)
	b.StoreMemo(key, append([]int(nil), sums...))
	return sums
}

func (g *SumGroup) computePossibleSums(b *lib.Board) []int {
	unset, givenSum := g.unsetCells(b)
	if len(unset) == 0 {
		return []int{givenSum}
	}

	union := bitutil.Mask(0)
	for _, c := range unset {
		union |= g.usableMask(b, c)
	}
	values := bitutil.Values(union)

	seen := make(map[int]bool)
	for _, combo := range bitutil.Combinations(values, len(unset)) {
		if !b.CanPlaceDigitsAnyOrder(unset, combo) {
			continue
		}
		sum := givenSum
		for _, v := range combo {
			sum += v
		}
		seen[sum] = true
	}

	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// IsSumPossible reports whether sum is attainable by this group.
func (g *SumGroup) IsSumPossible(b *lib.Board, sum int) bool {
	key := g.memoKey("issumpossible", b, fmt.Sprintf("%d", sum))
	if cached, ok := b.GetMemo(key); ok {
		return cached.(bool)
	}

	min, max := g.MinMaxSum(b)
	result := false
	if sum >= min && sum <= max {
		for _, s := range g.PossibleSums(b) {
			if s == sum {
				result = true
				break
			}
		}
	}
	b.StoreMemo(key, result)
	return result
}

type restrictPayload struct {
	ok    bool
	masks map[int]bitutil.Mask
}

// RestrictSums intersects each cell's candidate mask with the values that
// can appear in that cell under some realization whose total lies in
// sums. Short-circuits on a single unset cell.
func (g *SumGroup) RestrictSums(b *lib.Board, sums []int) lib.ConstraintResult {
	sorted := append([]int(nil), sums...)
	sort.Ints(sorted)
	key := g.memoKey("restrict", b, fmt.Sprintf("%v", sorted))
	if cached, ok := b.GetMemo(key); ok {
		p := cached.(restrictPayload)
		if !p.ok {
			return lib.INVALID
		}
		return g.applyMasks(b, p.masks)
	}

	masks, ok := g.computeRestrictMasks(b, sorted)
	b.StoreMemo(key, restrictPayload{ok: ok, masks: masks})
	if !ok {
		return lib.INVALID
	}
	return g.applyMasks(b, masks)
}

func (g *SumGroup) applyMasks(b *lib.Board, masks map[int]bitutil.Mask) lib.ConstraintResult {
	result := lib.UNCHANGED
	for cell, m := range masks {
		res := b.KeepCellMask(cell, m|b.GivenBit())
		if res == lib.INVALID {
			return lib.INVALID
		}
		if res == lib.CHANGED {
			result = lib.CHANGED
		}
	}
	return result
}

// computeRestrictMasks returns, per unset cell, the union of values that
// appear in some feasible combination whose sum lies in sums. ok is false
// if no realization exists at all.
func (g *SumGroup) computeRestrictMasks(b *lib.Board, sums []int) (map[int]bitutil.Mask, bool) {
	unset, givenSum := g.unsetCells(b)
	allowed := make(map[int]bool, len(sums))
	for _, s := range sums {
		allowed[s] = true
	}

	if len(unset) == 0 {
		if allowed[givenSum] {
			return map[int]bitutil.Mask{}, true
		}
		return nil, false
	}

	if len(unset) == 1 {
		cell := unset[0]
		m := g.usableMask(b, cell)
		keep := bitutil.Mask(0)
		for _, v := range bitutil.Values(m) {
			if allowed[givenSum+v] {
				keep |= bitutil.ValueBit(v)
			}
		}
		if keep == 0 {
			return nil, false
		}
		return map[int]bitutil.Mask{cell: keep}, true
	}

	union := bitutil.Mask(0)
	for _, c := range unset {
		union |= g.usableMask(b, c)
	}
	values := bitutil.Values(union)

	result := make(map[int]bitutil.Mask, len(unset))
	for _, c := range unset {
		result[c] = 0
	}
	any := false

	for _, combo := range bitutil.Combinations(values, len(unset)) {
		sum := givenSum
		for _, v := range combo {
			sum += v
		}
		if !allowed[sum] {
			continue
		}
		for _, perm := range bitutil.Permutations(combo) {
			// this exact ordering must fit: perm[i] in unset[i], with no
			// weak link between any two of the placed candidates
			fits := true
			for i := 0; i < len(unset) && fits; i++ {
				ci := lib.NewCandidateIndex(unset[i], perm[i], b.Size())
				fits = b.HasCandidate(unset[i], perm[i])
				for j := 0; j < i && fits; j++ {
					fits = !b.IsWeakLink(ci, lib.NewCandidateIndex(unset[j], perm[j], b.Size()))
				}
			}
			if !fits {
				continue
			}
			any = true
			for i, cell := range unset {
				result[cell] |= bitutil.ValueBit(perm[i])
			}
		}
	}

	if !any {
		return nil, false
	}
	return result, true
}
