package lib

import "github.com/holloway-dev/variantsudoku/lib/bitutil"

// CanPlaceDigitsAnyOrder reports whether some assignment of values (taken
// as a set, any order) to cells is simultaneously feasible: every value is
// still a candidate of the cell it lands on, and no two assigned
// candidates are weak-linked. SumGroup.MinMaxSum/RestrictSums use this to
// test a candidate combination against the weak-link graph instead of
// re-deriving distinctness and other binary rules from scratch.
func (b *Board) CanPlaceDigitsAnyOrder(cells []int, values []int) bool {
	if len(cells) != len(values) {
		return false
	}
	if len(cells) == 0 {
		return true
	}

	for _, perm := range bitutil.Permutations(values) {
		if b.tryPlacement(cells, perm) {
			return true
		}
	}
	return false
}

func (b *Board) tryPlacement(cells []int, values []int) bool {
	cis := make([]CandidateIndex, len(cells))
	for i, cell := range cells {
		if !b.HasCandidate(cell, values[i]) {
			return false
		}
		cis[i] = NewCandidateIndex(cell, values[i], b.size)
	}
	for i := 0; i < len(cis); i++ {
		for j := i + 1; j < len(cis); j++ {
			if b.IsWeakLink(cis[i], cis[j]) {
				return false
			}
		}
	}
	return true
}
