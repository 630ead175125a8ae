package constraints

import (
	"fmt"
	"sort"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

// cardState is Cardinality's backtrackable progress: how many of the
// watched candidates are already satisfied (given), and which ones are
// still live (not eliminated, not yet given).
type cardState struct {
	Satisfied int
	Remaining []lib.CandidateIndex
}

func cloneCardState(s cardState) cardState {
	return cardState{Satisfied: s.Satisfied, Remaining: append([]lib.CandidateIndex(nil), s.Remaining...)}
}

// CardinalityConstraint requires that, among a fixed set of candidates,
// the number that end up true lies in AllowedCounts.
type CardinalityConstraint struct {
	lib.BaseConstraint
	Candidates    []lib.CandidateIndex
	AllowedCounts []int

	initialized bool
	stateKey    lib.StateKey[cardState]
}

// NewCardinalityConstraint builds a Cardinality rule over candidates, with
// the given allowed final counts. n is the board size, needed up front to
// recover each candidate's cell for enforce-dispatch registration.
func NewCardinalityConstraint(name string, n int, candidates []lib.CandidateIndex, allowedCounts []int) *CardinalityConstraint {
	sorted := append([]int(nil), allowedCounts...)
	sort.Ints(sorted)
	return &CardinalityConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Cardinality", Specific: name, Cells: cellsOf(candidates, n)},
		Candidates:     candidates,
		AllowedCounts:  sorted,
	}
}

func (cc *CardinalityConstraint) Clone() lib.Constraint {
	cp := *cc
	cp.Candidates = append([]lib.CandidateIndex(nil), cc.Candidates...)
	cp.AllowedCounts = append([]int(nil), cc.AllowedCounts...)
	return &cp
}

func (cc *CardinalityConstraint) min() int { return cc.AllowedCounts[0] }
func (cc *CardinalityConstraint) max() int { return cc.AllowedCounts[len(cc.AllowedCounts)-1] }
func (cc *CardinalityConstraint) allowed(n int) bool {
	for _, a := range cc.AllowedCounts {
		if a == n {
			return true
		}
	}
	return false
}

func (cc *CardinalityConstraint) Init(b *lib.Board) lib.InitResult {
	if cc.initialized {
		return lib.Unchanged()
	}
	cc.initialized = true

	n := b.Size()
	satisfied := 0
	var remaining []lib.CandidateIndex
	for _, ci := range cc.Candidates {
		cell, value := ci.Cell(n), ci.Value(n)
		if b.IsGiven(cell) {
			if b.GetValue(cell) == value {
				satisfied++
			}
			continue
		}
		if b.HasCandidate(cell, value) {
			remaining = append(remaining, ci)
		}
	}

	if len(cc.AllowedCounts) == 0 {
		return lib.InvalidResult()
	}
	maxPossible := satisfied + len(remaining)
	if maxPossible < cc.min() || satisfied > cc.max() {
		return lib.InvalidResult()
	}

	if cc.max() == 0 {
		if satisfied > 0 {
			return lib.InvalidResult()
		}
		for _, ci := range remaining {
			if b.ClearCellMask(ci.Cell(n), bitutil.ValueBit(ci.Value(n))) == lib.INVALID {
				return lib.InvalidResult()
			}
		}
		return lib.InitResult{Result: lib.CHANGED, DeleteConstraints: []lib.Constraint{cc}}
	}

	if cc.max() == 1 && cc.allowed(0) {
		if satisfied > 1 {
			return lib.InvalidResult()
		}
		if satisfied == 1 {
			for _, ci := range remaining {
				if b.ClearCellMask(ci.Cell(n), bitutil.ValueBit(ci.Value(n))) == lib.INVALID {
					return lib.InvalidResult()
				}
			}
			return lib.InitResult{Result: lib.CHANGED, DeleteConstraints: []lib.Constraint{cc}}
		}
		var pairs []Pair
		for i := 0; i < len(remaining); i++ {
			for j := i + 1; j < len(remaining); j++ {
				a, c := remaining[i], remaining[j]
				pairs = append(pairs, Pair{CellA: a.Cell(n), ValueA: a.Value(n), CellB: c.Cell(n), ValueB: c.Value(n)})
			}
		}
		return lib.SelfDelete(cc, NewWeakLinksConstraint(cc.Specific+" (at most one)", pairs))
	}

	if len(remaining) == 0 {
		if cc.allowed(satisfied) {
			return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{cc}}
		}
		return lib.InvalidResult()
	}

	cc.stateKey = lib.RegisterState(b, cardState{Satisfied: satisfied, Remaining: remaining}, cloneCardState)
	return lib.Unchanged()
}

func (cc *CardinalityConstraint) OnCellSet(cell, value int) bool {
	n := cc.Board.Size()
	state := lib.GetState(cc.Board, cc.stateKey)
	idx := indexOfCandidate(state.Remaining, cell, value, n)
	if idx < 0 {
		return true
	}
	state.Remaining = append(append([]lib.CandidateIndex(nil), state.Remaining[:idx]...), state.Remaining[idx+1:]...)
	state.Satisfied++
	lib.SetState(cc.Board, cc.stateKey, state)
	return state.Satisfied <= cc.max()
}

func (cc *CardinalityConstraint) OnCandidateEliminated(cell, value int) bool {
	n := cc.Board.Size()
	state := lib.GetState(cc.Board, cc.stateKey)
	idx := indexOfCandidate(state.Remaining, cell, value, n)
	if idx < 0 {
		return true
	}
	state.Remaining = append(append([]lib.CandidateIndex(nil), state.Remaining[:idx]...), state.Remaining[idx+1:]...)
	lib.SetState(cc.Board, cc.stateKey, state)
	return state.Satisfied+len(state.Remaining) >= cc.min()
}

func (cc *CardinalityConstraint) LogicalStep(b *lib.Board) []lib.Deduction {
	state := lib.GetState(b, cc.stateKey)
	minPossible := state.Satisfied
	maxPossible := state.Satisfied + len(state.Remaining)

	if minPossible == cc.maxAttainableAllowedAtOrBelow(maxPossible) {
		if len(state.Remaining) > 0 {
			return []lib.Deduction{lib.Eliminate(fmt.Sprintf("%s: remaining count fixed at %d", cc.Specific, minPossible), state.Remaining...)}
		}
	}
	if maxPossible == cc.minAttainableAllowedAtOrAbove(minPossible) {
		if len(state.Remaining) > 0 {
			return []lib.Deduction{lib.ForceSingles(fmt.Sprintf("%s: remaining must all be true", cc.Specific), state.Remaining...)}
		}
	}
	return nil
}

// maxAttainableAllowedAtOrBelow returns the largest allowed count <= ceiling
// for which no candidate beyond minPossible (i.e. the current satisfied
// count) is needed — used to detect "every remaining candidate must be
// false" once the satisfied count alone already reaches an allowed value
// and no larger allowed value is reachable.
func (cc *CardinalityConstraint) maxAttainableAllowedAtOrBelow(ceiling int) int {
	best := -1
	for _, a := range cc.AllowedCounts {
		if a <= ceiling && a > best {
			best = a
		}
	}
	return best
}

func (cc *CardinalityConstraint) minAttainableAllowedAtOrAbove(floor int) int {
	best := -1
	for _, a := range cc.AllowedCounts {
		if a >= floor && (best == -1 || a < best) {
			best = a
		}
	}
	return best
}

func indexOfCandidate(cis []lib.CandidateIndex, cell, value, n int) int {
	target := lib.NewCandidateIndex(cell, value, n)
	for i, ci := range cis {
		if ci == target {
			return i
		}
	}
	return -1
}

func cellsOf(cis []lib.CandidateIndex, n int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, ci := range cis {
		cell := ci.Cell(n)
		if !seen[cell] {
			seen[cell] = true
			out = append(out, cell)
		}
	}
	return out
}
