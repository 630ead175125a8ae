// Package solve is the outer orchestrator: a collaborator of the
// constraint core, not part of it. It alternates logical-step
// propagation with guess-and-backtrack search, driving the Board purely
// through its public primitives (SetAsGiven, Clone, Constraints,
// ApplyDeduction). Nothing here reaches into Board internals.
package solve

import (
	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
	"github.com/holloway-dev/variantsudoku/lib/logger"
)

// Result reports how a solve attempt ended.
type Result int

const (
	// Solved means every cell holds exactly one value.
	Solved Result = iota
	// Contradiction means propagation or search exhausted every branch.
	Contradiction
	// Indeterminate means the branch-node budget (Options.MaxNodes) ran
	// out before either a solution or a contradiction was reached.
	Indeterminate
)

// Options bounds the search. A zero value means "no limit".
type Options struct {
	// MaxNodes caps how many branch nodes (guesses) Solve will explore
	// before giving up with Indeterminate. Zero means unlimited.
	MaxNodes int
}

// Solve runs propagation to fixpoint and, if the board isn't fully
// determined, backtracking search on the cell with the fewest remaining
// candidates, until it finds a solution, proves a contradiction, or
// exhausts opts.MaxNodes. It does not mutate b; the returned board (on
// Solved) is an independent clone.
func Solve(b *lib.Board, opts Options) (*lib.Board, Result) {
	nodes := 0
	return search(b, opts, &nodes)
}

func search(b *lib.Board, opts Options, nodes *int) (*lib.Board, Result) {
	work := b.Clone()
	if work.InvalidInit() || propagateToFixpoint(work) == lib.INVALID {
		return nil, Contradiction
	}

	cell, ok := mostConstrainedCell(work)
	if !ok {
		return work, Solved
	}

	if opts.MaxNodes > 0 && *nodes >= opts.MaxNodes {
		return nil, Indeterminate
	}

	values := bitutil.Values(work.CandidateMask(cell))
	sawIndeterminate := false
	for _, v := range values {
		*nodes++
		logger.Debug("trying cell %d = %d (node %d)", cell, v, *nodes)
		branch := work.Clone()
		if branch.SetAsGiven(cell, v) == lib.INVALID {
			continue
		}
		solution, result := search(branch, opts, nodes)
		switch result {
		case Solved:
			return solution, Solved
		case Indeterminate:
			sawIndeterminate = true
		}
	}
	if sawIndeterminate {
		return nil, Indeterminate
	}
	return nil, Contradiction
}

// propagateToFixpoint drives every active constraint's LogicalStep,
// applying deductions as they arrive, until none report CHANGED.
func propagateToFixpoint(b *lib.Board) lib.ConstraintResult {
	for {
		changed := false
		for _, c := range append([]lib.Constraint(nil), b.Constraints()...) {
			for _, d := range c.LogicalStep(b) {
				res := lib.ApplyDeduction(b, d)
				if res == lib.INVALID {
					return lib.INVALID
				}
				if res == lib.CHANGED {
					changed = true
				}
			}
		}
		if !changed {
			return lib.UNCHANGED
		}
	}
}

// mostConstrainedCell returns the unsolved cell with the fewest remaining
// candidates (the classic minimum-remaining-values heuristic), or false
// if every cell is already given.
func mostConstrainedCell(b *lib.Board) (int, bool) {
	best := -1
	bestCount := 0
	for cell := 0; cell < b.NumCells(); cell++ {
		if b.IsGiven(cell) {
			continue
		}
		count := bitutil.PopCount(b.CandidateMask(cell))
		if best == -1 || count < bestCount {
			best, bestCount = cell, count
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
