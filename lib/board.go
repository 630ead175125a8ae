// Package lib is the core of the constraint-satisfaction engine: Board
// (the mutable candidate-set state, weak-link graph, region registry,
// memoization store and backtrackable constraint-state arena) and the
// Constraint protocol through which rule variants interact with it.
package lib

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/holloway-dev/variantsudoku/lib/bitutil"
	"github.com/holloway-dev/variantsudoku/lib/logger"
	"github.com/holloway-dev/variantsudoku/lib/observer"
)

// BoardError is a plain-message error type for board validation. Neither
// Board nor the builder returns it; the builder reports its errors through
// github.com/pkg/errors.
type BoardError struct {
	Message string
}

func (e *BoardError) Error() string { return e.Message }

type pendingSingle struct {
	cell  int
	value int
}

// Board is the central mutable state container for a puzzle in progress.
type Board struct {
	size      int
	allValues bitutil.Mask
	givenBit  bitutil.Mask

	cells []bitutil.Mask

	weakLinks  []*bitset.BitSet
	regions    []*Region
	regionKeys map[string]bool

	constraints   []Constraint
	cellNotifiers []*observer.CellNotifier

	state *stateArena
	memo  *memoStore

	constraintsFinalized bool
	invalidInit          bool

	pendingSingles []pendingSingle
}

// NewBoard creates a board of size n (n*n cells, candidate values 1..n).
func NewBoard(n int) *Board {
	logger.Info("Creating new board of size %d", n)

	b := &Board{
		size:          n,
		allValues:     bitutil.AllValues(n),
		givenBit:      bitutil.GivenBit(n),
		cells:         make([]bitutil.Mask, n*n),
		weakLinks:     make([]*bitset.BitSet, n*n*n),
		regionKeys:    make(map[string]bool),
		cellNotifiers: make([]*observer.CellNotifier, n*n),
		state:         newStateArena(),
		memo:          newMemoStore(),
	}

	all := bitutil.AllValues(n)
	for i := range b.cells {
		b.cells[i] = all
	}
	for i := range b.cellNotifiers {
		b.cellNotifiers[i] = observer.NewCellNotifier()
	}
	for i := range b.weakLinks {
		b.weakLinks[i] = bitset.New(uint(n * n * n))
	}

	logger.Info("Board created with %d cells", n*n)
	return b
}

// Size returns N.
func (b *Board) Size() int { return b.size }

// AllValues returns the mask of every candidate value (bits 0..N-1).
func (b *Board) AllValues() bitutil.Mask { return b.allValues }

// GivenBit returns the reserved given-bit mask.
func (b *Board) GivenBit() bitutil.Mask { return b.givenBit }

// NumCells returns N*N.
func (b *Board) NumCells() int { return b.size * b.size }

// Cell returns the current candidate mask for a cell, given bit included
// if solved.
func (b *Board) Cell(cell int) bitutil.Mask { return b.cells[cell] }

// IsGiven reports whether a cell has been confirmed.
func (b *Board) IsGiven(cell int) bool { return b.cells[cell]&b.givenBit != 0 }

// GetValue returns the confirmed value of a given cell, or 0 if not given.
func (b *Board) GetValue(cell int) int {
	if !b.IsGiven(cell) {
		return 0
	}
	return bitutil.FirstValue(b.cells[cell] & b.allValues)
}

// CandidateMask returns the candidate bits only (given bit masked off).
func (b *Board) CandidateMask(cell int) bitutil.Mask {
	return b.cells[cell] & b.allValues
}

// HasCandidate reports whether value is still possible in cell.
func (b *Board) HasCandidate(cell, value int) bool {
	return b.cells[cell]&bitutil.ValueBit(value) != 0
}

// InvalidInit reports whether some primitive mutation failed during init.
func (b *Board) InvalidInit() bool { return b.invalidInit }

// ConstraintsFinalized reports whether FinalizeConstraints has completed.
func (b *Board) ConstraintsFinalized() bool { return b.constraintsFinalized }

// Constraints returns the active constraint list.
func (b *Board) Constraints() []Constraint { return b.constraints }

func (b *Board) universeMask() bitutil.Mask { return b.allValues | b.givenBit }

// KeepCellMask intersects cell's mask with mask. If no candidate value is
// left (the given bit alone does not count), the board is INVALID. Cascading enforce_candidate_elim dispatch and
// naked-single promotion are processed to local fixpoint before this call
// returns.
func (b *Board) KeepCellMask(cell int, mask bitutil.Mask) ConstraintResult {
	res := b.keepCellMaskRaw(cell, mask)
	if res == INVALID {
		return INVALID
	}
	return Combine(res, b.drainPendingSingles())
}

func (b *Board) keepCellMaskRaw(cell int, mask bitutil.Mask) ConstraintResult {
	old := b.cells[cell]
	newMask := old & mask
	if newMask == old {
		return UNCHANGED
	}
	if newMask&b.allValues == 0 {
		b.invalidInit = true
		logger.DebugCell(cell/b.size, cell%b.size, "mask reduced to empty set")
		return INVALID
	}
	b.cells[cell] = newMask
	eliminated := old &^ newMask & b.allValues

	for _, v := range bitutil.Values(eliminated) {
		logger.CandidateElimination(cell/b.size, cell%b.size, v, "keep_cell_mask")
		if !b.enforceCandidateElim(cell, v) {
			return INVALID
		}
	}

	if newMask&b.givenBit == 0 && bitutil.PopCount(newMask&b.allValues) == 1 {
		v := bitutil.FirstValue(newMask & b.allValues)
		b.pendingSingles = append(b.pendingSingles, pendingSingle{cell: cell, value: v})
	}

	return CHANGED
}

// ClearCellMask removes every value in mask from cell's candidates,
// preserving the given bit (clear_cell_mask(cell,m) ≡
// keep_cell_mask(cell, ~m & all_values) with the given bit preserved).
func (b *Board) ClearCellMask(cell int, mask bitutil.Mask) ConstraintResult {
	keepMask := (b.universeMask() &^ mask)
	return b.KeepCellMask(cell, keepMask)
}

// SetAsGiven confirms cell's value, triggers enforce on every observing
// constraint, and propagates weak-link eliminations from the newly-given
// candidate.
func (b *Board) SetAsGiven(cell int, value int) ConstraintResult {
	res := b.setAsGivenRaw(cell, value)
	if res == INVALID {
		return INVALID
	}
	return Combine(res, b.drainPendingSingles())
}

func (b *Board) setAsGivenRaw(cell int, value int) ConstraintResult {
	vb := bitutil.ValueBit(value)
	if b.cells[cell]&vb == 0 {
		b.invalidInit = true
		return INVALID
	}
	old := b.cells[cell]
	newVal := vb | b.givenBit
	if old == newVal {
		return UNCHANGED
	}
	b.cells[cell] = newVal
	logger.CellSolved(cell/b.size, cell%b.size, value, "set_as_given")

	if !b.enforceCellSet(cell, value) {
		b.invalidInit = true
		return INVALID
	}

	ci := NewCandidateIndex(cell, value, b.size)
	linked := b.weakLinks[ci]
	for idx, ok := linked.NextSet(0); ok; idx, ok = linked.NextSet(idx + 1) {
		other := CandidateIndex(idx)
		if other == ci {
			continue
		}
		otherCell := other.Cell(b.size)
		otherValue := other.Value(b.size)
		if otherCell == cell {
			continue
		}
		if b.ClearCellMask(otherCell, bitutil.ValueBit(otherValue)) == INVALID {
			return INVALID
		}
	}

	return CHANGED
}

// drainPendingSingles promotes every queued naked single to a given value,
// repeating until no more singles appear (they can cascade).
func (b *Board) drainPendingSingles() ConstraintResult {
	res := UNCHANGED
	for len(b.pendingSingles) > 0 {
		next := b.pendingSingles[0]
		b.pendingSingles = b.pendingSingles[1:]
		if b.IsGiven(next.cell) {
			continue
		}
		if b.setAsGivenRaw(next.cell, next.value) == INVALID {
			b.pendingSingles = nil
			return INVALID
		}
		res = CHANGED
	}
	return res
}

// AddWeakLink inserts a symmetric exclusion between two candidates. A
// self-loop (a==a) is equivalent to eliminating that candidate outright.
// When one end is the value of an already-given cell, the other end is
// eliminated at once; INVALID is returned if that leaves a cell empty.
func (b *Board) AddWeakLink(a, c CandidateIndex) ConstraintResult {
	if a == c {
		cell, value := int(a)/b.size, int(a)%b.size+1
		return b.ClearCellMask(cell, bitutil.ValueBit(value))
	}
	if b.weakLinks[a].Test(uint(c)) {
		return UNCHANGED
	}
	b.weakLinks[a].Set(uint(c))
	b.weakLinks[c].Set(uint(a))
	for _, p := range [][2]CandidateIndex{{a, c}, {c, a}} {
		from, to := p[0], p[1]
		if b.GetValue(from.Cell(b.size)) != from.Value(b.size) {
			continue
		}
		if b.ClearCellMask(to.Cell(b.size), bitutil.ValueBit(to.Value(b.size))) == INVALID {
			return INVALID
		}
	}
	return CHANGED
}

// IsWeakLink reports whether two candidates are mutually exclusive. Not
// guaranteed complete until FinalizeConstraints has run.
func (b *Board) IsWeakLink(a, c CandidateIndex) bool {
	return b.weakLinks[a].Test(uint(c))
}

// WeakLinksOf returns the set of candidates linked from ci.
func (b *Board) WeakLinksOf(ci CandidateIndex) *bitset.BitSet {
	return b.weakLinks[ci]
}

func (b *Board) enforceCellSet(cell, value int) bool {
	return b.cellNotifiers[cell].NotifyCellSet(cell, value)
}

func (b *Board) enforceCandidateElim(cell, value int) bool {
	return b.cellNotifiers[cell].NotifyCandidateEliminated(cell, value)
}

// AddConstraint appends c to the active list and registers it as an
// observer of every cell it touches, so Board's enforce dispatch only
// visits constraints that actually care about a given cell.
func (b *Board) AddConstraint(c Constraint) {
	logger.InfoConstraint(c.ConstraintName(), "adding constraint %s", c.SpecificName())

	if setter, ok := c.(interface{ SetBoard(*Board) }); ok {
		setter.SetBoard(b)
	}
	b.constraints = append(b.constraints, c)

	for _, cell := range c.ConstraintCells() {
		if cell >= 0 && cell < len(b.cellNotifiers) {
			b.cellNotifiers[cell].AddObserver(c)
		}
	}
}

func (b *Board) removeConstraint(target Constraint) {
	for i, c := range b.constraints {
		if c == target {
			b.constraints = append(b.constraints[:i], b.constraints[i+1:]...)
			break
		}
	}
	for _, cell := range target.ConstraintCells() {
		if cell >= 0 && cell < len(b.cellNotifiers) {
			b.cellNotifiers[cell].RemoveObserver(target)
		}
	}
}

// RunInitFixpoint iterates every active constraint's Init until none
// report CHANGED, splicing in replacements along the way. This is the
// half of finalize_constraints that Or reuses on its subboards — Or
// never calls Finalize on a subboard, only this fixpoint.
func (b *Board) RunInitFixpoint() ConstraintResult {
	for {
		changed := false
		// iterate over a snapshot since Init may append/delete
		current := append([]Constraint(nil), b.constraints...)
		for _, c := range current {
			stillActive := false
			for _, live := range b.constraints {
				if live == c {
					stillActive = true
					break
				}
			}
			if !stillActive {
				continue
			}

			ir := c.Init(b)
			if ir.Result == INVALID {
				b.invalidInit = true
				return INVALID
			}
			if ir.Result == CHANGED {
				changed = true
			}
			for _, add := range ir.AddConstraints {
				b.AddConstraint(add)
				changed = true
			}
			for _, del := range ir.DeleteConstraints {
				b.removeConstraint(del)
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return UNCHANGED
}

// FinalizeConstraints runs the init fixpoint to completion, then a single
// finalize pass. Returns INVALID if any step reported
// the board unsolvable.
func (b *Board) FinalizeConstraints() ConstraintResult {
	logger.Info("Finalizing %d constraint(s)", len(b.constraints))

	if b.RunInitFixpoint() == INVALID {
		return INVALID
	}

	for _, c := range append([]Constraint(nil), b.constraints...) {
		ir := c.Finalize(b)
		if ir.Result == INVALID {
			return INVALID
		}
		if ir.Result == CHANGED {
			panic(fmt.Sprintf("contract violation: %s.Finalize returned CHANGED", c.SpecificName()))
		}
		for _, del := range ir.DeleteConstraints {
			b.removeConstraint(del)
		}
	}

	b.constraintsFinalized = true
	logger.Info("Finalization complete, %d active constraint(s)", len(b.constraints))
	return UNCHANGED
}

// Clone produces an independent Board: cells, weak links, regions and
// constraints are deep-copied (each constraint via its own Clone), and
// every registered state slot is duplicated value-wise. The memo store is
// shared by reference since cached answers depend only on their inputs.
func (b *Board) Clone() *Board {
	nb := &Board{
		size:                 b.size,
		allValues:            b.allValues,
		givenBit:             b.givenBit,
		cells:                append([]bitutil.Mask(nil), b.cells...),
		weakLinks:            make([]*bitset.BitSet, len(b.weakLinks)),
		regionKeys:           make(map[string]bool, len(b.regionKeys)),
		cellNotifiers:        make([]*observer.CellNotifier, len(b.cellNotifiers)),
		state:                b.state.clone(),
		memo:                 b.memo,
		constraintsFinalized: b.constraintsFinalized,
		invalidInit:          b.invalidInit,
	}
	for i, ws := range b.weakLinks {
		nb.weakLinks[i] = ws.Clone()
	}
	for k, v := range b.regionKeys {
		nb.regionKeys[k] = v
	}
	nb.regions = make([]*Region, len(b.regions))
	for i, r := range b.regions {
		cp := *r
		cp.Cells = append([]int(nil), r.Cells...)
		nb.regions[i] = &cp
	}
	for i := range nb.cellNotifiers {
		nb.cellNotifiers[i] = observer.NewCellNotifier()
	}

	nb.constraints = make([]Constraint, len(b.constraints))
	for i, c := range b.constraints {
		clone := c.Clone()
		if setter, ok := clone.(interface{ SetBoard(*Board) }); ok {
			setter.SetBoard(nb)
		}
		nb.constraints[i] = clone
		for _, cell := range clone.ConstraintCells() {
			if cell >= 0 && cell < len(nb.cellNotifiers) {
				nb.cellNotifiers[cell].AddObserver(clone)
			}
		}
	}

	return nb
}

// SubboardClone is like Clone but starts with an empty constraint list, for
// assembling a hypothetical branch (used by Or).
func (b *Board) SubboardClone() *Board {
	nb := b.Clone()
	for i := range nb.cellNotifiers {
		nb.cellNotifiers[i] = observer.NewCellNotifier()
	}
	nb.constraints = nil
	nb.constraintsFinalized = false
	return nb
}
