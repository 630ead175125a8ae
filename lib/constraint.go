package lib

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib/bitutil"
	"github.com/holloway-dev/variantsudoku/lib/observer"
)

// InitResult is the return shape of Init and Finalize:
// a plain ConstraintResult, optionally paired with constraints to splice
// into the active list. A bare result (no adds/deletes) is simply an
// InitResult with both slices nil.
type InitResult struct {
	Result            ConstraintResult
	AddConstraints    []Constraint
	DeleteConstraints []Constraint
}

// Unchanged is the default, no-op InitResult.
func Unchanged() InitResult { return InitResult{Result: UNCHANGED} }

// Changed reports that a constraint mutated the board during init.
func Changed() InitResult { return InitResult{Result: CHANGED} }

// InvalidResult reports that a constraint found the board unsolvable.
func InvalidResult() InitResult { return InitResult{Result: INVALID} }

// SelfDelete is the common "I reduced myself to other constraints" shape:
// always CHANGED, plus a request to delete the caller and add its
// replacements.
func SelfDelete(self Constraint, replacements ...Constraint) InitResult {
	return InitResult{
		Result:            CHANGED,
		AddConstraints:    replacements,
		DeleteConstraints: []Constraint{self},
	}
}

// DeductionKind discriminates the payload of a Deduction.
type DeductionKind int

const (
	// DeductionEliminations clears the listed candidates.
	DeductionEliminations DeductionKind = iota
	// DeductionSingles forces the listed candidates to be set.
	DeductionSingles
	// DeductionAddDelete splices constraints into the active list.
	DeductionAddDelete
	// DeductionInvalid reports the board is unsolvable from here.
	DeductionInvalid
)

// Deduction is one logical-step result. The drivers in this module
// (lib/solve and Or's internal fixpoint) apply every deduction of a step in
// order and stop early only at the first INVALID; a CHANGED deduction does
// not end the step.
type Deduction struct {
	Kind              DeductionKind
	Eliminations      []CandidateIndex
	Singles           []CandidateIndex
	AddConstraints    []Constraint
	DeleteConstraints []Constraint
	Explanation       string
}

// Eliminate builds a DeductionEliminations deduction.
func Eliminate(explanation string, cis ...CandidateIndex) Deduction {
	return Deduction{Kind: DeductionEliminations, Eliminations: cis, Explanation: explanation}
}

// ForceSingles builds a DeductionSingles deduction.
func ForceSingles(explanation string, cis ...CandidateIndex) Deduction {
	return Deduction{Kind: DeductionSingles, Singles: cis, Explanation: explanation}
}

// InvalidDeduction builds a DeductionInvalid deduction.
func InvalidDeduction(explanation string) Deduction {
	return Deduction{Kind: DeductionInvalid, Explanation: explanation}
}

// ApplyDeduction mutates b according to d and reports the resulting
// ConstraintResult. Shared by the outer solving loop and by Or's internal
// fixpoint drive over its subboards (run to fixpoint
// internally, without emitting human-facing steps").
func ApplyDeduction(b *Board, d Deduction) ConstraintResult {
	switch d.Kind {
	case DeductionInvalid:
		return INVALID
	case DeductionEliminations:
		result := UNCHANGED
		for _, ci := range d.Eliminations {
			n := b.Size()
			if b.ClearCellMask(ci.Cell(n), bitutil.ValueBit(ci.Value(n))) == INVALID {
				return INVALID
			}
			result = CHANGED
		}
		return result
	case DeductionSingles:
		result := UNCHANGED
		for _, ci := range d.Singles {
			n := b.Size()
			if b.SetAsGiven(ci.Cell(n), ci.Value(n)) == INVALID {
				return INVALID
			}
			result = CHANGED
		}
		return result
	case DeductionAddDelete:
		for _, c := range d.DeleteConstraints {
			b.removeConstraint(c)
		}
		for _, c := range d.AddConstraints {
			b.AddConstraint(c)
		}
		return CHANGED
	}
	return UNCHANGED
}

// Constraint is the protocol every rule variant implements.
// Concrete types embed BaseConstraint for the no-op defaults and override
// only the lifecycle hooks their rule actually needs.
type Constraint interface {
	observer.CellObserver // OnCellSet = enforce, OnCandidateEliminated = enforce_candidate_elim

	ConstraintName() string
	SpecificName() string
	ConstraintCells() []int

	Init(b *Board) InitResult
	Finalize(b *Board) InitResult
	LogicalStep(b *Board) []Deduction
	BruteForceStep(b *Board) ConstraintResult
	Clone() Constraint
}

// BaseConstraint provides the protocol's no-op defaults: enforce hooks that
// always succeed, empty logical steps, UNCHANGED init/finalize/brute-force.
// Concrete constraints embed this and override only what they need.
type BaseConstraint struct {
	Name     string
	Specific string
	Cells    []int
	Board    *Board
}

func (bc *BaseConstraint) ConstraintName() string { return bc.Name }

func (bc *BaseConstraint) SpecificName() string {
	if bc.Specific != "" {
		return bc.Specific
	}
	return bc.Name
}

func (bc *BaseConstraint) ConstraintCells() []int { return bc.Cells }

// SetBoard is invoked by Board.AddConstraint via a type assertion, giving a
// constraint a back-reference without threading it through every
// constructor.
func (bc *BaseConstraint) SetBoard(b *Board) { bc.Board = b }

func (bc *BaseConstraint) Init(b *Board) InitResult     { return Unchanged() }
func (bc *BaseConstraint) Finalize(b *Board) InitResult { return Unchanged() }

func (bc *BaseConstraint) OnCellSet(cell, value int) bool             { return true }
func (bc *BaseConstraint) OnCandidateEliminated(cell, value int) bool { return true }

func (bc *BaseConstraint) LogicalStep(b *Board) []Deduction            { return nil }
func (bc *BaseConstraint) BruteForceStep(b *Board) ConstraintResult    { return UNCHANGED }

func (bc *BaseConstraint) String() string {
	return fmt.Sprintf("%s(%v)", bc.SpecificName(), bc.Cells)
}
