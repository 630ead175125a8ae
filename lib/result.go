package lib

// ConstraintResult is the outcome of a Board primitive or a constraint
// lifecycle hook: nothing happened, something changed, or the board is now
// provably unsolvable.
type ConstraintResult int

const (
	// UNCHANGED means the operation had no effect.
	UNCHANGED ConstraintResult = iota
	// CHANGED means at least one cell mask, weak link, or region changed.
	CHANGED
	// INVALID means the board has no solution from its current state.
	INVALID
)

// String renders a ConstraintResult for logging.
func (r ConstraintResult) String() string {
	switch r {
	case UNCHANGED:
		return "UNCHANGED"
	case CHANGED:
		return "CHANGED"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Combine merges two results: INVALID dominates, then CHANGED, then
// UNCHANGED. Used when a single call site folds several sub-results
// together (e.g. a region adding several pairwise weak links).
func Combine(a, b ConstraintResult) ConstraintResult {
	if a == INVALID || b == INVALID {
		return INVALID
	}
	if a == CHANGED || b == CHANGED {
		return CHANGED
	}
	return UNCHANGED
}

// FromBool converts a "changed?" boolean into UNCHANGED/CHANGED, the shape
// most primitive mutators (AddWeakLink, AddRegion) return in.
func FromBool(changed bool) ConstraintResult {
	if changed {
		return CHANGED
	}
	return UNCHANGED
}
