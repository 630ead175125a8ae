// Package observer implements the per-cell notification mechanism the
// Board uses to dispatch enforce/enforce_candidate_elim hooks. Each cell
// keeps its own CellNotifier listing only the constraints that touch it
// (populated once, at AddConstraint time), so a mutation on one cell never
// has to scan every constraint on the board — the same observer pattern
// the original single-grid solver used to cascade PropagateValueChange,
// generalized here to return a success flag instead of void so a
// constraint going INVALID during the cascade aborts the rest of it.
package observer

// CellObserver is implemented by anything that wants to react to mutations
// on a cell it has registered interest in. A false return means the
// observer's constraint is now violated; the Board treats that as INVALID
// and stops dispatching further observers for that event.
type CellObserver interface {
	// OnCellSet is called when a cell is given a final value (set_as_given).
	OnCellSet(cell, value int) bool

	// OnCandidateEliminated is called when a candidate is cleared from a
	// cell's mask without the cell being solved.
	OnCandidateEliminated(cell, value int) bool
}

// CellNotifier manages the observers registered against a single cell.
type CellNotifier struct {
	observers []CellObserver
}

// NewCellNotifier creates an empty notifier.
func NewCellNotifier() *CellNotifier {
	return &CellNotifier{observers: make([]CellObserver, 0)}
}

// AddObserver registers obs against this cell. Idempotent registration is
// the caller's responsibility — Board.AddConstraint only calls this once
// per (constraint, cell) pair.
func (cn *CellNotifier) AddObserver(obs CellObserver) {
	if obs == nil {
		return
	}
	cn.observers = append(cn.observers, obs)
}

// RemoveObserver removes obs from this cell's notifier, if present.
func (cn *CellNotifier) RemoveObserver(obs CellObserver) {
	if obs == nil {
		return
	}
	for i, o := range cn.observers {
		if o == obs {
			cn.observers = append(cn.observers[:i], cn.observers[i+1:]...)
			return
		}
	}
}

// NotifyCellSet dispatches OnCellSet to every registered observer in
// registration order, stopping at the first observer that reports
// INVALID.
func (cn *CellNotifier) NotifyCellSet(cell, value int) bool {
	for _, o := range cn.observers {
		if !o.OnCellSet(cell, value) {
			return false
		}
	}
	return true
}

// NotifyCandidateEliminated dispatches OnCandidateEliminated to every
// registered observer, stopping at the first that reports INVALID.
func (cn *CellNotifier) NotifyCandidateEliminated(cell, value int) bool {
	for _, o := range cn.observers {
		if !o.OnCandidateEliminated(cell, value) {
			return false
		}
	}
	return true
}

// HasObservers reports whether any observer is registered.
func (cn *CellNotifier) HasObservers() bool {
	return len(cn.observers) > 0
}

// Len returns the number of registered observers.
func (cn *CellNotifier) Len() int {
	return len(cn.observers)
}
