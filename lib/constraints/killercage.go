package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// KillerCageConstraint is a Region (distinctness) over its cells plus a
// FixedSum over the same cells — the canonical two-constraint
// decomposition.
type KillerCageConstraint struct {
	lib.BaseConstraint
	N      int
	Target int
}

// NewKillerCageConstraint builds a killer cage over cells summing to
// target. A target of 0 means "no sum clue" (cage is distinctness-only).
func NewKillerCageConstraint(n int, cells []int, target int) *KillerCageConstraint {
	return &KillerCageConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "KillerCage", Specific: fmt.Sprintf("Killer Cage (%d)", target), Cells: cells},
		N:              n, Target: target,
	}
}

func (k *KillerCageConstraint) Clone() lib.Constraint {
	cp := *k
	cp.Cells = append([]int(nil), k.Cells...)
	return &cp
}

func (k *KillerCageConstraint) Init(b *lib.Board) lib.InitResult {
	replacements := []lib.Constraint{newRegion(k.Specific, k.Cells, "killer")}
	if k.Target > 0 {
		replacements = append(replacements, NewFixedSumConstraint(k.Specific, k.N, k.Cells, k.Target))
	}
	return lib.SelfDelete(k, replacements...)
}

// LittleKillerConstraint is a diagonal-direction sum clue anchored outside
// the grid; it reduces to FixedSum over the diagonal ray's cells.
type LittleKillerConstraint struct {
	lib.BaseConstraint
	N      int
	Target int
}

// NewLittleKillerConstraint builds a little-killer clue over the cells
// lying along its diagonal ray (already resolved by the caller from the
// clue's edge position and direction).
func NewLittleKillerConstraint(n int, cells []int, target int) *LittleKillerConstraint {
	return &LittleKillerConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "LittleKiller", Specific: fmt.Sprintf("Little Killer (%d)", target), Cells: cells},
		N:              n, Target: target,
	}
}

func (l *LittleKillerConstraint) Clone() lib.Constraint {
	cp := *l
	cp.Cells = append([]int(nil), l.Cells...)
	return &cp
}

func (l *LittleKillerConstraint) Init(b *lib.Board) lib.InitResult {
	return lib.SelfDelete(l, NewFixedSumConstraint(l.Specific, l.N, l.Cells, l.Target))
}
