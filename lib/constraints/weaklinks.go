// Package constraints holds every concrete Constraint variant: rules that
// reduce directly to weak links or regions, sum-based rules built on
// sumgroup/sumcells, the generic Cardinality count-constraint, and the Or
// disjunctive-subboard mechanism. Each variant embeds lib.BaseConstraint
// and overrides only the lifecycle hooks its rule actually needs, one file
// per rule family.
package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// Pair is one forbidden (candidate-a, candidate-b) combination, expressed
// as (cell, value) on each side.
type Pair struct {
	CellA, ValueA int
	CellB, ValueB int
}

// WeakLinksConstraint installs a fixed list of weak links and then
// self-deletes — the leaf that every ordering/inequality/clone rule
// reduces to.
type WeakLinksConstraint struct {
	lib.BaseConstraint
	Pairs []Pair
}

// NewWeakLinksConstraint builds a constraint that, on init, installs every
// pair in pairs as a weak link (a self-paired candidate is an outright
// elimination) and then removes itself from the active list.
func NewWeakLinksConstraint(name string, pairs []Pair) *WeakLinksConstraint {
	return &WeakLinksConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "WeakLinks", Specific: name},
		Pairs:          pairs,
	}
}

func (w *WeakLinksConstraint) Clone() lib.Constraint {
	cp := *w
	cp.Pairs = append([]Pair(nil), w.Pairs...)
	return &cp
}

func (w *WeakLinksConstraint) Init(b *lib.Board) lib.InitResult {
	result := lib.UNCHANGED
	for _, p := range w.Pairs {
		a := lib.NewCandidateIndex(p.CellA, p.ValueA, b.Size())
		c := lib.NewCandidateIndex(p.CellB, p.ValueB, b.Size())
		res := b.AddWeakLink(a, c)
		if res == lib.INVALID {
			return lib.InvalidResult()
		}
		if res == lib.CHANGED {
			result = lib.CHANGED
		}
	}
	if result == lib.CHANGED {
		return lib.SelfDelete(w)
	}
	return lib.InitResult{Result: lib.UNCHANGED, DeleteConstraints: []lib.Constraint{w}}
}

// GenerateLEWeakLinks returns every pair of candidates (a-cell digit d1,
// b-cell digit d2) such that d1 > d2+k would violate "a <= b+k" — used by
// the thermometer, between-line and lockout ordering clues. Every combination with d1 > d2+k
// is forbidden.
func GenerateLEWeakLinks(n, a, b, k int) []Pair {
	var pairs []Pair
	for d1 := 1; d1 <= n; d1++ {
		for d2 := 1; d2 <= n; d2++ {
			if d1 > d2+k {
				pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: b, ValueB: d2})
			}
		}
	}
	return pairs
}

// GenerateNEQWeakLinks forbids a and b from holding the same value —
// ordinary distinctness between two specific cells (anti-knight/anti-king,
// disjoint groups, and region pairs all reduce to this at the value
// level).
func GenerateNEQWeakLinks(n, a, b int) []Pair {
	pairs := make([]Pair, 0, n)
	for d := 1; d <= n; d++ {
		pairs = append(pairs, Pair{CellA: a, ValueA: d, CellB: b, ValueB: d})
	}
	return pairs
}

// GenerateEQWeakLinks forbids every pair of differing values between a and
// b, so the only way both survive is if they hold the same value — used by
// Clone constraints.
func GenerateEQWeakLinks(n, a, b int) []Pair {
	var pairs []Pair
	for d1 := 1; d1 <= n; d1++ {
		for d2 := 1; d2 <= n; d2++ {
			if d1 != d2 {
				pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: b, ValueB: d2})
			}
		}
	}
	return pairs
}

// GenerateMinDiffWeakLinks forbids |d1-d2| < minDiff — the shared
// generator behind German-whispers-style gap rules and Nabner's
// simultaneous distinctness-and-non-consecutiveness rule (minDiff=2
// forbids both d1==d2 and |d1-d2|==1 in one pass).
func GenerateMinDiffWeakLinks(n, a, b, minDiff int) []Pair {
	var pairs []Pair
	for d1 := 1; d1 <= n; d1++ {
		for d2 := 1; d2 <= n; d2++ {
			diff := d1 - d2
			if diff < 0 {
				diff = -diff
			}
			if diff < minDiff {
				pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: b, ValueB: d2})
			}
		}
	}
	return pairs
}

// GenerateMaxDiffWeakLinks forbids |d1-d2| > maxDiff — used by Renban to
// bound a line's span to len-1 once paired with plain distinctness.
func GenerateMaxDiffWeakLinks(n, a, b, maxDiff int) []Pair {
	var pairs []Pair
	for d1 := 1; d1 <= n; d1++ {
		for d2 := 1; d2 <= n; d2++ {
			diff := d1 - d2
			if diff < 0 {
				diff = -diff
			}
			if diff > maxDiff {
				pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: b, ValueB: d2})
			}
		}
	}
	return pairs
}

// GenerateModWeakLinks forbids d1 and d2 from sharing a residue mod m
// (0-indexed: (d-1)%m) — the pairwise form of a modular line's
// every-residue-once-per-window rule.
func GenerateModWeakLinks(n, a, b, m int) []Pair {
	var pairs []Pair
	for d1 := 1; d1 <= n; d1++ {
		for d2 := 1; d2 <= n; d2++ {
			if (d1-1)%m == (d2-1)%m {
				pairs = append(pairs, Pair{CellA: a, ValueA: d1, CellB: b, ValueB: d2})
			}
		}
	}
	return pairs
}

func (w *WeakLinksConstraint) String() string {
	return fmt.Sprintf("WeakLinks(%s, %d pairs)", w.Specific, len(w.Pairs))
}
