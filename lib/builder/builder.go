package builder

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/constraints"
	"github.com/holloway-dev/variantsudoku/lib/utils"
)

// orthogonalOffsets are the right and down moves; stepping only forward
// visits each orthogonally adjacent pair once. Used by nonconsecutive and
// the negative-constraint sweep.
var orthogonalOffsets = [][2]int{{0, 1}, {1, 0}}

// Build decodes desc into a finalized board. It validates the grid shape,
// sets givens, registers the standard and jigsaw regions, attaches every
// flagged and array-based constraint, and runs FinalizeConstraints before
// returning. Malformed descriptions are reported as wrapped errors
// rather than panics.
func Build(desc PuzzleDescription) (*lib.Board, error) {
	n := desc.Size
	if n <= 0 {
		return nil, errors.Errorf("builder: size must be positive, got %d", n)
	}
	if len(desc.Grid) != n*n {
		return nil, errors.Errorf("builder: grid has %d cells, want %d for size %d", len(desc.Grid), n*n, n)
	}

	b := lib.NewBoard(n)

	if err := addGivens(b, desc); err != nil {
		return nil, err
	}
	addRegions(b, desc)
	addFlagConstraints(b, desc)
	addArrayConstraints(b, desc)
	if err := addNegativeConstraints(b, desc); err != nil {
		return nil, err
	}

	if b.FinalizeConstraints() == lib.INVALID {
		return nil, errors.New("builder: puzzle is contradictory at finalize")
	}
	return b, nil
}

func addGivens(b *lib.Board, desc PuzzleDescription) error {
	n := desc.Size
	for cell, entry := range desc.Grid {
		if entry.Value == 0 {
			continue
		}
		if entry.Value < 1 || entry.Value > n {
			return errors.Errorf("builder: cell %d has out-of-range value %d", cell, entry.Value)
		}
		if b.SetAsGiven(cell, entry.Value) == lib.INVALID {
			return errors.Errorf("builder: given at cell %d conflicts with another given", cell)
		}
	}
	return nil
}

func addRegions(b *lib.Board, desc PuzzleDescription) {
	n := desc.Size
	for r := 0; r < n; r++ {
		b.AddConstraint(constraints.NewRowConstraint(n, r))
		b.AddConstraint(constraints.NewColumnConstraint(n, r))
	}

	if desc.Jigsaw {
		groups := make(map[int][]int)
		for cell, entry := range desc.Grid {
			groups[entry.Region] = append(groups[entry.Region], cell)
		}
		for region, cells := range groups {
			b.AddConstraint(constraints.NewExtraRegionConstraint(jigsawBoxName(region), cells))
		}
		return
	}

	boxRows, boxCols := utils.BoxDims(n)
	boxes := make(map[int][]int)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			box := utils.BoxNumber(row, col, n, boxRows, boxCols)
			boxes[box] = append(boxes[box], row*n+col)
		}
	}
	for box, cells := range boxes {
		b.AddConstraint(constraints.NewBoxConstraint(boxName(box), cells))
	}
	if desc.DisjointGroups {
		b.AddConstraint(constraints.NewDisjointGroupsConstraint(n, boxRows, boxCols))
	}
}

func addFlagConstraints(b *lib.Board, desc PuzzleDescription) {
	n := desc.Size
	if desc.DiagonalPositive {
		b.AddConstraint(constraints.NewDiagonalConstraint(n, true))
	}
	if desc.DiagonalNegative {
		b.AddConstraint(constraints.NewDiagonalConstraint(n, false))
	}
	if desc.Antiknight {
		b.AddConstraint(constraints.NewAntiKnightConstraint(n))
	}
	if desc.Antiking {
		b.AddConstraint(constraints.NewAntiKingConstraint(n))
	}
	if desc.NonConsecutive {
		b.AddConstraint(nonConsecutiveConstraint(n))
	}
}

// nonConsecutiveConstraint forbids orthogonally adjacent cells from
// holding consecutive values — a whole-board Whispers with gap 2,
// expressed directly as weak links over every rook-adjacent pair.
func nonConsecutiveConstraint(n int) lib.Constraint {
	var pairs []constraints.Pair
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := row*n + col
			for _, off := range orthogonalOffsets {
				nr, nc := row+off[0], col+off[1]
				if nr >= n || nc >= n {
					continue
				}
				pairs = append(pairs, constraints.GenerateMinDiffWeakLinks(n, cell, nr*n+nc, 2)...)
			}
		}
	}
	return constraints.NewWeakLinksConstraint("Nonconsecutive", pairs)
}

func addArrayConstraints(b *lib.Board, desc PuzzleDescription) {
	n := desc.Size

	for _, a := range desc.Arrows {
		b.AddConstraint(constraints.NewArrowConstraint(n, a.Circle, a.Shaft))
	}
	for _, a := range desc.DoubleArrows {
		b.AddConstraint(constraints.NewDoubleArrowConstraint(n, a.Circles, a.Shaft))
	}
	for _, z := range desc.ZipperLines {
		b.AddConstraint(constraints.NewZipperLineConstraint(n, z))
	}
	for _, rsl := range desc.RegionSumLines {
		b.AddConstraint(constraints.NewRegionSumLineConstraint(n, rsl))
	}
	for _, k := range desc.KillerCages {
		b.AddConstraint(constraints.NewKillerCageConstraint(n, k.Cells, k.Target))
	}
	for _, lk := range desc.LittleKillers {
		b.AddConstraint(constraints.NewLittleKillerConstraint(n, lk.Cells, lk.Target))
	}
	for _, cell := range desc.Odd {
		b.AddConstraint(constraints.NewSingleCellConstraint(n, cell, "odd"))
	}
	for _, cell := range desc.Even {
		b.AddConstraint(constraints.NewSingleCellConstraint(n, cell, "even"))
	}
	for _, cell := range desc.Minimum {
		b.AddConstraint(constraints.NewSingleCellConstraint(n, cell, "minimum"))
	}
	for _, cell := range desc.Maximum {
		b.AddConstraint(constraints.NewSingleCellConstraint(n, cell, "maximum"))
	}
	for i, cells := range desc.ExtraRegions {
		b.AddConstraint(constraints.NewExtraRegionConstraint(extraRegionName(i), cells))
	}
	for _, t := range desc.Thermometers {
		b.AddConstraint(constraints.NewThermometerConstraint(n, t))
	}
	for _, p := range desc.Palindromes {
		b.AddConstraint(constraints.NewPalindromeConstraint(n, p))
	}
	for _, r := range desc.Renbans {
		b.AddConstraint(constraints.NewRenbanConstraint(n, r))
	}
	for _, w := range desc.Whispers {
		b.AddConstraint(constraints.NewWhispersConstraint(n, w.Gap, w.Cells))
	}
	for _, p := range desc.PairClues {
		b.AddConstraint(constraints.NewPairClueConstraint(n, p.CellA, p.CellB, p.Kind, p.K))
	}
	for _, c := range desc.Clones {
		b.AddConstraint(constraints.NewCloneConstraint(n, c.CellsA, c.CellsB))
	}
	for _, q := range desc.Quadruples {
		b.AddConstraint(constraints.NewQuadrupleConstraint(n, q.Cells, q.Digits))
	}
	for _, bl := range desc.BetweenLines {
		b.AddConstraint(constraints.NewBetweenLineConstraint(n, bl.EndpointA, bl.EndpointB, bl.Middle))
	}
	for _, lo := range desc.Lockouts {
		b.AddConstraint(constraints.NewLockoutConstraint(n, lo.Gap, lo.EndpointA, lo.EndpointB, lo.Middle))
	}
	for _, s := range desc.SandwichSums {
		b.AddConstraint(constraints.NewSandwichSumConstraint(n, s.Cells, s.Target))
	}
	for _, x := range desc.XSums {
		b.AddConstraint(constraints.NewXSumConstraint(n, x.Cells, x.Target))
	}
	for _, s := range desc.Skyscrapers {
		b.AddConstraint(constraints.NewSkyscraperConstraint(n, s.Cells, s.Target))
	}
	for _, e := range desc.EntropicLines {
		b.AddConstraint(constraints.NewEntropicConstraint(n, e))
	}
	for _, m := range desc.ModularLines {
		b.AddConstraint(constraints.NewModularConstraint(n, m.Modulus, m.Cells))
	}
	for _, nb := range desc.Nabners {
		b.AddConstraint(constraints.NewNabnerConstraint(n, nb))
	}
}

// addNegativeConstraints applies every negative-constraint rule to each
// orthogonally adjacent edge that carries no explicit PairRef of that
// kind already.
func addNegativeConstraints(b *lib.Board, desc PuzzleDescription) error {
	if len(desc.Negative) == 0 {
		return nil
	}
	n := desc.Size
	marked := make(map[[3]int]bool) // [cellA, cellB, kindIndex]
	kindIndex := map[string]int{"difference": 0, "ratio": 1, "sum": 2, "xv": 3}
	for _, p := range desc.PairClues {
		idx, ok := kindIndex[p.Kind]
		if !ok {
			continue
		}
		a, c := p.CellA, p.CellB
		if a > c {
			a, c = c, a
		}
		marked[[3]int{a, c, idx}] = true
	}

	for _, rule := range desc.Negative {
		idx, ok := kindIndex[rule.Kind]
		if !ok {
			return errors.Errorf("builder: unrecognized negative-constraint kind %q", rule.Kind)
		}
		k := rule.K
		if k == 0 {
			switch rule.Kind {
			case "difference":
				k = 1
			case "ratio":
				k = 2
			}
		}
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				cell := row*n + col
				for _, off := range orthogonalOffsets {
					nr, nc := row+off[0], col+off[1]
					if nr >= n || nc >= n {
						continue
					}
					other := nr*n + nc
					a, c := cell, other
					if a > c {
						a, c = c, a
					}
					if marked[[3]int{a, c, idx}] {
						continue
					}
					b.AddConstraint(constraints.NewNegativePairClueConstraint(n, cell, other, rule.Kind, k))
				}
			}
		}
	}
	return nil
}

func boxName(i int) string         { return fmt.Sprintf("Box %d", i+1) }
func jigsawBoxName(i int) string   { return fmt.Sprintf("Region %d", i+1) }
func extraRegionName(i int) string { return fmt.Sprintf("Extra Region %d", i+1) }
