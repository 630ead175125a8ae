package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/holloway-dev/variantsudoku/lib"
	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

// renderBoard prints b with givens in blue, cells the solver deduced (not
// given but solved) in green, and cells still holding multiple candidates
// in gray — mirroring the retrieved kpitt-sudoku dancing-links demo's
// coloring convention. given marks which cells were part of the original
// puzzle, since Board itself no longer distinguishes them once solved.
func renderBoard(b *lib.Board, given []bool) {
	n := b.Size()
	width := len(fmt.Sprintf("%d", n))

	for row := 0; row < n; row++ {
		var line strings.Builder
		for col := 0; col < n; col++ {
			cell := row*n + col
			mask := b.CandidateMask(cell)
			var text string
			if bitutil.PopCount(mask) == 1 {
				digit := fmt.Sprintf("%*d", width, bitutil.FirstValue(mask))
				if given[cell] {
					text = color.HiBlueString(digit)
				} else {
					text = color.HiGreenString(digit)
				}
			} else {
				text = color.HiBlackString(strings.Repeat("·", width))
			}
			line.WriteString(text)
			line.WriteString(" ")
		}
		fmt.Println(line.String())
	}
	fmt.Printf("Legend: %s = given, %s = solved, %s = undetermined\n",
		color.HiBlueString("blue"), color.HiGreenString("green"), color.HiBlackString("gray"))
}
