package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/holloway-dev/variantsudoku/lib/builder"
	"github.com/holloway-dev/variantsudoku/lib/solve"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Solve a couple of built-in example puzzles",
		RunE:  runDemo,
	})
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println(color.HiBlueString("=== Classic 9x9 ==="))
	if err := demoClassic(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(color.HiBlueString("=== Variant: Killer Cage + German Whispers + Renban ==="))
	return demoVariant()
}

func demoClassic() error {
	grid := make([]builder.CellEntry, 81)
	row0 := []int{5, 3, 4, 6, 7, 8, 9, 1, 0}
	for col, v := range row0 {
		grid[col] = builder.CellEntry{Value: v}
	}
	desc := builder.PuzzleDescription{Size: 9, Grid: grid}

	given := givenMask(desc)
	b, err := builder.Build(desc)
	if err != nil {
		return err
	}
	solution, result := solve.Solve(b, solve.Options{})
	if result != solve.Solved {
		fmt.Println(color.HiYellowString("demo puzzle did not reach a solution"))
		return nil
	}
	renderBoard(solution, given)
	return nil
}

func demoVariant() error {
	grid := make([]builder.CellEntry, 81)
	grid[0] = builder.CellEntry{Value: 5}
	grid[1] = builder.CellEntry{Value: 6}
	grid[9] = builder.CellEntry{Value: 4}

	desc := builder.PuzzleDescription{
		Size: 9,
		Grid: grid,
		KillerCages: []builder.CageClue{
			{Cells: []int{0, 1, 9}, Target: 15},
		},
		Whispers: []builder.WhispersClue{
			{Cells: []int{4, 13, 22}, Gap: 5},
		},
		Renbans: [][]int{
			{36, 37, 38},
		},
	}

	given := givenMask(desc)
	b, err := builder.Build(desc)
	if err != nil {
		return err
	}
	solution, result := solve.Solve(b, solve.Options{MaxNodes: 5000})
	switch result {
	case solve.Solved:
		renderBoard(solution, given)
	case solve.Contradiction:
		fmt.Println(color.HiRedString("variant demo has no solution"))
	case solve.Indeterminate:
		fmt.Println(color.HiYellowString("variant demo search budget exhausted"))
	}
	return nil
}
