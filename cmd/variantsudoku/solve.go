package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/holloway-dev/variantsudoku/lib/builder"
	"github.com/holloway-dev/variantsudoku/lib/solve"
)

var solveMaxNodes int

func init() {
	cmd := &cobra.Command{
		Use:   "solve <puzzle.json>",
		Short: "Solve a puzzle description and print the result",
		Long: `Solve reads a JSON puzzle description (use - for stdin), builds the
constraint set, and searches for a solution.

Example:
  variantsudoku solve classic9x9.json`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	cmd.Flags().IntVar(&solveMaxNodes, "max-nodes", 0, "cap on backtracking branch nodes (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	desc, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	givenByCell := givenMask(desc)

	b, err := builder.Build(desc)
	if err != nil {
		return err
	}

	solution, result := solve.Solve(b, solve.Options{MaxNodes: solveMaxNodes})
	switch result {
	case solve.Solved:
		fmt.Println(color.HiGreenString("Solved:"))
		renderBoard(solution, givenByCell)
	case solve.Contradiction:
		fmt.Println(color.HiRedString("No solution exists for this puzzle."))
	case solve.Indeterminate:
		fmt.Println(color.HiYellowString("Search budget exhausted before reaching a solution."))
	}
	return nil
}

func givenMask(desc builder.PuzzleDescription) []bool {
	given := make([]bool, len(desc.Grid))
	for i, entry := range desc.Grid {
		given[i] = entry.Value != 0
	}
	return given
}
