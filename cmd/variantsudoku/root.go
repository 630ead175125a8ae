// Command variantsudoku is the thin outer front-end for the solver core:
// it decodes a puzzle description, drives lib/solve, and prints results.
// It owns no solving logic itself; the outer solving loop is intentionally
// kept separate from the constraint core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "variantsudoku",
	Short: "Solve, validate, and demo variant Sudoku puzzles",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
