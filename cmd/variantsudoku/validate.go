package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/holloway-dev/variantsudoku/lib/builder"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate <puzzle.json>",
		Short: "Check that a puzzle description builds to a consistent board",
		Long: `Validate decodes a JSON puzzle description and runs it through the
builder and constraint finalization, reporting whether the result is
consistent without searching for a full solution.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	desc, err := loadPuzzle(args[0])
	if err != nil {
		return err
	}

	b, err := builder.Build(desc)
	if err != nil {
		fmt.Println(color.HiRedString("Invalid: %v", err))
		return nil
	}

	fmt.Println(color.HiGreenString("Valid: %d active constraint(s) after finalization.", len(b.Constraints())))
	return nil
}
