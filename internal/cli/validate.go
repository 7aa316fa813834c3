package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
)

var validateCmd = &cobra.Command{
	Use:   "validate <cubestring>",
	Short: "Validate a 54-character cube string",
	Long: `Validate checks a cube string for structural solvability: sticker
counts, corner and edge piece identity, twist and flip parity and
permutation parity.

The string may use either face letters (URFDLB) or sticker color
letters (WRGYOB). Use 'cubevision fix' to attempt auto-correction of
an invalid string.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	state, err := parseCubeArg(args[0])
	if err != nil {
		return err
	}

	report := cubevision.Validate(state)

	fmt.Println(renderNet(state, -1))
	fmt.Println(renderReport(report))

	if !report.Valid {
		return errors.New("cube state is invalid")
	}
	return nil
}
