package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
)

var fixCmd = &cobra.Command{
	Use:   "fix <cubestring>",
	Short: "Auto-correct a miscaptured cube string",
	Long: `Fix validates a cube string and, when it is invalid, attempts the
bounded auto-correction pass: faces are reordered by center color and
individual faces rotated in place until the state validates.

On success the corrected cube string is printed. States broken in ways
no whole-face transformation can cause (wrong sticker counts, swapped
pieces) are reported as uncorrectable.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	state, err := parseCubeArg(args[0])
	if err != nil {
		return err
	}

	rep := cubevision.Validate(state)
	if rep.Valid {
		fmt.Println(okStyle.Render("already valid, nothing to fix"))
		fmt.Printf("Cube string: %s\n", state.String())
		return nil
	}

	fixed, fixedRep := cubevision.Correct(state, rep)

	fmt.Println(renderNet(fixed, -1))
	fmt.Println(renderReport(fixedRep))

	if !fixedRep.Valid {
		return fmt.Errorf("%w; use 'cubevision review' to fix it manually", cubevision.ErrUncorrectable)
	}
	fmt.Printf("\nCorrected cube string: %s\n", fixed.String())
	return nil
}
