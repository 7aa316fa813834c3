package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scans",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of scans to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scans, err := storage.NewScanRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(scans) == 0 {
		fmt.Println("No scans recorded yet.")
		return nil
	}

	for _, s := range scans {
		status := okStyle.Render("valid")
		if !s.IsValid {
			status = errStyle.Render("invalid")
		}
		fmt.Printf("%s  %s  %s  %s\n", s.ScanID, s.CapturedAt.Local().Format("2006-01-02 15:04"), status, s.CubeString)
		if s.ErrorSummary != nil {
			fmt.Println(dimStyle.Render("    " + *s.ErrorSummary))
		}
		if s.Solution != nil {
			fmt.Println(dimStyle.Render(fmt.Sprintf("    solution (%d moves): %s", *s.SolutionLength, *s.Solution)))
		}
	}
	return nil
}
