package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show [cubestring]",
	Short: "Display a cube state as a colored net",
	Long: `Show renders a cube string as an unfolded colored net. With no
argument it shows the most recently recorded scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	var state cubevision.CubeState

	if len(args) == 1 {
		var err error
		state, err = parseCubeArg(args[0])
		if err != nil {
			return err
		}
	} else {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		scans, err := storage.NewScanRepository(db).List(1)
		if err != nil {
			return err
		}
		if len(scans) == 0 {
			return errors.New("no scans recorded yet; run 'cubevision scan' first")
		}
		state, err = parseCubeArg(scans[0].CubeString)
		if err != nil {
			return err
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("Scan %s from %s", scans[0].ScanID, scans[0].CapturedAt.Local().Format("2006-01-02 15:04"))))
	}

	fmt.Println(renderNet(state, -1))
	fmt.Printf("Cube string: %s\n", state.String())
	return nil
}
