package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
	"github.com/SeamusWaldron/cubevision/internal/imaging"
	"github.com/SeamusWaldron/cubevision/internal/solver"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var (
	scanSolve      bool
	scanSolverPath string
	scanNoStore    bool
	scanNoCorrect  bool
	scanRangeOnly  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <up> <right> <front> <down> <left> <back>",
	Short: "Scan six face images into a validated cube state",
	Long: `Scan reads six face photographs in U R F D L B order, classifies every
sticker, assembles the cube state, validates it and attempts bounded
auto-correction when validation fails.

Each image is normalized (resized to 600x600, white balanced and
brightened) before sampling, so phone photos work as-is.`,
	Args: cobra.ExactArgs(6),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanSolve, "solve", false, "Run the external solver on the validated state")
	scanCmd.Flags().StringVar(&scanSolverPath, "solver", "kociemba", "Path to the external solver binary")
	scanCmd.Flags().BoolVar(&scanNoStore, "no-store", false, "Do not record the scan in the history database")
	scanCmd.Flags().BoolVar(&scanNoCorrect, "no-correct", false, "Report validation errors without attempting correction")
	scanCmd.Flags().BoolVar(&scanRangeOnly, "range-only", false, "Disable the nearest-centroid fallback classifier")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	var opts []cubevision.ClassifierOption
	if scanRangeOnly {
		opts = append(opts, cubevision.WithStrategy(cubevision.RangeOnly))
	}
	cl := cubevision.NewClassifier(opts...)

	var faces [6]cubevision.CapturedFace
	for i, path := range args {
		face, err := captureFace(path, cl)
		if err != nil {
			return fmt.Errorf("face %s (%s): %w", cubevision.AllFaces[i], path, err)
		}
		faces[i] = face
	}

	state, err := cubevision.Assemble(faces)
	if err != nil {
		return err
	}

	report := cubevision.Validate(state)
	if !report.Valid && !scanNoCorrect {
		state, report = cubevision.Correct(state, report)
	}

	fmt.Println(renderNet(state, -1))
	fmt.Println(renderReport(report))
	fmt.Printf("\nCube string: %s\n", state.String())

	var scanID string
	if !scanNoStore {
		scanID, err = storeScan(state, report)
		if err != nil {
			return err
		}
		fmt.Println(dimStyle.Render("Scan recorded: " + scanID))
	}

	if !report.Valid {
		return errors.New("cube state is invalid; fix the capture with 'cubevision review' and retry")
	}

	if scanSolve {
		return solveScan(state, scanID)
	}
	return nil
}

// captureFace loads, normalizes, samples and classifies one face image.
func captureFace(path string, cl *cubevision.Classifier) (cubevision.CapturedFace, error) {
	f, err := os.Open(path)
	if err != nil {
		return cubevision.CapturedFace{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return cubevision.CapturedFace{}, fmt.Errorf("decode image: %w", err)
	}

	samples, err := cubevision.SampleFace(imaging.Normalize(img))
	if err != nil {
		return cubevision.CapturedFace{}, err
	}

	face, ambiguous := cubevision.ClassifyFace(filepath.Base(path), samples, cl)
	if verbose {
		for i, c := range face.Colors {
			fmt.Printf("%s sticker %d: %s (%.2f)\n", face.Label, i, c.Name(), face.Confidence[i])
		}
	}
	if len(ambiguous) > 0 {
		positions := make([]int, 0, len(ambiguous))
		for pos := range ambiguous {
			positions = append(positions, pos)
		}
		sort.Ints(positions)
		for _, pos := range positions {
			fmt.Println(warnStyle.Render(fmt.Sprintf("warning: %s sticker %d: %v", filepath.Base(path), pos, ambiguous[pos])))
		}
	}
	return face, nil
}

func storeScan(state cubevision.CubeState, report cubevision.ValidationReport) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	var corrections, errorSummary string
	if len(report.Corrections) > 0 {
		buf, err := json.Marshal(report.Corrections)
		if err != nil {
			return "", fmt.Errorf("encode corrections: %w", err)
		}
		corrections = string(buf)
	}
	if !report.Valid {
		errorSummary = report.Summary()
	}

	repo := storage.NewScanRepository(db)
	return repo.Create(state.String(), report.Valid, corrections, errorSummary)
}

func solveScan(state cubevision.CubeState, scanID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sv := solver.NewCommandSolver(scanSolverPath)
	sol, err := sv.Solve(ctx, state.String())
	if err != nil {
		if errors.Is(err, cubevision.ErrSolverContradiction) {
			return fmt.Errorf("solver rejected a state that passed validation; please report this: %w", err)
		}
		return err
	}

	if err := cubevision.VerifySolution(state, sol); err != nil {
		return fmt.Errorf("solver output does not solve the cube; please report this: %w", err)
	}

	fmt.Printf("\nSolution (%d moves): %s\n", sol.Length(), sol.Notation())

	if scanID != "" {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return storage.NewScanRepository(db).SetSolution(scanID, sol.Notation(), sol.Length())
	}
	return nil
}
