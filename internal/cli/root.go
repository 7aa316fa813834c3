// Package cli implements the command-line interface for cubevision.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubevision",
	Short: "Cube state capture and validation",
	Long: `Cubevision turns photographs of the six faces of a Rubik's cube into a
validated, canonical cube state ready for a move-search solver.

Scan six face images, review and fix capture errors interactively, and
hand the resulting 54-character cube string to an external solver.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubevision/cubevision.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the scan database at the configured or default path and
// applies pending migrations.
func openDB() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
