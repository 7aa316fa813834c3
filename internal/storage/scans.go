package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scan represents one capture session in the database.
type Scan struct {
	ScanID         string
	CapturedAt     time.Time
	CubeString     string
	IsValid        bool
	Corrections    *string
	ErrorSummary   *string
	Solution       *string
	SolutionLength *int64
}

// ScanRepository provides CRUD operations for scans.
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new scan repository.
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create stores a new scan and returns its ID.
func (r *ScanRepository) Create(cubeString string, isValid bool, corrections, errorSummary string) (string, error) {
	id := uuid.New().String()
	capturedAt := time.Now().UTC()

	var correctionsPtr, errorSummaryPtr *string
	if corrections != "" {
		correctionsPtr = &corrections
	}
	if errorSummary != "" {
		errorSummaryPtr = &errorSummary
	}

	_, err := r.db.Exec(`
		INSERT INTO scans (scan_id, captured_at, cube_string, is_valid, corrections, error_summary)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, capturedAt.Format(time.RFC3339), cubeString, boolToInt(isValid), correctionsPtr, errorSummaryPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create scan: %w", err)
	}

	return id, nil
}

// SetSolution records the solver's output for a scan.
func (r *ScanRepository) SetSolution(scanID, solution string, length int) error {
	_, err := r.db.Exec(`
		UPDATE scans
		SET solution = ?, solution_length = ?
		WHERE scan_id = ?
	`, solution, length, scanID)

	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}
	return nil
}

// Get returns one scan by ID.
func (r *ScanRepository) Get(scanID string) (*Scan, error) {
	row := r.db.QueryRow(`
		SELECT scan_id, captured_at, cube_string, is_valid, corrections, error_summary, solution, solution_length
		FROM scans WHERE scan_id = ?
	`, scanID)

	scan, err := scanFromRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan %s not found", scanID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return scan, nil
}

// List returns the most recent scans, newest first.
func (r *ScanRepository) List(limit int) ([]*Scan, error) {
	rows, err := r.db.Query(`
		SELECT scan_id, captured_at, cube_string, is_valid, corrections, error_summary, solution, solution_length
		FROM scans
		ORDER BY captured_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []*Scan
	for rows.Next() {
		scan, err := scanFromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read scan row: %w", err)
		}
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFromRow(row rowScanner) (*Scan, error) {
	var s Scan
	var capturedAt string
	var isValid int
	err := row.Scan(&s.ScanID, &capturedAt, &s.CubeString, &isValid, &s.Corrections, &s.ErrorSummary, &s.Solution, &s.SolutionLength)
	if err != nil {
		return nil, err
	}

	s.CapturedAt, err = time.Parse(time.RFC3339, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse captured_at: %w", err)
	}
	s.IsValid = isValid != 0
	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
