package storage

import (
	"path/filepath"
	"testing"
)

const testCubeString = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
}

func TestScanCreateAndGet(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))

	id, err := repo.Create(testCubeString, true, "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty ID")
	}

	scan, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if scan.CubeString != testCubeString {
		t.Errorf("cube string = %q, want %q", scan.CubeString, testCubeString)
	}
	if !scan.IsValid {
		t.Error("scan should be valid")
	}
	if scan.Corrections != nil || scan.ErrorSummary != nil {
		t.Error("empty corrections and summary should be stored as NULL")
	}
	if scan.Solution != nil || scan.SolutionLength != nil {
		t.Error("solution fields should start NULL")
	}
}

func TestScanGetUnknownID(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))
	if _, err := repo.Get("no-such-scan"); err == nil {
		t.Fatal("expected error for unknown scan ID")
	}
}

func TestScanInvalidWithDetails(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))

	id, err := repo.Create(testCubeString, false, `[{"Kind":1,"Face":0,"Degrees":90}]`, "invalid cube state (2 errors)")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	scan, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if scan.IsValid {
		t.Error("scan should be invalid")
	}
	if scan.Corrections == nil || scan.ErrorSummary == nil {
		t.Fatal("corrections and summary should round-trip")
	}
	if *scan.ErrorSummary != "invalid cube state (2 errors)" {
		t.Errorf("summary = %q", *scan.ErrorSummary)
	}
}

func TestScanSetSolution(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))

	id, err := repo.Create(testCubeString, true, "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SetSolution(id, "R U R' U'", 4); err != nil {
		t.Fatalf("SetSolution: %v", err)
	}

	scan, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if scan.Solution == nil || *scan.Solution != "R U R' U'" {
		t.Fatalf("solution did not round-trip: %v", scan.Solution)
	}
	if scan.SolutionLength == nil || *scan.SolutionLength != 4 {
		t.Fatalf("solution length did not round-trip: %v", scan.SolutionLength)
	}
}

func TestScanListLimit(t *testing.T) {
	repo := NewScanRepository(openTestDB(t))

	for i := 0; i < 5; i++ {
		if _, err := repo.Create(testCubeString, true, "", ""); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	scans, err := repo.List(3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(scans) != 3 {
		t.Fatalf("List returned %d scans, want 3", len(scans))
	}
}
