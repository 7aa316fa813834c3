package cubevision

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubevision package.
var (
	// Contract violations (programming errors at the boundary)
	ErrBadFaceImage    = errors.New("cubevision: face image does not match the 600x600 contract")
	ErrInvalidNotation = errors.New("cubevision: invalid move notation")
	ErrBadStateString  = errors.New("cubevision: cube string must be 54 URFDLB letters")

	// Classification errors
	ErrAmbiguousColor = errors.New("cubevision: ambiguous color classification")

	// Assembly errors
	ErrDuplicateCenter = errors.New("cubevision: two captured faces share a center color")
	ErrMissingCenter   = errors.New("cubevision: a canonical center color is missing")

	// Correction errors
	ErrUncorrectable = errors.New("cubevision: state cannot be corrected by reordering or rotation")

	// Solver collaborator errors
	ErrSolverContradiction = errors.New("cubevision: solver rejected a structurally valid state")
)

// AmbiguousColorError reports a facelet whose classification confidence
// stayed below the configured minimum even after the fallback strategy.
// It is a per-facelet, recoverable condition: the caller decides whether
// to retake the face or ask for manual correction.
type AmbiguousColorError struct {
	Best       Color   // closest candidate
	Confidence float64 // confidence of the closest candidate
	Sample     ColorSample
}

func (e *AmbiguousColorError) Error() string {
	return fmt.Sprintf("cubevision: ambiguous color (best %s at %.2f)", e.Best.Name(), e.Confidence)
}

func (e *AmbiguousColorError) Unwrap() error { return ErrAmbiguousColor }

// DuplicateCenterError reports two captured faces with the same center
// color. Assembly aborts; no partial state is produced.
type DuplicateCenterError struct {
	Color  Color
	First  string // label of the first face with this center
	Second string // label of the offending face
}

func (e *DuplicateCenterError) Error() string {
	return fmt.Sprintf("cubevision: faces %q and %q both have a %s center", e.First, e.Second, e.Color.Name())
}

func (e *DuplicateCenterError) Unwrap() error { return ErrDuplicateCenter }

// MissingCenterError reports a canonical center color absent from the six
// captured faces. Assembly aborts; no partial state is produced.
type MissingCenterError struct {
	Color Color
}

func (e *MissingCenterError) Error() string {
	return fmt.Sprintf("cubevision: no captured face has a %s center", e.Color.Name())
}

func (e *MissingCenterError) Unwrap() error { return ErrMissingCenter }
