package cubevision

import (
	"fmt"
	"strings"
)

// ErrorKind tags one class of structural validation failure.
type ErrorKind int

const (
	ColorCountError ErrorKind = iota
	CornerColorSetError
	CornerOrderError
	CornerParityError
	EdgeColorSetError
	EdgeParityError
	PermutationParityMismatchError
	UncorrectableError
)

func (k ErrorKind) String() string {
	switch k {
	case ColorCountError:
		return "color-count"
	case CornerColorSetError:
		return "corner-color-set"
	case CornerOrderError:
		return "corner-order"
	case CornerParityError:
		return "corner-parity"
	case EdgeColorSetError:
		return "edge-color-set"
	case EdgeParityError:
		return "edge-parity"
	case PermutationParityMismatchError:
		return "permutation-parity-mismatch"
	case UncorrectableError:
		return "uncorrectable"
	default:
		return "unknown"
	}
}

// Correctable reports whether this error class can, in principle, be
// produced by a capture artifact (a rotated or misplaced face) and is
// therefore worth handing to the corrector. Color count violations and
// permutation parity mismatches cannot result from whole-face rotation.
func (k ErrorKind) Correctable() bool {
	switch k {
	case CornerColorSetError, CornerOrderError, CornerParityError,
		EdgeColorSetError, EdgeParityError:
		return true
	default:
		return false
	}
}

// ValidationError is one structural violation, attributable to a specific
// corner, edge, or color.
type ValidationError struct {
	Kind ErrorKind

	// Index is the corner index [0,7] or edge index [0,11] for piece
	// errors, or the Color for count errors. -1 for global errors.
	Index int

	Expected []Color
	Actual   []Color

	Detail string
}

func (e ValidationError) String() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case CornerColorSetError, CornerOrderError:
		fmt.Fprintf(&b, " corner %s", Corners[e.Index].Name)
	case EdgeColorSetError:
		fmt.Fprintf(&b, " edge %s", Edges[e.Index].Name)
	case ColorCountError:
		fmt.Fprintf(&b, " %s", Color(e.Index).Name())
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " expected %s actual %s", colorTuple(e.Expected), colorTuple(e.Actual))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func colorTuple(colors []Color) string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.Name()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// CorrectionKind tags one transformation the corrector applied.
type CorrectionKind int

const (
	// CorrectionReorder moved whole faces so centers sit canonically.
	CorrectionReorder CorrectionKind = iota
	// CorrectionRotate rotated one face's stickers in place.
	CorrectionRotate
)

// Correction records one transformation applied by the corrector.
type Correction struct {
	Kind    CorrectionKind
	Face    Face // for CorrectionRotate
	Degrees int  // for CorrectionRotate: 90, 180, or 270
}

func (c Correction) String() string {
	if c.Kind == CorrectionReorder {
		return "reordered faces by center color"
	}
	return fmt.Sprintf("rotated face %s by %d degrees", c.Face, c.Degrees)
}

// ValidationReport is the full outcome of validating one CubeState.
// Identical states always produce identical reports.
type ValidationReport struct {
	Valid  bool
	Errors []ValidationError

	// CornerTwists[i] is corner i's rotation value in {0,1,2}, or -1
	// when the corner's colors match no real piece. Their sum mod 3 is
	// zero for every physically reachable state.
	CornerTwists [8]int

	// EdgeFlips[i] is edge i's flip bit, or -1 when unidentifiable.
	// Their sum mod 2 is zero for every physically reachable state.
	EdgeFlips [12]int

	// Corrections applied by the corrector, in order. Empty for a
	// report produced by Validate alone.
	Corrections []Correction
}

// HasKind reports whether the report contains an error of the given kind.
func (r ValidationReport) HasKind(k ErrorKind) bool {
	for _, e := range r.Errors {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Correctable reports whether every error in the report belongs to a
// class the corrector can address. An empty error list is correctable
// trivially.
func (r ValidationReport) Correctable() bool {
	for _, e := range r.Errors {
		if !e.Kind.Correctable() {
			return false
		}
	}
	return true
}

// Summary renders the report as a short human-readable block.
func (r ValidationReport) Summary() string {
	var b strings.Builder
	if r.Valid {
		b.WriteString("valid cube state")
	} else {
		fmt.Fprintf(&b, "invalid cube state (%d errors)", len(r.Errors))
	}
	for _, e := range r.Errors {
		b.WriteString("\n  - ")
		b.WriteString(e.String())
	}
	for _, c := range r.Corrections {
		b.WriteString("\n  * ")
		b.WriteString(c.String())
	}
	return b.String()
}
