package cubevision

import "strings"

// faceRotationCW maps destination position to source position for a
// 90-degree clockwise rotation of a single face:
//
//	0 1 2      6 3 0
//	3 4 5  ->  7 4 1
//	6 7 8      8 5 2
var faceRotationCW = [9]int{6, 3, 0, 7, 4, 1, 8, 5, 2}

// CubeState is an ordered sequence of exactly 54 facelets, face-major in
// URFDLB order. It has value semantics: every operation returns a new
// state and never mutates the receiver, so states can be shared freely
// across concurrent sessions.
type CubeState struct {
	Facelets [54]Facelet
}

// NewSolvedState returns the solved state: every facelet carries its
// face's center color with full confidence.
func NewSolvedState() CubeState {
	var s CubeState
	for i := range s.Facelets {
		f := Face(i / 9)
		s.Facelets[i] = Facelet{Pos: i, Face: f, Color: f.Color(), Confidence: 1}
	}
	return s
}

// ParseState parses the canonical 54-character cube string: face-major
// U, R, F, D, L, B, row-major within each face, one URFDLB letter per
// facelet naming the canonical face whose color the facelet carries.
// Parsed facelets get full confidence.
func ParseState(str string) (CubeState, error) {
	str = strings.TrimSpace(str)
	if len(str) != 54 {
		return CubeState{}, ErrBadStateString
	}
	var s CubeState
	for i := 0; i < 54; i++ {
		owner, err := ParseFaceLetter(str[i])
		if err != nil {
			return CubeState{}, ErrBadStateString
		}
		s.Facelets[i] = Facelet{Pos: i, Face: Face(i / 9), Color: owner.Color(), Confidence: 1}
	}
	return s, nil
}

// String serializes the state as the canonical 54-character cube string.
// This is the exact format the external solver expects; for any state,
// ParseState(s.String()) yields a color-equal state.
func (s CubeState) String() string {
	var b strings.Builder
	b.Grow(54)
	for i := 0; i < 54; i++ {
		b.WriteString(FaceOfColor(s.Facelets[i].Color).String())
	}
	return b.String()
}

// Color returns the color at facelet position i.
func (s CubeState) Color(i int) Color { return s.Facelets[i].Color }

// FaceColors returns the nine colors of face f in row-major order.
func (s CubeState) FaceColors(f Face) [9]Color {
	var out [9]Color
	base := int(f) * 9
	for i := 0; i < 9; i++ {
		out[i] = s.Facelets[base+i].Color
	}
	return out
}

// Center returns the center color of face f.
func (s CubeState) Center(f Face) Color { return s.Facelets[int(f)*9+4].Color }

// Equal reports whether both states carry the same colors at every
// position. Confidence values are ignored.
func (s CubeState) Equal(o CubeState) bool {
	for i := 0; i < 54; i++ {
		if s.Facelets[i].Color != o.Facelets[i].Color {
			return false
		}
	}
	return true
}

// IsSolved reports whether every facelet matches its face's center color.
func (s CubeState) IsSolved() bool {
	for i := 0; i < 54; i++ {
		if s.Facelets[i].Color != Face(i/9).Color() {
			return false
		}
	}
	return true
}

// RotateFace returns a copy with face f's nine stickers rotated by
// quarters*90 degrees clockwise. Only the face's own stickers move; the
// surrounding ring is untouched. This models a capture-orientation fix,
// not a legal cube move - use Apply for move semantics.
func (s CubeState) RotateFace(f Face, quarters int) CubeState {
	quarters = ((quarters % 4) + 4) % 4
	out := s
	base := int(f) * 9
	for ; quarters > 0; quarters-- {
		prev := out
		for i := 0; i < 9; i++ {
			src := prev.Facelets[base+faceRotationCW[i]]
			out.Facelets[base+i].Color = src.Color
			out.Facelets[base+i].Confidence = src.Confidence
		}
	}
	return out
}

// ReorderByCenters returns a copy with the six face blocks moved so that
// each face's center color sits on its canonical face. The second result
// is false (and the state unchanged) when the centers are not a
// permutation of the six canonical colors.
func (s CubeState) ReorderByCenters() (CubeState, bool) {
	var seen [6]bool
	for _, f := range AllFaces {
		c := s.Center(f)
		if seen[c] {
			return s, false
		}
		seen[c] = true
	}
	out := s
	moved := false
	for _, from := range AllFaces {
		to := FaceOfColor(s.Center(from))
		if to != from {
			moved = true
		}
		for i := 0; i < 9; i++ {
			src := s.Facelets[int(from)*9+i]
			dst := int(to)*9 + i
			out.Facelets[dst].Color = src.Color
			out.Facelets[dst].Confidence = src.Confidence
		}
	}
	if !moved {
		return s, false
	}
	return out, true
}

// colorCounts tallies how many facelets carry each color.
func (s CubeState) colorCounts() [6]int {
	var counts [6]int
	for i := 0; i < 54; i++ {
		counts[s.Facelets[i].Color]++
	}
	return counts
}

// Net returns a text net of the cube for terminal display:
//
//	      U U U
//	L L L F F F R R R B B B
//	      D D D
func (s CubeState) Net() string {
	var b strings.Builder

	writeRow := func(f Face, row int, indent bool) {
		if indent {
			b.WriteString("      ")
		}
		for col := 0; col < 3; col++ {
			b.WriteString(s.Facelets[int(f)*9+row*3+col].Color.String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		writeRow(U, row, true)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []Face{L, F, R, B} {
			writeRow(f, row, false)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		writeRow(D, row, true)
		b.WriteByte('\n')
	}
	return b.String()
}
