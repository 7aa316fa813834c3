package cubevision

// ringStrips lists, for each face's clockwise turn, the four 3-sticker
// strips on the adjacent faces that cycle with it. Contents move from
// strip 0 to strip 1 to strip 2 to strip 3 and back to strip 0.
// Indices are flat (face-major URFDLB, 9 per face).
var ringStrips = [6][4][3]int{
	U: {
		{18, 19, 20}, // F top row
		{36, 37, 38}, // L top row
		{45, 46, 47}, // B top row
		{9, 10, 11},  // R top row
	},
	D: {
		{24, 25, 26}, // F bottom row
		{15, 16, 17}, // R bottom row
		{51, 52, 53}, // B bottom row
		{42, 43, 44}, // L bottom row
	},
	F: {
		{6, 7, 8},    // U bottom row
		{9, 12, 15},  // R left column
		{29, 28, 27}, // D top row, reversed
		{44, 41, 38}, // L right column, reversed
	},
	B: {
		{2, 1, 0},    // U top row, reversed
		{36, 39, 42}, // L left column
		{33, 34, 35}, // D bottom row
		{17, 14, 11}, // R right column, reversed
	},
	R: {
		{2, 5, 8},    // U right column
		{51, 48, 45}, // B left column, reversed
		{29, 32, 35}, // D right column
		{20, 23, 26}, // F right column
	},
	L: {
		{0, 3, 6},    // U left column
		{18, 21, 24}, // F left column
		{27, 30, 33}, // D left column
		{53, 50, 47}, // B right column, reversed
	},
}

// Apply returns the state after performing the given moves in order.
// Facelet confidences travel with their stickers.
func (s CubeState) Apply(moves ...Move) CubeState {
	out := s
	for _, m := range moves {
		switch m.Turn {
		case CW:
			out = out.turnCW(m.Face)
		case CCW:
			out = out.turnCW(m.Face).turnCW(m.Face).turnCW(m.Face)
		case Double:
			out = out.turnCW(m.Face).turnCW(m.Face)
		}
	}
	return out
}

// ApplyNotation parses a space-separated move sequence and applies it.
func (s CubeState) ApplyNotation(notation string) (CubeState, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return s, err
	}
	return s.Apply(moves...), nil
}

// turnCW performs one clockwise quarter turn: the face's own stickers
// rotate and the adjacent ring strips cycle.
func (s CubeState) turnCW(f Face) CubeState {
	out := s.RotateFace(f, 1)
	strips := ringStrips[f]

	// a <- d, d <- c, c <- b, b <- a(saved)
	var saved [3]Facelet
	for i := 0; i < 3; i++ {
		saved[i] = out.Facelets[strips[0][i]]
	}
	for i := 0; i < 3; i++ {
		copyColor(&out, strips[0][i], strips[3][i])
	}
	for i := 0; i < 3; i++ {
		copyColor(&out, strips[3][i], strips[2][i])
	}
	for i := 0; i < 3; i++ {
		copyColor(&out, strips[2][i], strips[1][i])
	}
	for i := 0; i < 3; i++ {
		out.Facelets[strips[1][i]].Color = saved[i].Color
		out.Facelets[strips[1][i]].Confidence = saved[i].Confidence
	}
	return out
}

func copyColor(s *CubeState, dst, src int) {
	s.Facelets[dst].Color = s.Facelets[src].Color
	s.Facelets[dst].Confidence = s.Facelets[src].Confidence
}
