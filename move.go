package cubevision

import "strings"

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move in standard face-turn notation.
// This is the vocabulary of the external solver's output.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face, err := ParseFaceLetter(s[0])
	if err != nil {
		return Move{}, err
	}

	turn := CW // default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // same as 180
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated move sequence such as "R U R' U'".
// Solver output must be fully well-formed, so an invalid token is an
// error rather than something to skip.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
