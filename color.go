package cubevision

// Color represents one of the six canonical sticker colors.
type Color byte

const (
	White  Color = 0
	Yellow Color = 1
	Red    Color = 2
	Orange Color = 3
	Green  Color = 4
	Blue   Color = 5
)

// Colors lists the canonical colors in face order (U, R, F, D, L, B).
var Colors = [6]Color{White, Red, Green, Yellow, Orange, Blue}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Name returns the full color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Yellow:
		return "Yellow"
	case Red:
		return "Red"
	case Orange:
		return "Orange"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Opposite returns the color on the opposite side of the cube.
// The pairs are fixed: White-Yellow, Red-Orange, Green-Blue.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Red:
		return Orange
	case Orange:
		return Red
	case Green:
		return Blue
	default:
		return Green
	}
}

// Face represents a canonical cube face. The numeric order (U, R, F, D,
// L, B) is also the face-major order of the 54-facelet state and of the
// cube notation string.
type Face int

const (
	U Face = 0 // Up (White)
	R Face = 1 // Right (Red)
	F Face = 2 // Front (Green)
	D Face = 3 // Down (Yellow)
	L Face = 4 // Left (Orange)
	B Face = 5 // Back (Blue)
)

// AllFaces lists the faces in canonical order.
var AllFaces = [6]Face{U, R, F, D, L, B}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Color returns the center color that defines this face.
func (f Face) Color() Color {
	switch f {
	case U:
		return White
	case R:
		return Red
	case F:
		return Green
	case D:
		return Yellow
	case L:
		return Orange
	default:
		return Blue
	}
}

// FaceOfColor returns the canonical face whose center carries c.
func FaceOfColor(c Color) Face {
	switch c {
	case White:
		return U
	case Red:
		return R
	case Green:
		return F
	case Yellow:
		return D
	case Orange:
		return L
	default:
		return B
	}
}

// ParseFaceLetter parses a single face letter (U, R, F, D, L, B).
func ParseFaceLetter(ch byte) (Face, error) {
	switch ch {
	case 'U', 'u':
		return U, nil
	case 'R', 'r':
		return R, nil
	case 'F', 'f':
		return F, nil
	case 'D', 'd':
		return D, nil
	case 'L', 'l':
		return L, nil
	case 'B', 'b':
		return B, nil
	default:
		return U, ErrInvalidNotation
	}
}
