package cubevision

import "github.com/lucasb-eyer/go-colorful"

// Facelet indexing is face-major in URFDLB order, row-major within each
// face as seen facing that face:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// so face f owns indices 9f..9f+8 and its center is 9f+4.

// CornerDefinition describes one of the eight corner slots: the three
// facelet positions that physically co-locate, listed clockwise as seen
// from outside the cube starting from the U/D-face position, and the
// color tuple they carry when solved, in the same order.
type CornerDefinition struct {
	Name      string
	Positions [3]int
	Colors    [3]Color
}

// EdgeDefinition describes one of the twelve edge slots. The first
// position is the slot's distinguished facelet: the one on the U or D
// face when the slot touches U/D, otherwise the one on the F or B face.
type EdgeDefinition struct {
	Name      string
	Positions [2]int
	Colors    [2]Color
}

// Corners lists the eight corner slots. Never mutated after init.
var Corners = [8]CornerDefinition{
	{"URF", [3]int{8, 9, 20}, [3]Color{White, Red, Green}},
	{"UFL", [3]int{6, 18, 38}, [3]Color{White, Green, Orange}},
	{"ULB", [3]int{0, 36, 47}, [3]Color{White, Orange, Blue}},
	{"UBR", [3]int{2, 45, 11}, [3]Color{White, Blue, Red}},
	{"DFR", [3]int{29, 26, 15}, [3]Color{Yellow, Green, Red}},
	{"DLF", [3]int{27, 44, 24}, [3]Color{Yellow, Orange, Green}},
	{"DBL", [3]int{33, 53, 42}, [3]Color{Yellow, Blue, Orange}},
	{"DRB", [3]int{35, 17, 51}, [3]Color{Yellow, Red, Blue}},
}

// Edges lists the twelve edge slots. Never mutated after init.
var Edges = [12]EdgeDefinition{
	{"UR", [2]int{5, 10}, [2]Color{White, Red}},
	{"UF", [2]int{7, 19}, [2]Color{White, Green}},
	{"UL", [2]int{3, 37}, [2]Color{White, Orange}},
	{"UB", [2]int{1, 46}, [2]Color{White, Blue}},
	{"DR", [2]int{32, 16}, [2]Color{Yellow, Red}},
	{"DF", [2]int{28, 25}, [2]Color{Yellow, Green}},
	{"DL", [2]int{30, 43}, [2]Color{Yellow, Orange}},
	{"DB", [2]int{34, 52}, [2]Color{Yellow, Blue}},
	{"FR", [2]int{23, 12}, [2]Color{Green, Red}},
	{"FL", [2]int{21, 41}, [2]Color{Green, Orange}},
	{"BL", [2]int{50, 39}, [2]Color{Blue, Orange}},
	{"BR", [2]int{48, 14}, [2]Color{Blue, Red}},
}

// colorRange is an inclusive HSV box for the primary range classifier.
// Hue is in degrees; red needs a second span because its hue wraps zero.
type colorRange struct {
	color                  Color
	hueMin, hueMax         float64
	hue2Min, hue2Max       float64 // second span, only for red
	wrapHue                bool
	satMin, satMax         float64
	valMin, valMax         float64
}

// colorRanges are tuned for white-balanced, brightness-normalized face
// images. White is matched by low saturation and high value rather than
// hue; its confidence scales with how low the saturation actually is.
var colorRanges = []colorRange{
	{color: White, hueMin: 0, hueMax: 360, satMin: 0, satMax: 0.12, valMin: 0.78, valMax: 1},
	{color: Red, hueMin: 0, hueMax: 16, hue2Min: 344, hue2Max: 360, wrapHue: true, satMin: 0.47, satMax: 1, valMin: 0.24, valMax: 1},
	{color: Orange, hueMin: 16, hueMax: 36, satMin: 0.47, satMax: 1, valMin: 0.39, valMax: 1},
	{color: Yellow, hueMin: 40, hueMax: 60, satMin: 0.39, satMax: 1, valMin: 0.39, valMax: 1},
	{color: Green, hueMin: 90, hueMax: 150, satMin: 0.24, satMax: 1, valMin: 0.24, valMax: 1},
	{color: Blue, hueMin: 200, hueMax: 260, satMin: 0.59, satMax: 1, valMin: 0.1, valMax: 1},
}

func (r colorRange) contains(h, s, v float64) bool {
	if s < r.satMin || s > r.satMax || v < r.valMin || v > r.valMax {
		return false
	}
	if h >= r.hueMin && h <= r.hueMax {
		return true
	}
	return r.wrapHue && h >= r.hue2Min && h <= r.hue2Max
}

// exemplar is a reference centroid for the clustering fallback. The
// exemplars are deliberately darker than ideal sticker colors so that
// low-illumination patches still land near the right centroid.
type exemplar struct {
	color    Color
	centroid colorful.Color
}

var defaultCentroids = []exemplar{
	{White, colorful.Color{R: 1.0, G: 1.0, B: 1.0}},
	{Yellow, colorful.Color{R: 1.0, G: 1.0, B: 0.0}},
	{Red, colorful.Color{R: 0.70, G: 0.0, B: 0.0}},
	{Orange, colorful.Color{R: 1.0, G: 0.55, B: 0.0}},
	{Green, colorful.Color{R: 0.0, G: 0.70, B: 0.0}},
	{Blue, colorful.Color{R: 0.0, G: 0.0, B: 1.0}},
}

// cornerIndexByColorSet resolves a corner color multiset to its cubie.
// Returns -1 when the three colors form no real corner piece.
func cornerIndexByColorSet(colors [3]Color) int {
	var mask uint8
	for _, c := range colors {
		mask |= 1 << c
	}
	for i, def := range Corners {
		var want uint8
		for _, c := range def.Colors {
			want |= 1 << c
		}
		if mask == want {
			return i
		}
	}
	return -1
}

// edgeIndexByColorSet resolves an edge color pair to its cubie, or -1.
func edgeIndexByColorSet(colors [2]Color) int {
	var mask uint8
	for _, c := range colors {
		mask |= 1 << c
	}
	for i, def := range Edges {
		want := uint8(1<<def.Colors[0] | 1<<def.Colors[1])
		if mask == want {
			return i
		}
	}
	return -1
}
