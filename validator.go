package cubevision

import "fmt"

// Validate checks a CubeState against the structural laws of a physical
// cube and returns a detailed report. It is a pure function: identical
// input always yields an identical report and the state is never mutated.
//
// Checks run in order: global color counts (short-circuiting, since
// nothing downstream is meaningful with the wrong counts), then corner
// color sets, cyclic order and twist parity, then edge color sets and
// flip parity, then corner/edge permutation parity consistency. Errors
// within the corner and edge passes accumulate rather than aborting.
func Validate(s CubeState) ValidationReport {
	rep := ValidationReport{Valid: true}
	for i := range rep.CornerTwists {
		rep.CornerTwists[i] = -1
	}
	for i := range rep.EdgeFlips {
		rep.EdgeFlips[i] = -1
	}

	counts := s.colorCounts()
	for _, c := range Colors {
		if counts[c] != 9 {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:   ColorCountError,
				Index:  int(c),
				Detail: fmt.Sprintf("%d facelets, expected 9", counts[c]),
			})
		}
	}
	if !rep.Valid {
		// Wrong counts are unrecoverable by rotation or reordering and
		// make every piece-level check meaningless.
		return rep
	}

	cornerPerm := validateCorners(s, &rep)
	edgePerm := validateEdges(s, &rep)

	if cornerPerm != nil && edgePerm != nil {
		cp := permutationParity(cornerPerm)
		ep := permutationParity(edgePerm)
		if cp != ep {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:  PermutationParityMismatchError,
				Index: -1,
				Detail: fmt.Sprintf("corner permutation is %s but edge permutation is %s",
					parityName(cp), parityName(ep)),
			})
		}
	}

	return rep
}

// validateCorners runs the per-corner color-set, cyclic-order and twist
// checks. It returns the slot-to-cubie permutation, or nil when any slot
// could not be identified uniquely (which also disables the global
// permutation parity comparison).
func validateCorners(s CubeState, rep *ValidationReport) []int {
	perm := make([]int, len(Corners))
	firstSeen := make(map[int]int) // cubie -> first slot
	complete := true
	twistSum := 0
	allTwists := true

	for i, def := range Corners {
		actual := [3]Color{
			s.Color(def.Positions[0]),
			s.Color(def.Positions[1]),
			s.Color(def.Positions[2]),
		}
		perm[i] = -1

		if detail, ok := cornerSetProblem(actual); !ok {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:   CornerColorSetError,
				Index:  i,
				Actual: actual[:],
				Detail: detail,
			})
			complete = false
			allTwists = false
			continue
		}

		cubie := cornerIndexByColorSet(actual)
		if prev, dup := firstSeen[cubie]; dup {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:   CornerColorSetError,
				Index:  i,
				Actual: actual[:],
				Detail: fmt.Sprintf("duplicate of corner %s", Corners[prev].Name),
			})
			complete = false
		} else {
			firstSeen[cubie] = i
		}
		perm[i] = cubie

		// Twist: position of the White/Yellow facelet within the slot's
		// clockwise listing. Every real corner piece has exactly one.
		twist := 0
		for j, c := range actual {
			if c == White || c == Yellow {
				twist = j
				break
			}
		}
		rep.CornerTwists[i] = twist
		twistSum += twist

		// Cyclic order: rotate the actual tuple so White/Yellow leads,
		// then compare element-wise against the piece's reference order.
		// Rotation can never produce a mirrored arrangement, so a
		// mirror fails here even though its color multiset matches.
		rotated := [3]Color{actual[twist], actual[(twist+1)%3], actual[(twist+2)%3]}
		if rotated != Corners[cubie].Colors {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:     CornerOrderError,
				Index:    i,
				Expected: Corners[cubie].Colors[:],
				Actual:   rotated[:],
			})
		}
	}

	// Twist parity stands on its own: a single twisted corner can leave
	// every per-corner check green while still being unsolvable.
	if allTwists && twistSum%3 != 0 {
		rep.Valid = false
		rep.Errors = append(rep.Errors, ValidationError{
			Kind:   CornerParityError,
			Index:  -1,
			Detail: fmt.Sprintf("corner rotation sum %d is not divisible by 3", twistSum),
		})
	}

	if !complete {
		return nil
	}
	return perm
}

// cornerSetProblem reports why three colors cannot form a real corner
// piece, or ok=true when they can.
func cornerSetProblem(actual [3]Color) (string, bool) {
	if actual[0] == actual[1] || actual[1] == actual[2] || actual[0] == actual[2] {
		return "repeated color on one corner", false
	}
	for _, a := range actual {
		for _, b := range actual {
			if b == a.Opposite() {
				return "mutually opposite colors on one corner", false
			}
		}
	}
	if cornerIndexByColorSet(actual) < 0 {
		return "no such corner piece", false
	}
	return "", true
}

// validateEdges runs the per-edge color-set and flip checks, mirroring
// validateCorners for 2-color pieces.
func validateEdges(s CubeState, rep *ValidationReport) []int {
	perm := make([]int, len(Edges))
	firstSeen := make(map[int]int)
	complete := true
	flipSum := 0
	allFlips := true

	for i, def := range Edges {
		actual := [2]Color{s.Color(def.Positions[0]), s.Color(def.Positions[1])}
		perm[i] = -1

		if detail, ok := edgeSetProblem(actual); !ok {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:   EdgeColorSetError,
				Index:  i,
				Actual: actual[:],
				Detail: detail,
			})
			complete = false
			allFlips = false
			continue
		}

		cubie := edgeIndexByColorSet(actual)
		if prev, dup := firstSeen[cubie]; dup {
			rep.Valid = false
			rep.Errors = append(rep.Errors, ValidationError{
				Kind:   EdgeColorSetError,
				Index:  i,
				Actual: actual[:],
				Detail: fmt.Sprintf("duplicate of edge %s", Edges[prev].Name),
			})
			complete = false
		} else {
			firstSeen[cubie] = i
		}
		perm[i] = cubie

		// Flip bit: zero when the piece's distinguished color sits at
		// the slot's distinguished position.
		flip := 0
		if actual[0] != Edges[cubie].Colors[0] {
			flip = 1
		}
		rep.EdgeFlips[i] = flip
		flipSum += flip
	}

	if allFlips && flipSum%2 != 0 {
		rep.Valid = false
		rep.Errors = append(rep.Errors, ValidationError{
			Kind:   EdgeParityError,
			Index:  -1,
			Detail: fmt.Sprintf("edge flip sum %d is odd", flipSum),
		})
	}

	if !complete {
		return nil
	}
	return perm
}

// edgeSetProblem reports why two colors cannot form a real edge piece.
func edgeSetProblem(actual [2]Color) (string, bool) {
	if actual[0] == actual[1] {
		return "same color on both edge stickers", false
	}
	if actual[1] == actual[0].Opposite() {
		return "mutually opposite colors on one edge", false
	}
	if edgeIndexByColorSet(actual) < 0 {
		return "no such edge piece", false
	}
	return "", true
}

// permutationParity returns 0 for an even permutation, 1 for odd.
func permutationParity(perm []int) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}

func parityName(p int) string {
	if p == 0 {
		return "even"
	}
	return "odd"
}
