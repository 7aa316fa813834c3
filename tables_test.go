package cubevision

import "testing"

// Every non-center facelet belongs to exactly one corner or edge slot,
// and the six centers belong to none.
func TestPieceTablesCoverAllFacelets(t *testing.T) {
	seen := make(map[int]string)

	record := func(pos int, name string) {
		if prev, dup := seen[pos]; dup {
			t.Errorf("position %d claimed by both %s and %s", pos, prev, name)
		}
		seen[pos] = name
	}

	for _, c := range Corners {
		for _, pos := range c.Positions {
			record(pos, c.Name)
		}
	}
	for _, e := range Edges {
		for _, pos := range e.Positions {
			record(pos, e.Name)
		}
	}

	if len(seen) != 48 {
		t.Fatalf("tables cover %d positions, want 48", len(seen))
	}
	for _, f := range AllFaces {
		center := int(f)*9 + 4
		if name, claimed := seen[center]; claimed {
			t.Errorf("center %d claimed by %s", center, name)
		}
	}
}

func TestCornerDefinitionsLeadWithWhiteOrYellow(t *testing.T) {
	for _, c := range Corners {
		if c.Colors[0] != White && c.Colors[0] != Yellow {
			t.Errorf("corner %s reference tuple starts with %s", c.Name, c.Colors[0].Name())
		}
		if c.Positions[0]/9 != int(U) && c.Positions[0]/9 != int(D) {
			t.Errorf("corner %s first position %d is not on U or D", c.Name, c.Positions[0])
		}
	}
}

func TestEdgeDistinguishedPositions(t *testing.T) {
	for _, e := range Edges {
		f := Face(e.Positions[0] / 9)
		if f != U && f != D && f != F && f != B {
			t.Errorf("edge %s distinguished position %d is on face %s", e.Name, e.Positions[0], f)
		}
	}
}

func TestCornerIndexByColorSet(t *testing.T) {
	for i, c := range Corners {
		// Any rotation of the tuple identifies the same cubie.
		rotated := [3]Color{c.Colors[1], c.Colors[2], c.Colors[0]}
		if got := cornerIndexByColorSet(rotated); got != i {
			t.Errorf("corner %s: lookup gave index %d, want %d", c.Name, got, i)
		}
	}
	if got := cornerIndexByColorSet([3]Color{White, Yellow, Red}); got != -1 {
		t.Errorf("impossible corner resolved to index %d", got)
	}
}

func TestEdgeIndexByColorSet(t *testing.T) {
	for i, e := range Edges {
		flipped := [2]Color{e.Colors[1], e.Colors[0]}
		if got := edgeIndexByColorSet(flipped); got != i {
			t.Errorf("edge %s: lookup gave index %d, want %d", e.Name, got, i)
		}
	}
	if got := edgeIndexByColorSet([2]Color{Green, Blue}); got != -1 {
		t.Errorf("impossible edge resolved to index %d", got)
	}
}

// The solved state must satisfy every reference tuple exactly.
func TestPieceTablesMatchSolvedState(t *testing.T) {
	s := NewSolvedState()
	for _, c := range Corners {
		for j, pos := range c.Positions {
			if s.Color(pos) != c.Colors[j] {
				t.Errorf("corner %s position %d: solved color %s, reference %s",
					c.Name, pos, s.Color(pos).Name(), c.Colors[j].Name())
			}
		}
	}
	for _, e := range Edges {
		for j, pos := range e.Positions {
			if s.Color(pos) != e.Colors[j] {
				t.Errorf("edge %s position %d: solved color %s, reference %s",
					e.Name, pos, s.Color(pos).Name(), e.Colors[j].Name())
			}
		}
	}
}
