package cubevision

import "testing"

func TestColorOppositePairs(t *testing.T) {
	pairs := map[Color]Color{
		White: Yellow,
		Red:   Orange,
		Green: Blue,
	}
	for a, b := range pairs {
		if a.Opposite() != b {
			t.Errorf("%s opposite = %s, want %s", a.Name(), a.Opposite().Name(), b.Name())
		}
		if b.Opposite() != a {
			t.Errorf("%s opposite = %s, want %s", b.Name(), b.Opposite().Name(), a.Name())
		}
	}
}

func TestFaceColorRoundTrip(t *testing.T) {
	for _, f := range AllFaces {
		if got := FaceOfColor(f.Color()); got != f {
			t.Errorf("FaceOfColor(%s.Color()) = %s, want %s", f, got, f)
		}
	}
}

func TestParseFaceLetter(t *testing.T) {
	for _, f := range AllFaces {
		got, err := ParseFaceLetter(f.String()[0])
		if err != nil {
			t.Fatalf("ParseFaceLetter(%s): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFaceLetter(%s) = %s", f, got)
		}
	}
	if _, err := ParseFaceLetter('X'); err == nil {
		t.Error("expected error for unknown face letter")
	}
}
