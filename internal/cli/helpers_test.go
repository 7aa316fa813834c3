package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/SeamusWaldron/cubevision"
)

func TestParseCubeArgBothAlphabets(t *testing.T) {
	faceLetters := "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"
	colorLetters := "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB"

	fromFaces, err := parseCubeArg(faceLetters)
	if err != nil {
		t.Fatalf("face alphabet: %v", err)
	}
	fromColors, err := parseCubeArg(colorLetters)
	if err != nil {
		t.Fatalf("color alphabet: %v", err)
	}

	if !fromFaces.Equal(fromColors) {
		t.Fatal("both alphabets should parse to the same state")
	}
	if !fromFaces.IsSolved() {
		t.Fatal("parsed state should be solved")
	}
}

func TestParseCubeArgLowercaseAndWhitespace(t *testing.T) {
	input := "  " + strings.ToLower("WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB") + "\n"
	s, err := parseCubeArg(input)
	if err != nil {
		t.Fatalf("parseCubeArg: %v", err)
	}
	if !s.IsSolved() {
		t.Fatal("parsed state should be solved")
	}
}

func TestParseCubeArgRejectsUnknownLetter(t *testing.T) {
	input := strings.Repeat("W", 53) + "X"
	if _, err := parseCubeArg(input); !errors.Is(err, cubevision.ErrBadStateString) {
		t.Fatalf("expected ErrBadStateString, got %v", err)
	}
}

func TestParseCubeArgRejectsWrongLength(t *testing.T) {
	if _, err := parseCubeArg("WWW"); !errors.Is(err, cubevision.ErrBadStateString) {
		t.Fatal("expected ErrBadStateString for short input")
	}
}

func TestRenderReportListsEachErrorOnce(t *testing.T) {
	s, err := parseCubeArg("WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB")
	if err != nil {
		t.Fatalf("parseCubeArg: %v", err)
	}

	// Flip one edge in place so validation reports exactly one error.
	p0, p1 := cubevision.Edges[0].Positions[0], cubevision.Edges[0].Positions[1]
	s.Facelets[p0].Color, s.Facelets[p1].Color = s.Facelets[p1].Color, s.Facelets[p0].Color

	rep := cubevision.Validate(s)
	if rep.Valid {
		t.Fatal("flipped edge should not validate")
	}
	rep.Corrections = []cubevision.Correction{
		{Kind: cubevision.CorrectionRotate, Face: cubevision.U, Degrees: 90},
	}

	out := renderReport(rep)
	if got := strings.Count(out, "edge-parity"); got != 1 {
		t.Errorf("error listed %d times, want once:\n%s", got, out)
	}
	if got := strings.Count(out, "rotated"); got != 1 {
		t.Errorf("correction listed %d times, want once:\n%s", got, out)
	}
}

func TestRenderNetShowsAllFaces(t *testing.T) {
	s, err := parseCubeArg("WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB")
	if err != nil {
		t.Fatalf("parseCubeArg: %v", err)
	}

	net := renderNet(s, -1)
	lines := strings.Split(strings.TrimRight(net, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("net has %d lines, want 9", len(lines))
	}
	for _, letter := range []string{"W", "R", "G", "Y", "O", "B"} {
		if !strings.Contains(net, letter) {
			t.Errorf("net missing %s stickers", letter)
		}
	}
}
