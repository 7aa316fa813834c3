package cubevision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedFace snapshots one face of a state as a capture result.
func capturedFace(s CubeState, f Face, label string) CapturedFace {
	return NewCapturedFace(label, s.FaceColors(f))
}

func TestAssembleAcceptsFacesInAnyOrder(t *testing.T) {
	s, err := NewSolvedState().ApplyNotation("R U F' D2 L B'")
	require.NoError(t, err)

	// Deliberately shuffled capture order; centers decide placement.
	faces := [6]CapturedFace{
		capturedFace(s, F, "front.png"),
		capturedFace(s, U, "up.png"),
		capturedFace(s, B, "back.png"),
		capturedFace(s, D, "down.png"),
		capturedFace(s, R, "right.png"),
		capturedFace(s, L, "left.png"),
	}

	got, err := Assemble(faces)
	require.NoError(t, err)
	assert.True(t, got.Equal(s))

	for _, fl := range got.Facelets {
		assert.Equal(t, 1.0, fl.Confidence)
	}
}

// A facelet the classifier could not resolve carries zero confidence,
// and assembly must not inflate it.
func TestAssemblePreservesZeroConfidence(t *testing.T) {
	s := NewSolvedState()
	faces := [6]CapturedFace{
		capturedFace(s, U, "up.png"),
		capturedFace(s, R, "right.png"),
		capturedFace(s, F, "front.png"),
		capturedFace(s, D, "down.png"),
		capturedFace(s, L, "left.png"),
		capturedFace(s, B, "back.png"),
	}
	faces[0].Confidence[8] = 0

	got, err := Assemble(faces)
	require.NoError(t, err)

	assert.Zero(t, got.Facelets[8].Confidence)
	assert.Equal(t, 1.0, got.Facelets[0].Confidence)
}

func TestAssembleRejectsDuplicateCenter(t *testing.T) {
	s := NewSolvedState()
	faces := [6]CapturedFace{
		capturedFace(s, U, "one.png"),
		capturedFace(s, U, "two.png"), // second White center
		capturedFace(s, F, "front.png"),
		capturedFace(s, D, "down.png"),
		capturedFace(s, L, "left.png"),
		capturedFace(s, B, "back.png"),
	}

	_, err := Assemble(faces)

	require.ErrorIs(t, err, ErrDuplicateCenter)

	var dupErr *DuplicateCenterError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, White, dupErr.Color)
	assert.Equal(t, "one.png", dupErr.First)
	assert.Equal(t, "two.png", dupErr.Second)
}

func TestClassifyFaceKeepsBestGuessOnAmbiguity(t *testing.T) {
	cl := NewClassifier(WithStrategy(RangeOnly))

	var samples [9]ColorSample
	for i := range samples {
		samples[i] = hsvSample(120, 0.7, 0.7) // clean green
	}
	samples[4] = hsvSample(75, 0.8, 0.8) // between yellow and green

	face, ambiguous := ClassifyFace("front.png", samples, cl)

	assert.Equal(t, "front.png", face.Label)
	require.Len(t, ambiguous, 1)
	assert.ErrorIs(t, ambiguous[4], ErrAmbiguousColor)

	for i, c := range face.Colors {
		if i == 4 {
			continue
		}
		assert.Equal(t, Green, c, "sticker %d", i)
	}
}

func TestClassifyFaceCleanSamplesNoErrors(t *testing.T) {
	cl := NewClassifier()

	var samples [9]ColorSample
	for i := range samples {
		samples[i] = hsvSample(225, 0.8, 0.6)
	}

	face, ambiguous := ClassifyFace("back.png", samples, cl)

	assert.Nil(t, ambiguous)
	assert.Equal(t, Blue, face.Center())
	for i, conf := range face.Confidence {
		assert.Greater(t, conf, 0.5, "sticker %d", i)
	}
}
