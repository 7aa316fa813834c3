package cubevision

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSample is the representative pixel statistic of one sticker patch.
// Hue is in degrees [0,360); Saturation and Value are in [0,1].
type ColorSample struct {
	Hue        float64
	Saturation float64
	Value      float64

	// Mean is the dominant patch color in sRGB, used by the
	// centroid-distance fallback classifier.
	Mean colorful.Color

	// Uniformity in [0,1] measures how consistent the patch pixels are.
	// Noisy patches (shadows, sticker edges) score low and drag the
	// final classification confidence down.
	Uniformity float64
}

func (s ColorSample) String() string {
	return fmt.Sprintf("hsv(%.0f, %.2f, %.2f) uniformity=%.2f", s.Hue, s.Saturation, s.Value, s.Uniformity)
}

// Facelet is a single classified sticker position.
type Facelet struct {
	Pos        int     // position in [0,53], face-major URFDLB
	Face       Face    // owning face
	Color      Color   // classified color
	Confidence float64 // classification confidence in [0,1]
}

// CapturedFace is one face as photographed: nine classified colors in
// row-major order, possibly rotated relative to canonical orientation.
// The label is free-form (typically a file name) and only used in error
// reporting.
type CapturedFace struct {
	Label      string
	Colors     [9]Color
	Confidence [9]float64
}

// Center returns the captured face's center color, which determines the
// canonical face this capture represents.
func (cf CapturedFace) Center() Color { return cf.Colors[4] }

// NewCapturedFace builds a face from known colors with full confidence,
// for callers assembling states from sources other than classified
// samples. Classified captures carry their real per-sticker confidences,
// including zero for facelets the classifier could not resolve.
func NewCapturedFace(label string, colors [9]Color) CapturedFace {
	cf := CapturedFace{Label: label, Colors: colors}
	for i := range cf.Confidence {
		cf.Confidence[i] = 1
	}
	return cf
}
