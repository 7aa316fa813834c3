package cubevision

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hsvSample builds a perfectly uniform sample from HSV coordinates.
func hsvSample(h, s, v float64) ColorSample {
	return ColorSample{
		Hue:        h,
		Saturation: s,
		Value:      v,
		Mean:       colorful.Hsv(h, s, v),
		Uniformity: 1,
	}
}

func TestClassifyWellLitStickers(t *testing.T) {
	cl := NewClassifier()

	tests := []struct {
		name   string
		sample ColorSample
		want   Color
	}{
		{"white", hsvSample(0, 0.05, 0.92), White},
		{"red", hsvSample(5, 0.85, 0.8), Red},
		{"red wrapped hue", hsvSample(352, 0.85, 0.8), Red},
		{"orange", hsvSample(25, 0.85, 0.8), Orange},
		{"yellow", hsvSample(50, 0.8, 0.8), Yellow},
		{"green", hsvSample(120, 0.7, 0.7), Green},
		{"blue", hsvSample(225, 0.8, 0.6), Blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf, err := cl.Classify(tt.sample)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Greater(t, conf, 0.5)
		})
	}
}

func TestClassifyUniformityScalesConfidence(t *testing.T) {
	cl := NewClassifier()

	crisp := hsvSample(120, 0.7, 0.7)
	noisy := crisp
	noisy.Uniformity = 0.2

	_, crispConf, err := cl.Classify(crisp)
	require.NoError(t, err)
	_, noisyConf, err := cl.Classify(noisy)
	require.NoError(t, err)

	assert.Greater(t, crispConf, noisyConf)
}

func TestClassifyRangeOnlyRejectsUnmatchedSample(t *testing.T) {
	cl := NewClassifier(WithStrategy(RangeOnly))

	// Hue 75 falls in the gap between the yellow and green ranges.
	_, conf, err := cl.Classify(hsvSample(75, 0.8, 0.8))

	require.ErrorIs(t, err, ErrAmbiguousColor)
	assert.Zero(t, conf)

	var ambErr *AmbiguousColorError
	require.ErrorAs(t, err, &ambErr)
}

func TestClassifyFallbackHandlesLowLight(t *testing.T) {
	cl := NewClassifier()

	// Dark red sticker: below the low-light value threshold, so the range
	// pass is skipped and the centroid fallback decides.
	got, conf, err := cl.Classify(hsvSample(0, 0.9, 0.2))

	require.NoError(t, err)
	assert.Equal(t, Red, got)
	assert.Greater(t, conf, 0.0)
}

func TestClassifyFallbackReportsLowConfidence(t *testing.T) {
	cl := NewClassifier(WithMinConfidence(0.99))

	got, _, err := cl.Classify(hsvSample(0, 0.9, 0.2))

	require.ErrorIs(t, err, ErrAmbiguousColor)
	// The best candidate still comes back for the caller to keep.
	assert.Equal(t, Red, got)

	var ambErr *AmbiguousColorError
	require.ErrorAs(t, err, &ambErr)
	assert.Equal(t, Red, ambErr.Best)
}

func TestClassifyLowLightThresholdOption(t *testing.T) {
	// With the threshold lowered, a dark blue sample goes through the
	// range pass instead of the fallback.
	cl := NewClassifier(WithLowLightValue(0.1))

	got, conf, err := cl.Classify(hsvSample(225, 0.8, 0.2))
	require.NoError(t, err)
	assert.Equal(t, Blue, got)
	assert.Greater(t, conf, 0.9)
}
