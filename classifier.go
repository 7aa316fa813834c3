package cubevision

import "math"

// Classifier maps a ColorSample to a canonical color and a confidence in
// [0,1]. It is a pure function of the sample and its immutable tables, so
// one classifier can serve concurrent capture sessions.
type Classifier struct {
	cfg classifierConfig
}

// NewClassifier constructs a classifier. The strategy and thresholds are
// fixed for the classifier's lifetime.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	cfg := defaultClassifierConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Classifier{cfg: *cfg}
}

// Classify returns the color label for a sample. The primary path matches
// the sample's HSV statistic against the six reference ranges; exactly one
// match wins outright. Low-light samples and samples matching zero or
// several ranges go to the centroid fallback (when enabled). A confidence
// below the configured minimum yields the best candidate together with an
// AmbiguousColorError; callers report it per facelet and carry on.
func (cl *Classifier) Classify(s ColorSample) (Color, float64, error) {
	if s.Value >= cl.cfg.lowLightValue {
		if c, conf, ok := cl.classifyByRange(s); ok {
			return c, conf, nil
		}
	}

	if cl.cfg.strategy == RangeOnly {
		err := &AmbiguousColorError{Best: White, Confidence: 0, Sample: s}
		return White, 0, err
	}

	c, conf := cl.classifyByCentroid(s)
	if conf < cl.cfg.minConfidence {
		return c, conf, &AmbiguousColorError{Best: c, Confidence: conf, Sample: s}
	}
	return c, conf, nil
}

// classifyByRange matches the sample against the HSV reference ranges.
// ok is false unless exactly one range contains the sample.
func (cl *Classifier) classifyByRange(s ColorSample) (Color, float64, bool) {
	matched := -1
	var conf float64
	for i, r := range colorRanges {
		if !r.contains(s.Hue, s.Saturation, s.Value) {
			continue
		}
		if matched >= 0 {
			return White, 0, false // more than one range: ambiguous
		}
		matched = i
		if r.color == White {
			// The whiter the sticker, the lower its saturation.
			conf = 1 - s.Saturation
		} else {
			conf = 0.95
		}
	}
	if matched < 0 {
		return White, 0, false
	}
	conf *= 0.7 + 0.3*s.Uniformity
	return colorRanges[matched].color, clamp01(conf), true
}

// classifyByCentroid returns the nearest exemplar centroid in Lab space.
// Confidence is derived from the distance ratio to the second-nearest
// centroid: 1 when the sample sits on a centroid, 0 when it is
// equidistant between the two closest.
func (cl *Classifier) classifyByCentroid(s ColorSample) (Color, float64) {
	best, second := math.Inf(1), math.Inf(1)
	bestColor := White
	for _, ex := range cl.cfg.centroids {
		d := s.Mean.DistanceLab(ex.centroid)
		if d < best {
			best, second = d, best
			bestColor = ex.color
		} else if d < second {
			second = d
		}
	}
	if second == 0 {
		return bestColor, 0
	}
	return bestColor, clamp01(1 - best/second)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
