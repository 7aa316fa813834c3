package cubevision

// Strategy selects the classifier variant. The variant is fixed when the
// classifier is constructed, never resolved per call.
type Strategy int

const (
	// RangeWithFallback matches HSV ranges first and falls back to
	// nearest-centroid matching for low-light or ambiguous samples.
	RangeWithFallback Strategy = iota

	// RangeOnly disables the centroid fallback. Samples that match no
	// unique HSV range come back as AmbiguousColorError.
	RangeOnly
)

// ClassifierOption configures a Classifier.
type ClassifierOption func(*classifierConfig)

type classifierConfig struct {
	strategy      Strategy
	minConfidence float64
	lowLightValue float64
	centroids     []exemplar
}

func defaultClassifierConfig() *classifierConfig {
	return &classifierConfig{
		strategy:      RangeWithFallback,
		minConfidence: 0.25,
		lowLightValue: 0.24,
		centroids:     defaultCentroids,
	}
}

// WithStrategy selects the classification strategy.
func WithStrategy(s Strategy) ClassifierOption {
	return func(c *classifierConfig) {
		c.strategy = s
	}
}

// WithMinConfidence sets the confidence floor below which a
// classification is reported as ambiguous. Default 0.25.
func WithMinConfidence(min float64) ClassifierOption {
	return func(c *classifierConfig) {
		c.minConfidence = min
	}
}

// WithLowLightValue sets the HSV value threshold under which a sample is
// treated as low-light and routed straight to the fallback classifier.
// Default 0.24.
func WithLowLightValue(v float64) ClassifierOption {
	return func(c *classifierConfig) {
		c.lowLightValue = v
	}
}
