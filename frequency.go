package minpairs

import (
	"fmt"
	"math"
)

// Frequency slider bounds. The slider is logarithmic: a value v selects
// an absolute frequency threshold of 10^v.
const (
	SliderMin     = 0.0
	SliderMax     = 5.0
	SliderDefault = 2.0
)

// CorpusTokens is the size, in tokens, of the reference corpus the
// bundled frequencies were counted over.
const CorpusTokens = 16568543

// ThresholdFromSlider converts a slider value to an absolute frequency
// threshold. Values outside [SliderMin, SliderMax] return
// ErrInvalidConfiguration.
func ThresholdFromSlider(v float64) (float64, error) {
	if math.IsNaN(v) || v < SliderMin || v > SliderMax {
		return 0, fmt.Errorf("%w: slider value %v outside [%v, %v]", ErrInvalidConfiguration, v, SliderMin, SliderMax)
	}
	return math.Pow(10, v), nil
}

// RelativeFrequency expresses threshold as a percentage of corpusTokens.
func RelativeFrequency(threshold float64, corpusTokens int) float64 {
	if corpusTokens <= 0 {
		return 0
	}
	return threshold * 100 / float64(corpusTokens)
}

// DescribeThreshold returns the hint shown under the frequency slider.
func DescribeThreshold(threshold float64, corpusTokens int) string {
	return fmt.Sprintf("Consider only words that occur more than %.2f times out of %s tokens (or, %.2f%%)",
		threshold, humanTokens(corpusTokens), RelativeFrequency(threshold, corpusTokens))
}

func humanTokens(n int) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%dm", n/1_000_000)
	}
	if n >= 1_000 {
		return fmt.Sprintf("%dk", n/1_000)
	}
	return fmt.Sprintf("%d", n)
}
