package minpairs

import (
	"fmt"
	"math"
	"strings"
)

// Filter narrows records to the candidates for spec: records containing
// either segment as a whole token, at or above the frequency threshold,
// with an allowed POS tag (compared case-insensitively) and etymology
// class. Records sharing a
// transcription are collapsed to the first one in source order.
//
// A negative or NaN MinFrequency returns ErrInvalidConfiguration. Empty
// allowed sets are not an error; they simply let nothing through.
func Filter(records []Record, spec PairSpec, cfg FilterConfig) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var pos map[string]bool
	if cfg.PartsOfSpeech != nil {
		pos = make(map[string]bool, len(cfg.PartsOfSpeech))
		for _, p := range cfg.PartsOfSpeech {
			pos[strings.ToUpper(p)] = true
		}
	}
	var ety map[Etymology]bool
	if cfg.Etymologies != nil {
		ety = make(map[Etymology]bool, len(cfg.Etymologies))
		for _, e := range cfg.Etymologies {
			ety[e] = true
		}
	}

	seen := make(map[string]bool)
	out := make([]Record, 0)
	for _, r := range records {
		if !r.HasSegment(spec.First) && !r.HasSegment(spec.Second) {
			continue
		}
		if r.Frequency < cfg.MinFrequency {
			continue
		}
		if pos != nil && !pos[r.POS] {
			continue
		}
		if ety != nil && !ety[r.Etymology] {
			continue
		}
		key := transcriptionKey(r.Transcription)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out, nil
}

// Validate checks the configuration for values no record could be
// compared against.
func (c FilterConfig) Validate() error {
	if c.MinFrequency < 0 || math.IsNaN(c.MinFrequency) {
		return fmt.Errorf("%w: minimum frequency must be >= 0 (got %v)", ErrInvalidConfiguration, c.MinFrequency)
	}
	return nil
}
