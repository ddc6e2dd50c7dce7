package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cours-de-latin/minpairs"
)

// queryParams is the decoded form of one pair query, shared by the GET
// query string and the batch request body.
type queryParams struct {
	Pair      string   `json:"pair"`
	MinFreq   *float64 `json:"min_freq,omitempty"`
	Slider    *float64 `json:"slider,omitempty"`
	POS       []string `json:"pos,omitempty"`
	POSGroups []string `json:"pos_groups,omitempty"`
	Etymology []string `json:"etymology,omitempty"`

	posSet    bool
	groupsSet bool
	etymSet   bool
}

// parseQueryValues reads a query from URL parameters. A parameter that is
// present but empty (pos=) is an empty set, which lets nothing through;
// an absent parameter disables that filter.
func parseQueryValues(v url.Values) (queryParams, error) {
	var q queryParams
	q.Pair = v.Get("pair")
	if q.Pair == "" && v.Has("first") {
		q.Pair = v.Get("first") + ", " + v.Get("second")
	}
	if v.Has("min_freq") {
		f, err := strconv.ParseFloat(v.Get("min_freq"), 64)
		if err != nil {
			return q, fmt.Errorf("%w: min_freq %q is not a number", minpairs.ErrInvalidConfiguration, v.Get("min_freq"))
		}
		q.MinFreq = &f
	}
	if v.Has("slider") {
		f, err := strconv.ParseFloat(v.Get("slider"), 64)
		if err != nil {
			return q, fmt.Errorf("%w: slider %q is not a number", minpairs.ErrInvalidConfiguration, v.Get("slider"))
		}
		q.Slider = &f
	}
	if v.Has("pos") {
		q.POS, q.posSet = splitParam(v["pos"]), true
	}
	if v.Has("pos_groups") {
		q.POSGroups, q.groupsSet = splitParam(v["pos_groups"]), true
	}
	if v.Has("etymology") {
		q.Etymology, q.etymSet = splitParam(v["etymology"]), true
	}
	return q, nil
}

// splitParam flattens repeated and comma separated values. The result is
// never nil.
func splitParam(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// filterConfig resolves the threshold and the category sets. min_freq takes
// precedence over slider; with neither the configured default slider applies.
func (q queryParams) filterConfig(defaultSlider float64) (minpairs.FilterConfig, error) {
	var cfg minpairs.FilterConfig
	switch {
	case q.MinFreq != nil:
		cfg.MinFrequency = *q.MinFreq
	case q.Slider != nil:
		t, err := minpairs.ThresholdFromSlider(*q.Slider)
		if err != nil {
			return cfg, err
		}
		cfg.MinFrequency = t
	default:
		t, err := minpairs.ThresholdFromSlider(defaultSlider)
		if err != nil {
			return cfg, err
		}
		cfg.MinFrequency = t
	}

	switch {
	case q.posSet || q.POS != nil:
		cfg.PartsOfSpeech = make([]string, 0, len(q.POS))
		for _, p := range q.POS {
			cfg.PartsOfSpeech = append(cfg.PartsOfSpeech, strings.ToUpper(p))
		}
	case q.groupsSet || q.POSGroups != nil:
		enabled := make(map[string]bool, len(q.POSGroups))
		for _, name := range q.POSGroups {
			if !knownGroup(name) {
				return cfg, fmt.Errorf("%w: unknown part-of-speech group %q", minpairs.ErrInvalidConfiguration, name)
			}
			enabled[name] = true
		}
		cfg.PartsOfSpeech = minpairs.AllowedPOS(minpairs.DefaultPOSGroups, enabled)
	}

	if q.etymSet || q.Etymology != nil {
		cfg.Etymologies = make([]minpairs.Etymology, 0, len(q.Etymology))
		for _, raw := range q.Etymology {
			e, err := minpairs.ParseEtymology(raw)
			if err != nil {
				return cfg, fmt.Errorf("%w: %v", minpairs.ErrInvalidConfiguration, err)
			}
			cfg.Etymologies = append(cfg.Etymologies, e)
		}
	}
	return cfg, nil
}

func knownGroup(name string) bool {
	for _, g := range minpairs.DefaultPOSGroups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// errorKind maps a query error to the kind reported to clients.
func errorKind(err error) string {
	switch {
	case errors.Is(err, minpairs.ErrInvalidSpecification):
		return "invalid_specification"
	case errors.Is(err, minpairs.ErrInvalidConfiguration):
		return "invalid_configuration"
	default:
		return "internal"
	}
}
