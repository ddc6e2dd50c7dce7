package minpairs

import "strings"

// Unselected is the raw selection text before any segment is chosen.
const Unselected = "(You haven't selected a pair)"

// Selection tracks a user picking segments one at a time from a chart.
// It holds at most two segments; picking a third drops the oldest.
// The zero value is an empty selection.
type Selection struct {
	segs []string
}

// Add selects seg. Re-selecting a segment that is already chosen is a
// no-op.
func (s *Selection) Add(seg string) {
	seg = NormalizeSegment(seg)
	if seg == "" {
		return
	}
	for _, have := range s.segs {
		if have == seg {
			return
		}
	}
	if len(s.segs) == 2 {
		s.segs = []string{s.segs[1], seg}
		return
	}
	s.segs = append(s.segs, seg)
}

// Undo drops the most recent segment.
func (s *Selection) Undo() {
	if len(s.segs) > 0 {
		s.segs = s.segs[:len(s.segs)-1]
	}
}

// Reset clears the selection, e.g. when switching between the consonant
// and vowel charts.
func (s *Selection) Reset() {
	s.segs = nil
}

// Segments returns the selected segments in selection order.
func (s *Selection) Segments() []string {
	return append([]string(nil), s.segs...)
}

// Complete reports whether two segments are selected.
func (s *Selection) Complete() bool {
	return len(s.segs) == 2
}

// String renders the selection as a raw spec accepted by ParsePairSpec
// once complete.
func (s *Selection) String() string {
	if len(s.segs) == 0 {
		return Unselected
	}
	return strings.Join(s.segs, ", ")
}

// Spec returns the selected pair, or ErrInvalidSpecification while the
// selection is incomplete.
func (s *Selection) Spec() (PairSpec, error) {
	return ParsePairSpec(s.String())
}
