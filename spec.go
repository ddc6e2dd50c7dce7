package minpairs

import (
	"fmt"
	"strings"
	"unicode"
)

// ParsePairSpec resolves a raw pair selection such as "p, k" or "(p, k)"
// into a PairSpec. Unresolved selections (a single segment, or the
// "(You haven't selected a pair)" prompt), empty segments, identical
// segments and the placeholder symbol are rejected with
// ErrInvalidSpecification.
func ParsePairSpec(raw string) (PairSpec, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if strings.ContainsAny(s, "()") {
		return PairSpec{}, fmt.Errorf("%w: %q is not a resolved selection", ErrInvalidSpecification, raw)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return PairSpec{}, fmt.Errorf("%w: %q: want exactly two segments, got %d", ErrInvalidSpecification, raw, len(parts))
	}
	segs := make([]string, 2)
	for i, p := range parts {
		seg := NormalizeSegment(p)
		if err := checkSegment(seg); err != nil {
			return PairSpec{}, fmt.Errorf("%w: %q: segment %d %v", ErrInvalidSpecification, raw, i+1, err)
		}
		segs[i] = seg
	}
	return NewPairSpec(segs[0], segs[1])
}

// NewPairSpec builds a spec from two already separated segments.
func NewPairSpec(first, second string) (PairSpec, error) {
	first, second = NormalizeSegment(first), NormalizeSegment(second)
	for i, seg := range []string{first, second} {
		if err := checkSegment(seg); err != nil {
			return PairSpec{}, fmt.Errorf("%w: segment %d %v", ErrInvalidSpecification, i+1, err)
		}
	}
	if first == second {
		return PairSpec{}, fmt.Errorf("%w: segments must differ, both are %q", ErrInvalidSpecification, first)
	}
	return PairSpec{First: first, Second: second}, nil
}

func checkSegment(seg string) error {
	switch {
	case seg == "":
		return fmt.Errorf("is empty")
	case seg == Placeholder:
		return fmt.Errorf("is the reserved symbol %q", Placeholder)
	case strings.IndexFunc(seg, unicode.IsSpace) >= 0:
		return fmt.Errorf("%q contains whitespace", seg)
	}
	return nil
}
