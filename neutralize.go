package minpairs

import (
	"fmt"
	"strings"
)

// CollisionPolicy decides what a NeutralizationMap keeps when two records
// produce the same skeleton for a segment.
type CollisionPolicy int

const (
	// KeepAll keeps every colliding record in source order. The matcher
	// then pairs each of them with every record on the other side.
	KeepAll CollisionPolicy = iota
	// FirstWins keeps the first record in source order.
	FirstWins
	// LastWins keeps the last record in source order, silently replacing
	// earlier ones.
	LastWins
)

var policyNames = map[CollisionPolicy]string{
	KeepAll:   "keep-all",
	FirstWins: "first-wins",
	LastWins:  "last-wins",
}

func (p CollisionPolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("CollisionPolicy(%d)", int(p))
}

// ParseCollisionPolicy parses "keep-all", "first-wins" or "last-wins".
// The empty string is KeepAll.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KeepAll, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return KeepAll, fmt.Errorf("%w: unknown collision policy %q", ErrInvalidConfiguration, s)
}

// NeutralizationMap maps a skeleton to the records that produce it.
// Under FirstWins and LastWins each slice has exactly one element.
type NeutralizationMap map[string][]Record

// Skeleton returns the transcription with position i replaced by
// Placeholder, segments joined by single spaces.
func Skeleton(segs []string, i int) string {
	var b strings.Builder
	for j, s := range segs {
		if j > 0 {
			b.WriteByte(' ')
		}
		if j == i {
			b.WriteString(Placeholder)
		} else {
			b.WriteString(s)
		}
	}
	return b.String()
}

// Neutralize builds the skeleton map of segment over records. Every
// occurrence of segment in a transcription yields its own skeleton, so a
// record with the segment twice appears under two keys.
//
// Two records collide only when their transcriptions are identical, which
// Filter already rules out; the policy matters for callers that neutralize
// an undeduplicated record set.
func Neutralize(records []Record, segment string, policy CollisionPolicy) NeutralizationMap {
	m := make(NeutralizationMap)
	for _, r := range records {
		for i, s := range r.Transcription {
			if s != segment {
				continue
			}
			key := Skeleton(r.Transcription, i)
			have := m[key]
			switch {
			case len(have) == 0:
				m[key] = []Record{r}
			case policy == KeepAll:
				m[key] = append(have, r)
			case policy == LastWins:
				m[key] = []Record{r}
			}
		}
	}
	return m
}

