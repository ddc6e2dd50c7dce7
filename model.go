package minpairs

import (
	"fmt"
	"strings"
)

// Etymology is the historical origin class of a word.
type Etymology string

const (
	EtymologyNative  Etymology = "native"
	EtymologySino    Etymology = "sino"
	EtymologyForeign Etymology = "foreign"
	EtymologyUnknown Etymology = "unknown"
)

// Etymologies lists every etymology class in display order.
var Etymologies = []Etymology{EtymologyNative, EtymologySino, EtymologyForeign, EtymologyUnknown}

// etymologyAliases maps source-table codes to an etymology class.
// The Korean labels are the ones used by the Standard Korean Dictionary dump.
var etymologyAliases = map[string]Etymology{
	"native":  EtymologyNative,
	"고유어":     EtymologyNative,
	"sino":    EtymologySino,
	"한자어":     EtymologySino,
	"foreign": EtymologyForeign,
	"외래어":     EtymologyForeign,
	"unknown": EtymologyUnknown,
	"":        EtymologyUnknown,
}

// ParseEtymology maps a source code to an etymology class.
// Absent codes are unknown; unrecognised codes are an error.
func ParseEtymology(s string) (Etymology, error) {
	e, ok := etymologyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return EtymologyUnknown, fmt.Errorf("unknown etymology code %q", s)
	}
	return e, nil
}

// Record is one lexicon entry. Records are created once at load time and
// never mutated afterwards.
type Record struct {
	// ID is the 0-based position of the record in the source table.
	ID int
	// Orthography is the written form (e.g. a Hangul word).
	Orthography string
	// Transcription is the phonemic form as a sequence of segments.
	// Some segments are written with more than one character.
	Transcription []string
	// Frequency is the absolute frequency in the reference corpus.
	Frequency float64
	// POS is the part-of-speech tag (e.g. NNG, MAG, IC).
	POS string
	// Etymology is the origin class of the word.
	Etymology Etymology
}

// IPA returns the transcription as space-separated segments.
func (r Record) IPA() string {
	return strings.Join(r.Transcription, " ")
}

// HasSegment reports whether seg occurs as a whole token in the transcription.
func (r Record) HasSegment(seg string) bool {
	for _, s := range r.Transcription {
		if s == seg {
			return true
		}
	}
	return false
}

// PairSpec holds the two segments to contrast.
type PairSpec struct {
	First  string
	Second string
}

// String renders the pair the way it is typed in, e.g. "p, k".
func (p PairSpec) String() string {
	return p.First + ", " + p.Second
}

// Swap returns the pair with its segments exchanged.
func (p PairSpec) Swap() PairSpec {
	return PairSpec{First: p.Second, Second: p.First}
}

// FilterConfig narrows the lexicon before matching.
type FilterConfig struct {
	// MinFrequency is an inclusive lower bound on Record.Frequency.
	MinFrequency float64
	// PartsOfSpeech lists the allowed POS tags. nil disables the filter;
	// an empty non-nil slice lets nothing through.
	PartsOfSpeech []string
	// Etymologies lists the allowed etymology classes. nil disables the
	// filter; an empty non-nil slice lets nothing through.
	Etymologies []Etymology
}

// Pair is one minimal pair: First carries PairSpec.First at the
// position blanked in Skeleton, Second carries the second segment.
type Pair struct {
	Skeleton string
	First    Record
	Second   Record
}

// Result is the outcome of one query.
type Result struct {
	Spec  PairSpec
	Pairs []Pair
	Count int
}

// Summary returns the one-line status shown above a result table.
func (r *Result) Summary() string {
	if r.Count == 0 {
		return fmt.Sprintf("No minimal pairs by [%s] and [%s]. Please try different parameter settings.",
			r.Spec.First, r.Spec.Second)
	}
	return fmt.Sprintf("Minimal pairs by [%s] and [%s] (N = %d)", r.Spec.First, r.Spec.Second, r.Count)
}
