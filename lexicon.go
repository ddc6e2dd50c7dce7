package minpairs

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Lexicon is the read-only record table. It is built once and may be
// shared by any number of concurrent queries without locking.
type Lexicon struct {
	records []Record
}

// NewLexicon validates records and returns a Lexicon holding copies of
// them. Segments are NFC-normalized and POS tags upper-cased, the same as
// the file loaders do. IDs are reassigned to source order.
func NewLexicon(records []Record) (*Lexicon, error) {
	lex := &Lexicon{records: make([]Record, 0, len(records))}
	for i, r := range records {
		r.Transcription = normalizeTranscription(r.Transcription)
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", ErrLexiconLoad, i, r.Orthography, err)
		}
		r.ID = len(lex.records)
		r.POS = strings.ToUpper(r.POS)
		lex.records = append(lex.records, r)
	}
	return lex, nil
}

func normalizeTranscription(segs []string) []string {
	out := make([]string, len(segs))
	for i, seg := range segs {
		out[i] = NormalizeSegment(seg)
	}
	return out
}

func validateRecord(r Record) error {
	if len(r.Transcription) == 0 {
		return fmt.Errorf("empty transcription")
	}
	for i, seg := range r.Transcription {
		if err := checkSegment(seg); err != nil {
			return fmt.Errorf("segment %d %v", i+1, err)
		}
	}
	if r.Frequency < 0 || math.IsNaN(r.Frequency) {
		return fmt.Errorf("invalid frequency %v", r.Frequency)
	}
	return nil
}

// Len returns the number of records.
func (l *Lexicon) Len() int {
	return len(l.records)
}

// Records returns the records in source order. The slice is shared;
// callers must not modify it.
func (l *Lexicon) Records() []Record {
	return l.records
}

// Record returns the record with the given ID.
func (l *Lexicon) Record(id int) (Record, bool) {
	if id < 0 || id >= len(l.records) {
		return Record{}, false
	}
	return l.records[id], true
}

// SegmentCount is one entry of the lexicon's segment inventory.
type SegmentCount struct {
	Segment string `json:"segment"`
	// Records is the number of records containing the segment at least once.
	Records int `json:"records"`
	// Occurrences counts every position.
	Occurrences int `json:"occurrences"`
}

// Segments returns every segment used in the lexicon, most frequent first
// and then by symbol.
func (l *Lexicon) Segments() []SegmentCount {
	idx := make(map[string]*SegmentCount)
	for _, r := range l.records {
		seen := make(map[string]bool, len(r.Transcription))
		for _, seg := range r.Transcription {
			c, ok := idx[seg]
			if !ok {
				c = &SegmentCount{Segment: seg}
				idx[seg] = c
			}
			c.Occurrences++
			if !seen[seg] {
				seen[seg] = true
				c.Records++
			}
		}
	}
	out := make([]SegmentCount, 0, len(idx))
	for _, c := range idx {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Records != out[j].Records {
			return out[i].Records > out[j].Records
		}
		return out[i].Segment < out[j].Segment
	})
	return out
}
