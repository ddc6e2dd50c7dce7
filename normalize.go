package minpairs

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Placeholder marks the neutralized position in a skeleton. It may not
// appear as a segment in any transcription or pair spec.
const Placeholder = "#"

// NormalizeSegment returns the canonical form of a segment symbol:
// surrounding space trimmed and Unicode NFC composition applied, so that
// a precomposed and a decomposed spelling of the same IPA symbol compare
// equal.
func NormalizeSegment(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// ParseTranscription splits a whitespace-delimited transcription into
// normalized segments.
func ParseTranscription(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if seg := NormalizeSegment(f); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// transcriptionKey is the dedup/identity key of a transcription.
func transcriptionKey(segs []string) string {
	return strings.Join(segs, " ")
}
