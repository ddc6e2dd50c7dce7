package minpairs

import "errors"

// Sentinel errors. Callers match them with errors.Is; the concrete error
// carries the offending value.
var (
	// ErrInvalidSpecification is returned when a pair spec does not resolve
	// to two distinct, non-empty segments.
	ErrInvalidSpecification = errors.New("invalid pair specification")
	// ErrInvalidConfiguration is returned for a negative frequency threshold
	// or an unknown collision policy.
	ErrInvalidConfiguration = errors.New("invalid filter configuration")
	// ErrLexiconLoad is returned when the lexicon source is unreadable or
	// lacks a required column.
	ErrLexiconLoad = errors.New("lexicon load failed")
)
