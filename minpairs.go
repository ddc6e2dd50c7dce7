// Package minpairs finds minimal pairs in a pronunciation lexicon: pairs of
// words whose transcriptions are identical except at one position, where
// one word has a given segment and the other word a second segment.
//
// A query filters the lexicon, neutralizes each target segment into
// skeletons (the transcription with one occurrence of the segment blanked
// out) and intersects the two skeleton maps.
package minpairs

import (
	"log/slog"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Finder runs minimal-pair queries against a Lexicon. A Finder is safe for
// concurrent use: the lexicon is read-only and every query works on its
// own data.
type Finder struct {
	lex    *Lexicon
	policy CollisionPolicy
	logger *slog.Logger

	// cache maps a query digest to its result. nil disables caching.
	cache  *lru.Cache[uint64, *Result]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Option configures a Finder.
type Option func(*Finder) error

// WithCollisionPolicy sets how skeleton collisions are resolved.
// The default is KeepAll.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(f *Finder) error {
		if _, ok := policyNames[p]; !ok {
			return ErrInvalidConfiguration
		}
		f.policy = p
		return nil
	}
}

// WithLogger sets the logger used for query tracing.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) error {
		if l != nil {
			f.logger = l
		}
		return nil
	}
}

// WithCache keeps the results of the last size distinct queries.
// A size of zero or less disables the cache.
func WithCache(size int) Option {
	return func(f *Finder) error {
		if size <= 0 {
			f.cache = nil
			return nil
		}
		c, err := lru.New[uint64, *Result](size)
		if err != nil {
			return err
		}
		f.cache = c
		return nil
	}
}

// New returns a Finder over lex.
func New(lex *Lexicon, opts ...Option) (*Finder, error) {
	f := &Finder{
		lex:    lex,
		policy: KeepAll,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Lexicon returns the lexicon the finder queries.
func (f *Finder) Lexicon() *Lexicon {
	return f.lex
}

// Policy returns the collision policy in use.
func (f *Finder) Policy() CollisionPolicy {
	return f.policy
}

// FindMinimalPairs parses rawPair and runs the query. An unresolved or
// degenerate selection returns ErrInvalidSpecification; a negative
// threshold returns ErrInvalidConfiguration. Zero pairs is a valid result.
func (f *Finder) FindMinimalPairs(rawPair string, cfg FilterConfig) (*Result, error) {
	spec, err := ParsePairSpec(rawPair)
	if err != nil {
		return nil, err
	}
	return f.Find(spec, cfg)
}

// Find runs the query for an already parsed spec.
func (f *Finder) Find(spec PairSpec, cfg FilterConfig) (*Result, error) {
	spec, err := NewPairSpec(spec.First, spec.Second)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var key uint64
	if f.cache != nil {
		key = queryKey(spec, cfg, f.policy)
		if res, ok := f.cache.Get(key); ok {
			f.hits.Add(1)
			return res.clone(), nil
		}
		f.misses.Add(1)
	}

	start := time.Now()
	candidates, err := Filter(f.lex.Records(), spec, cfg)
	if err != nil {
		return nil, err
	}
	first := Neutralize(candidates, spec.First, f.policy)
	second := Neutralize(candidates, spec.Second, f.policy)
	pairs := Match(first, second)

	res := &Result{Spec: spec, Pairs: pairs, Count: len(pairs)}
	f.logger.Debug("minimal pair query",
		slog.String("pair", spec.String()),
		slog.Float64("min_frequency", cfg.MinFrequency),
		slog.Int("candidates", len(candidates)),
		slog.Int("pairs", res.Count),
		slog.Duration("elapsed", time.Since(start)),
	)

	if f.cache != nil {
		f.cache.Add(key, res)
	}
	return res.clone(), nil
}

// CacheStats reports cache hits and misses since the finder was created.
func (f *Finder) CacheStats() (hits, misses uint64) {
	return f.hits.Load(), f.misses.Load()
}

// clone copies r down to the transcriptions, which otherwise alias the
// lexicon and the cached result.
func (r *Result) clone() *Result {
	c := *r
	c.Pairs = make([]Pair, len(r.Pairs))
	for i, p := range r.Pairs {
		p.First.Transcription = append([]string(nil), p.First.Transcription...)
		p.Second.Transcription = append([]string(nil), p.Second.Transcription...)
		c.Pairs[i] = p
	}
	return &c
}
