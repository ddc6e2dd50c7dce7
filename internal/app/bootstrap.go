package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cours-de-latin/minpairs"
	"github.com/cours-de-latin/minpairs/internal/config"
)

// LoadLexicon reads the lexicon in the configured format.
func LoadLexicon(ctx context.Context, cfg config.LexiconConfig, logger *slog.Logger) (*minpairs.Lexicon, error) {
	switch cfg.Format {
	case "csv":
		return minpairs.LoadCSV(cfg.Path, logger)
	case "sqlite":
		return minpairs.LoadSQLite(ctx, cfg.Path, cfg.Table, logger)
	default:
		return nil, fmt.Errorf("%w: unsupported lexicon format %q", minpairs.ErrInvalidConfiguration, cfg.Format)
	}
}

// LoadCharts reads the configured segment charts. Unset charts are skipped.
func LoadCharts(cfg config.LexiconConfig) ([]*minpairs.Chart, error) {
	var charts []*minpairs.Chart
	for _, c := range []struct{ name, path string }{
		{"consonants", cfg.ConsonantChart},
		{"vowels", cfg.VowelChart},
	} {
		if c.path == "" {
			continue
		}
		chart, err := minpairs.LoadChart(c.path, c.name)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)
	}
	return charts, nil
}

// NewFinder builds a finder over lex with the configured collision policy
// and cache.
func NewFinder(lex *minpairs.Lexicon, cfg config.QueryConfig, logger *slog.Logger) (*minpairs.Finder, error) {
	return minpairs.New(lex,
		minpairs.WithCollisionPolicy(cfg.CollisionPolicy),
		minpairs.WithCache(cfg.CacheSize),
		minpairs.WithLogger(logger),
	)
}
