package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cours-de-latin/minpairs"
	"github.com/cours-de-latin/minpairs/internal/app"
	"github.com/cours-de-latin/minpairs/internal/config"
)

// commandContext carries the persistent flags and lazily loads the
// configuration and lexicon shared by the subcommands.
type commandContext struct {
	configPath string
	lexicon    string
	format     string
	table      string
	policy     string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
	finder *minpairs.Finder
}

// ensureConfig loads the configuration once and applies flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.LoadPath(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.lexicon != "" {
		cfg.Lexicon.Path = c.lexicon
	}
	if c.format != "" {
		cfg.Lexicon.Format = c.format
	}
	if c.table != "" {
		cfg.Lexicon.Table = c.table
	}
	if c.policy != "" {
		cfg.Query.CollisionPolicyRaw = c.policy
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c.cfg = cfg
	c.logger = app.NewLogger(cfg.Log)
	return cfg, nil
}

// ensureFinder loads the lexicon and builds the finder once.
func (c *commandContext) ensureFinder(ctx context.Context) (*minpairs.Finder, error) {
	if c.finder != nil {
		return c.finder, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	lex, err := app.LoadLexicon(ctx, cfg.Lexicon, c.logger)
	if err != nil {
		return nil, err
	}
	f, err := app.NewFinder(lex, cfg.Query, c.logger)
	if err != nil {
		return nil, err
	}
	c.finder = f
	return f, nil
}

// parsePairArgs accepts either one argument ("p, k") or two ("p" "k").
func parsePairArgs(args []string) (minpairs.PairSpec, error) {
	switch len(args) {
	case 1:
		return minpairs.ParsePairSpec(args[0])
	case 2:
		return minpairs.NewPairSpec(args[0], args[1])
	default:
		return minpairs.PairSpec{}, fmt.Errorf("%w: expected \"a, b\" or two segments, got %q",
			minpairs.ErrInvalidSpecification, strings.Join(args, " "))
	}
}
