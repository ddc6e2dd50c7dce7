package config

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/minpairs"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}
	if err := c.Query.validate(); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (l *LexiconConfig) validate() error {
	if strings.TrimSpace(l.Path) == "" {
		return fmt.Errorf("path is required")
	}
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "csv":
	case "sqlite":
		if l.Table == "" {
			return fmt.Errorf("table is required for the sqlite format")
		}
	default:
		return fmt.Errorf("format must be csv or sqlite (got %q)", l.Format)
	}
	return nil
}

func (q *QueryConfig) validate() error {
	p, err := minpairs.ParseCollisionPolicy(q.CollisionPolicyRaw)
	if err != nil {
		return err
	}
	q.CollisionPolicy = p

	if q.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", q.CacheSize)
	}
	if q.BatchWorkers < 0 {
		return fmt.Errorf("batch_workers must be >= 0 (got %d)", q.BatchWorkers)
	}
	if q.MaxBatch <= 0 {
		return fmt.Errorf("max_batch must be > 0 (got %d)", q.MaxBatch)
	}
	if _, err := minpairs.ThresholdFromSlider(q.DefaultSlider); err != nil {
		return fmt.Errorf("default_slider: %w", err)
	}
	if q.CorpusTokens <= 0 {
		return fmt.Errorf("corpus_tokens must be > 0 (got %d)", q.CorpusTokens)
	}
	return nil
}
