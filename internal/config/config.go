package config

import (
	"time"

	"github.com/cours-de-latin/minpairs"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Query   QueryConfig   `yaml:"query"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LexiconConfig locates the lexicon source and the segment charts.
type LexiconConfig struct {
	Path   string `yaml:"path"   env:"LEXICON_PATH"   env-default:"assets/kor_raw.csv"`
	Format string `yaml:"format" env:"LEXICON_FORMAT" env-default:"csv"`
	// Table is only used by the sqlite format.
	Table          string `yaml:"table"           env:"LEXICON_TABLE"           env-default:"lexicon"`
	ConsonantChart string `yaml:"consonant_chart" env:"LEXICON_CONSONANT_CHART"`
	VowelChart     string `yaml:"vowel_chart"     env:"LEXICON_VOWEL_CHART"`
}

// QueryConfig holds minimal-pair query settings.
type QueryConfig struct {
	CollisionPolicyRaw string  `yaml:"collision_policy" env:"QUERY_COLLISION_POLICY" env-default:"keep-all"`
	CacheSize          int     `yaml:"cache_size"       env:"QUERY_CACHE_SIZE"       env-default:"256"`
	BatchWorkers       int     `yaml:"batch_workers"    env:"QUERY_BATCH_WORKERS"    env-default:"0"`
	MaxBatch           int     `yaml:"max_batch"        env:"QUERY_MAX_BATCH"        env-default:"64"`
	DefaultSlider      float64 `yaml:"default_slider"   env:"QUERY_DEFAULT_SLIDER"   env-default:"2"`
	CorpusTokens       int     `yaml:"corpus_tokens"    env:"QUERY_CORPUS_TOKENS"    env-default:"16568543"`

	// CollisionPolicy is parsed from CollisionPolicyRaw during validation.
	CollisionPolicy minpairs.CollisionPolicy `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}
