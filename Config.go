package rlink

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/rohanthewiz/serr"

	"github.com/rohanthewiz/rlink/consts"
	"github.com/rohanthewiz/rlink/internal/logging"
)

// Config carries the settings a Navigator is built from.
// Values are names so they can come from the environment, a manifest
// or command line flags alike.
type Config struct {
	StackParam   string `env:"RLINK_STACK_PARAM" envDefault:"stack"`
	Strategy     string `env:"RLINK_STRATEGY" envDefault:"sequential"`
	ConflictMode string `env:"RLINK_CONFLICT_MODE" envDefault:"first_match"`
	LogLevel     string `env:"RLINK_LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		StackParam:   consts.StackParam,
		Strategy:     consts.StrategySequential,
		ConflictMode: consts.ConflictFirstMatch,
		LogLevel:     "info",
	}
}

// ConfigFromEnv reads the RLINK_* environment variables over the defaults
// and validates the result.
func ConfigFromEnv() (Config, error) {
	cfg, err := EnvConfig()
	if err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// EnvConfig reads the RLINK_* environment variables over the defaults
// without validating them. Callers layering further settings on top
// validate once, after the last layer.
func EnvConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), serr.Wrap(err, "reading RLINK_* environment")
	}
	return cfg, nil
}

// Validate checks that the named strategy, conflict mode and log level exist.
func (c Config) Validate() error {
	if _, ok := logging.LookupLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	if _, ok := ParseStrategy(c.Strategy); !ok {
		return fmt.Errorf("unknown strategy %q (want %s or %s)", c.Strategy, consts.StrategySequential, consts.StrategyBatch)
	}
	if _, ok := ParseConflictMode(c.ConflictMode); !ok {
		return fmt.Errorf("unknown conflict mode %q (want %s, %s or %s)", c.ConflictMode,
			consts.ConflictFirstMatch, consts.ConflictPreferStatic, consts.ConflictStrict)
	}
	return nil
}

// StrategyValue returns the parsed strategy, sequential when unknown.
func (c Config) StrategyValue() Strategy {
	s, _ := ParseStrategy(c.Strategy)
	return s
}

// ConflictModeValue returns the parsed conflict mode, first_match when unknown.
func (c Config) ConflictModeValue() ConflictMode {
	m, ok := ParseConflictMode(c.ConflictMode)
	if !ok {
		return ConflictFirstMatch
	}
	return m
}
