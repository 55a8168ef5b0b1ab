package debug

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls how a Printer renders its output.
type Config struct {
	// LoudText is printed before every line so debug output is easy to filter.
	LoudText string `env:"LPRINT_LOUD_TEXT" envDefault:"===>"`
	Disabled bool   `env:"LPRINT_DISABLED"  envDefault:"false"`
	// NilText replaces nil values.
	NilText string `env:"LPRINT_NIL_TEXT"  envDefault:"nil"`
}

// DefaultConfig returns the configuration used when no environment is consulted.
func DefaultConfig() Config {
	return Config{LoudText: "===>", NilText: "nil"}
}

// LoadConfig parses the LPRINT_* environment variables into a [Config].
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("debug: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}
