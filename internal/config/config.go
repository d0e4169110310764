// SPDX-License-Identifier: MIT

// Package config loads the TOML configuration of the exact CLI.
//
// A missing path falls back to the EXACT_CONFIG environment variable and then
// to built-in defaults; every field left empty in the file receives its
// default after decoding.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/exact/bignum"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "EXACT_CONFIG"

// Defaults applied by applyDefaults.
const (
	DefaultLogLevel      = "info"
	DefaultPrecision     = "1/10000"
	DefaultMaxIterations = 64
	DefaultDecimalDigits = 6
	DefaultHistoryFile   = "$HOME/.exact_history"
	DefaultPrompt        = "exact> "
)

// ErrInvalidConfig is returned for unreadable files, unknown keys or values
// outside their domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the complete CLI configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Fixed   FixedConfig   `toml:"fixed"`
	Output  OutputConfig  `toml:"output"`
	REPL    REPLConfig    `toml:"repl"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// FixedConfig drives the fixed-point approximations (sqrt, pow).
type FixedConfig struct {
	Precision     bignum.Number `toml:"precision"`
	MaxIterations int           `toml:"max_iterations"`
	Strict        bool          `toml:"strict"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DecimalDigits int  `toml:"decimal_digits"`
	Fractions     bool `toml:"fractions"`
}

// REPLConfig holds interactive-session settings.
type REPLConfig struct {
	HistoryFile string `toml:"history_file"`
	Prompt      string `toml:"prompt"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg
}

// Load reads the TOML file at path. An empty path consults EnvVar; when that
// is empty too, Default() is returned.
//
// Errors:
//   - ErrInvalidConfig wrapping the reason: missing file, TOML syntax,
//     unknown keys or failed validation.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value domains after defaults have been applied.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: general.log_level %q", ErrInvalidConfig, c.General.LogLevel)
	}
	if c.Fixed.Precision.Sign() <= 0 {
		return fmt.Errorf("%w: fixed.precision must be positive, got %s", ErrInvalidConfig, c.Fixed.Precision)
	}
	if c.Fixed.MaxIterations < 0 {
		return fmt.Errorf("%w: fixed.max_iterations %d", ErrInvalidConfig, c.Fixed.MaxIterations)
	}
	if c.Output.DecimalDigits < 0 {
		return fmt.Errorf("%w: output.decimal_digits %d", ErrInvalidConfig, c.Output.DecimalDigits)
	}

	return nil
}

// applyDefaults sets default values for missing configuration.
// A negative precision is left for Validate to reject.
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = DefaultLogLevel
	}
	c.General.LogLevel = strings.ToLower(c.General.LogLevel)

	if c.Fixed.Precision.IsZero() {
		c.Fixed.Precision = bignum.MustParseNumber(DefaultPrecision)
	}
	if c.Fixed.MaxIterations == 0 {
		c.Fixed.MaxIterations = DefaultMaxIterations
	}

	if c.Output.DecimalDigits == 0 {
		c.Output.DecimalDigits = DefaultDecimalDigits
	}

	if c.REPL.HistoryFile == "" {
		c.REPL.HistoryFile = DefaultHistoryFile
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = DefaultPrompt
	}
}

func (c *Config) expandEnvVars() {
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}
