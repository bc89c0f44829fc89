// Package config holds the engine configuration supplied by the hosting
// presentation layer, plus zerolog logger construction.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/vetsforclimate/sefcarbon/pkg/calc"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvRegion              = "SEFCARBON_REGION"
	EnvFTE                 = "SEFCARBON_FTE"
	EnvIncludeAnaesthetics = "SEFCARBON_INCLUDE_ANAESTHETICS"
	EnvLogLevel            = "SEFCARBON_LOG_LEVEL"
)

// LoggingConfig controls engine log output.
type LoggingConfig struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string `yaml:"level"`
}

// Config carries the defaults the presentation layer seeds its form with
// and the settings the engine itself consumes.
type Config struct {
	// Region is the default state/territory code.
	Region string `yaml:"region"`

	// FTE is the default full-time-equivalent headcount.
	FTE float64 `yaml:"fte"`

	// IncludeAnaesthetics is the default for the anaesthetic-gas toggle.
	IncludeAnaesthetics bool `yaml:"include_anaesthetics"`

	// FactorsFile names the factor table to load in place of the bundled
	// dataset. Empty means use the bundled NGA factors.
	FactorsFile string `yaml:"factors_file"`

	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig mirrors the defaults of the original calculator form.
func DefaultConfig() Config {
	return Config{
		Region:              "NSW",
		FTE:                 10.0,
		IncludeAnaesthetics: false,
		Logging:             LoggingConfig{Level: "info"},
	}
}

// Parse decodes a YAML config document over DefaultConfig, so absent keys
// keep their defaults, then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the engine would reject later.
func (c Config) Validate() error {
	if !calc.ValidRegion(c.Region) {
		return fmt.Errorf("config region %q: must be one of %v", c.Region, calc.Regions)
	}
	if c.FTE < 0 {
		return fmt.Errorf("config fte must be nonnegative, got %v", c.FTE)
	}
	return nil
}

// ApplyEnv overlays SEFCARBON_* environment variables onto the config.
// Invalid values log a warning and keep the prior setting rather than
// failing startup.
func (c Config) ApplyEnv(logger zerolog.Logger) Config {
	if region := os.Getenv(EnvRegion); region != "" {
		if calc.ValidRegion(region) {
			c.Region = region
		} else {
			logger.Warn().Str("value", region).Msgf("invalid %s, keeping %q", EnvRegion, c.Region)
		}
	}

	if fteStr := os.Getenv(EnvFTE); fteStr != "" {
		if fte, err := strconv.ParseFloat(fteStr, 64); err == nil && fte >= 0 {
			c.FTE = fte
		} else {
			logger.Warn().Str("value", fteStr).Msgf("invalid %s, keeping %v", EnvFTE, c.FTE)
		}
	}

	if inc := os.Getenv(EnvIncludeAnaesthetics); inc != "" {
		switch strings.ToLower(inc) {
		case "true", "1", "yes":
			c.IncludeAnaesthetics = true
		case "false", "0", "no":
			c.IncludeAnaesthetics = false
		default:
			logger.Warn().Str("value", inc).Msgf("invalid %s, keeping %v", EnvIncludeAnaesthetics, c.IncludeAnaesthetics)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}

	return c
}

// Options returns the calculation options this config selects.
func (c Config) Options() calc.Options {
	return calc.Options{IncludeAnaesthetics: c.IncludeAnaesthetics}
}
