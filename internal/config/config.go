// Package config provides configuration loading and validation for the
// matching engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for tunable matching parameters.
const (
	DefaultSkillsThreshold           = 0.70
	DefaultResponsibilitiesThreshold = 0.65
	DefaultTopAlternatives           = 3
	DefaultMaxConcurrent             = 8
)

// Config holds the tunable parameters of the matching engine. All fields are
// optional in the JSON file; missing values keep their defaults.
type Config struct {
	// Thresholds
	SkillsThreshold           float64 `json:"skills_threshold,omitempty"`           // Minimum assignment score for a skills match (0.0-1.0)
	ResponsibilitiesThreshold float64 `json:"responsibilities_threshold,omitempty"` // Minimum assignment score for a responsibilities match (0.0-1.0)

	// Explainability
	TopAlternatives int `json:"top_alternatives,omitempty"` // Near-miss CV items reported per JD item

	// Concurrency
	MaxConcurrent int `json:"max_concurrent,omitempty"` // Upper bound on concurrently scored candidates

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console encoding
	Debug   bool `json:"debug,omitempty"`    // Enable debug-level logging
}

// Default returns a Config populated with the documented defaults.
func Default() Config {
	return Config{
		SkillsThreshold:           DefaultSkillsThreshold,
		ResponsibilitiesThreshold: DefaultResponsibilitiesThreshold,
		TopAlternatives:           DefaultTopAlternatives,
		MaxConcurrent:             DefaultMaxConcurrent,
	}
}

// Load loads configuration from a JSON file on top of the defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overlays MATCHCORE_* environment variables onto the config. A
// .env file in the working directory is loaded first when present; a missing
// file is not an error.
func (c *Config) ApplyEnv() error {
	// Ignore the error: godotenv fails when no .env file exists, which is
	// the common case for library consumers.
	_ = godotenv.Load()

	if v := os.Getenv("MATCHCORE_SKILLS_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid MATCHCORE_SKILLS_THRESHOLD %q: %w", v, err)
		}
		c.SkillsThreshold = f
	}
	if v := os.Getenv("MATCHCORE_RESPONSIBILITIES_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid MATCHCORE_RESPONSIBILITIES_THRESHOLD %q: %w", v, err)
		}
		c.ResponsibilitiesThreshold = f
	}
	if v := os.Getenv("MATCHCORE_TOP_ALTERNATIVES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MATCHCORE_TOP_ALTERNATIVES %q: %w", v, err)
		}
		c.TopAlternatives = n
	}
	if v := os.Getenv("MATCHCORE_MAX_CONCURRENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MATCHCORE_MAX_CONCURRENT %q: %w", v, err)
		}
		c.MaxConcurrent = n
	}

	return c.Validate()
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.SkillsThreshold < 0 || c.SkillsThreshold > 1 {
		return fmt.Errorf("config error: 'skills_threshold' must be between 0 and 1")
	}
	if c.ResponsibilitiesThreshold < 0 || c.ResponsibilitiesThreshold > 1 {
		return fmt.Errorf("config error: 'responsibilities_threshold' must be between 0 and 1")
	}
	if c.TopAlternatives < 0 {
		return fmt.Errorf("config error: 'top_alternatives' must be non-negative")
	}
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("config error: 'max_concurrent' must be non-negative")
	}
	return nil
}
