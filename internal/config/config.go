// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Lookup table overrides; empty means the embedded tables are used
	SkillsFile     string `json:"skills_file,omitempty"`     // Path to a skill vocabulary JSON file
	BenchmarksFile string `json:"benchmarks_file,omitempty"` // Path to a salary benchmark JSON file

	// Behavior
	DigestConcurrency int  `json:"digest_concurrency,omitempty"` // Parallel digest generation for scheduled runs
	Verbose           bool `json:"verbose,omitempty"`            // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.DigestConcurrency < 0 {
		return fmt.Errorf("config error: 'digest_concurrency' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsFile)
		}
	}
	if c.BenchmarksFile != "" {
		if _, err := os.Stat(c.BenchmarksFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: benchmarks file not found: %s", c.BenchmarksFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SkillsFile == "" {
		result.SkillsFile = defaults.SkillsFile
	}
	if result.BenchmarksFile == "" {
		result.BenchmarksFile = defaults.BenchmarksFile
	}
	if result.DigestConcurrency == 0 {
		result.DigestConcurrency = defaults.DigestConcurrency
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
