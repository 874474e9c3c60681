// Package config provides configuration loading and validation for the
// analyzer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the analyzer configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	Port       int    `json:"port,omitempty"`        // HTTP server port
	SkillsData string `json:"skills_data,omitempty"` // Path to the skills catalog JSON file
	RolesData  string `json:"roles_data,omitempty"`  // Path to the job roles catalog JSON file
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// zero values, which merge away against defaults.
func FromEnv() Config {
	cfg := Config{
		SkillsData: os.Getenv("SKILLS_DATA_PATH"),
		RolesData:  os.Getenv("JOB_ROLES_PATH"),
	}
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values. Catalog paths are
// not required to exist; a missing catalog file falls back to built-in
// defaults at load time.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to layer CLI flags over environment variables over
// the config file.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SkillsData == "" {
		result.SkillsData = defaults.SkillsData
	}
	if result.RolesData == "" {
		result.RolesData = defaults.RolesData
	}

	return result
}
