// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when neither the config file nor CLI flags provide a value.
const (
	DefaultDatabasePath = "resume_ranker.db"
	DefaultPort         = 8080
	DefaultRole         = "Software Engineer"
)

// DefaultRoles returns the built-in selectable job role labels.
// Roles are matched as opaque strings; a label added here creates a new
// ranking bucket and nothing else.
func DefaultRoles() []string {
	return []string{
		"Software Engineer",
		"Intern (Software Engineer)",
	}
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	APIKey       string   `json:"api_key,omitempty"`       // Gemini API key
	DatabasePath string   `json:"database_path,omitempty"` // Path to the SQLite database file
	Port         int      `json:"port,omitempty"`          // HTTP server port
	DefaultRole  string   `json:"default_role,omitempty"`  // Role pre-selected in the UI
	Roles        []string `json:"roles,omitempty"`         // Selectable job role labels
	Verbose      bool     `json:"verbose,omitempty"`       // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for _, role := range c.Roles {
		if role == "" {
			return fmt.Errorf("config error: 'roles' must not contain empty labels")
		}
	}

	if c.DefaultRole != "" && len(c.Roles) > 0 {
		found := false
		for _, role := range c.Roles {
			if role == c.DefaultRole {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("config error: 'default_role' %q is not in 'roles'", c.DefaultRole)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabasePath == "" {
		result.DatabasePath = defaults.DatabasePath
	}
	if result.DefaultRole == "" {
		result.DefaultRole = defaults.DefaultRole
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if len(result.Roles) == 0 {
		result.Roles = defaults.Roles
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
