// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Root          string   `json:"root,omitempty"`                                           // Site root directory
	IgnoreDirs    []string `json:"ignore_dirs,omitempty" validate:"omitempty,dive,required"` // Directory names skipped during discovery
	RevertDir     string   `json:"revert_dir,omitempty" validate:"omitempty,excludes=.."`    // Directory below root stripped by lightbox-revert
	ContextIssues int      `json:"context_issues,omitempty" validate:"gte=0,lte=100"`        // Issues shown with context snippets
	Verbose       bool     `json:"verbose,omitempty"`                                        // Print debug logs to stderr
}

var validate = validator.New()

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
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if filepath.IsAbs(c.RevertDir) {
		return fmt.Errorf("config error: 'revert_dir' must be relative to the site root")
	}

	if c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config error: site root not found: %s", c.Root)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Root == "" {
		result.Root = defaults.Root
	}
	if len(result.IgnoreDirs) == 0 {
		result.IgnoreDirs = defaults.IgnoreDirs
	}
	if result.RevertDir == "" {
		result.RevertDir = defaults.RevertDir
	}
	if result.ContextIssues == 0 {
		result.ContextIssues = defaults.ContextIssues
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from SITE_TOOLS_* environment variables.
// Call after godotenv.Load so values from .env are visible.
func (c *Config) ApplyEnv() {
	if root := os.Getenv("SITE_TOOLS_ROOT"); root != "" {
		c.Root = root
	}
	if dirs := os.Getenv("SITE_TOOLS_IGNORE_DIRS"); dirs != "" {
		c.IgnoreDirs = nil
		for _, d := range strings.Split(dirs, ",") {
			if d = strings.TrimSpace(d); d != "" {
				c.IgnoreDirs = append(c.IgnoreDirs, d)
			}
		}
	}
	switch strings.ToLower(os.Getenv("SITE_TOOLS_VERBOSE")) {
	case "1", "true", "yes":
		c.Verbose = true
	}
}
