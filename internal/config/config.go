// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile string `json:"profile,omitempty"` // Path to profile JSON file
	Job     string `json:"job,omitempty"`     // Path to job posting text file
	JobURL  string `json:"job_url,omitempty"` // URL to fetch job posting from
	Output  string `json:"output,omitempty"`  // Path to write the generated document

	// Generation
	Style      string `json:"style,omitempty"`       // professional, minimal, detailed
	BioLength  string `json:"bio_length,omitempty"`  // short, medium, long
	BioContext string `json:"bio_context,omitempty"` // general, linkedin, conference, presentation

	// Scoring overrides (0 means use the built-in calibration)
	SkillWeight          float64 `json:"skill_weight,omitempty"`
	ResponsibilityWeight float64 `json:"responsibility_weight,omitempty"`
	RecencyWeight        float64 `json:"recency_weight,omitempty"`
	RecencyWindowYears   float64 `json:"recency_window_years,omitempty"`

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
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

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	for name, w := range map[string]float64{
		"skill_weight":          c.SkillWeight,
		"responsibility_weight": c.ResponsibilityWeight,
		"recency_weight":        c.RecencyWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be in [0, 1]", name)
		}
	}
	if c.RecencyWindowYears < 0 {
		return fmt.Errorf("config error: 'recency_window_years' must be non-negative")
	}

	switch c.Style {
	case "", "professional", "minimal", "detailed":
	default:
		return fmt.Errorf("config error: unknown style %q", c.Style)
	}
	switch c.BioLength {
	case "", "short", "medium", "long":
	default:
		return fmt.Errorf("config error: unknown bio_length %q", c.BioLength)
	}

	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}
	if result.BioLength == "" {
		result.BioLength = defaults.BioLength
	}
	if result.BioContext == "" {
		result.BioContext = defaults.BioContext
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.SkillWeight == 0 {
		result.SkillWeight = defaults.SkillWeight
	}
	if result.ResponsibilityWeight == 0 {
		result.ResponsibilityWeight = defaults.ResponsibilityWeight
	}
	if result.RecencyWeight == 0 {
		result.RecencyWeight = defaults.RecencyWeight
	}
	if result.RecencyWindowYears == 0 {
		result.RecencyWindowYears = defaults.RecencyWindowYears
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
