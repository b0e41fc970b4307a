// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults, environment
// variables, or CLI flags.
type Config struct {
	// API credentials
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // LLM extraction
	SerpAPIKey   string `json:"serp_api_key,omitempty"`   // Google search
	ApifyToken   string `json:"apify_token,omitempty"`    // Profile scraping
	ApifyActorID string `json:"apify_actor_id,omitempty"` // Scraper actor override

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Session cache, optional

	// Server
	Port string `json:"port,omitempty"`

	// Behavior
	ResultsPerPage int  `json:"results_per_page,omitempty"` // Search page size
	FreshnessDays  int  `json:"freshness_days,omitempty"`   // Profile cache window
	UseBrowser     bool `json:"use_browser,omitempty"`      // Headless browser for direct scraping
	Verbose        bool `json:"verbose,omitempty"`          // Print detailed debug information
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

// FromEnv builds a Config from environment variables. Used as the defaults
// layer underneath config files and CLI flags.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SerpAPIKey:   os.Getenv("SERP_API_KEY"),
		ApifyToken:   os.Getenv("APIFY_API_TOKEN"),
		ApifyActorID: os.Getenv("APIFY_ACTOR_ID"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		Port:         os.Getenv("PORT"),
	}
	if v := os.Getenv("RESULTS_PER_PAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ResultsPerPage = n
		}
	}
	if v := os.Getenv("FRESHNESS_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FreshnessDays = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Credential presence is checked where the credential is first used, not here.
func (c *Config) Validate() error {
	if c.ResultsPerPage < 0 {
		return fmt.Errorf("config error: 'results_per_page' must be non-negative")
	}
	if c.FreshnessDays < 0 {
		return fmt.Errorf("config error: 'freshness_days' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to layer config file values over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.SerpAPIKey == "" {
		result.SerpAPIKey = defaults.SerpAPIKey
	}
	if result.ApifyToken == "" {
		result.ApifyToken = defaults.ApifyToken
	}
	if result.ApifyActorID == "" {
		result.ApifyActorID = defaults.ApifyActorID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.Port == "" {
		result.Port = defaults.Port
	}

	// Int fields: use default if zero
	if result.ResultsPerPage == 0 {
		if defaults.ResultsPerPage > 0 {
			result.ResultsPerPage = defaults.ResultsPerPage
		} else {
			result.ResultsPerPage = 10
		}
	}
	if result.FreshnessDays == 0 {
		if defaults.FreshnessDays > 0 {
			result.FreshnessDays = defaults.FreshnessDays
		} else {
			result.FreshnessDays = 30
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
