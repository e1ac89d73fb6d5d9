// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the application configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for kit history

	// Providers
	OpenAIModel   string   `json:"openai_model,omitempty"`    // chat model for the primary provider
	OpenAIBaseURL string   `json:"openai_base_url,omitempty"` // override for OpenAI-compatible endpoints
	HFBaseURL     string   `json:"hf_base_url,omitempty"`     // Hugging Face inference endpoint prefix
	HFModels      []string `json:"hf_models,omitempty"`       // ordered secondary model candidates

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
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

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.HFBaseURL != "" && !strings.HasPrefix(c.HFBaseURL, "http") {
		return fmt.Errorf("config error: 'hf_base_url' must be an http(s) URL")
	}
	for _, m := range c.HFModels {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("config error: 'hf_models' contains an empty entry")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags should still win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OpenAIModel == "" {
		result.OpenAIModel = defaults.OpenAIModel
	}
	if result.OpenAIBaseURL == "" {
		result.OpenAIBaseURL = defaults.OpenAIBaseURL
	}
	if result.HFBaseURL == "" {
		result.HFBaseURL = defaults.HFBaseURL
	}
	if len(result.HFModels) == 0 {
		result.HFModels = defaults.HFModels
	}

	// Bool fields cannot distinguish unset from false, so they are not merged.

	return result
}
