// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable holding the Gemini credential.
const EnvAPIKey = "GEMINI_API_KEY"

// ErrMissingAPIKey is returned when no credential can be resolved. The message
// tells the operator exactly how to fix it; startup must not proceed without a
// key so the failure never surfaces opaquely on the first evaluation.
var ErrMissingAPIKey = errors.New(
	"missing " + EnvAPIKey + ".\n\n" +
		"Set it in the config file (\"api_key\": \"YOUR_KEY_HERE\"),\n" +
		"or export an environment variable and restart:\n" +
		"  export " + EnvAPIKey + "=YOUR_KEY_HERE\n\n" +
		"A .env file next to the binary works too.")

// Config is the CLI/server configuration, loadable from a JSON file.
// All fields are optional; missing values use defaults or come from flags.
type Config struct {
	APIKey  string `json:"api_key,omitempty"` // Gemini API key (env wins over this)
	Model   string `json:"model,omitempty"`   // Gemini model name
	Port    int    `json:"port,omitempty"`    // HTTP port for serve
	Strict  bool   `json:"strict,omitempty"`  // Schema-validate evaluation payloads
	Verbose bool   `json:"verbose,omitempty"` // Print detailed output
}

// Load reads configuration from a JSON file.
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	return nil
}

// ResolveAPIKey returns the credential, preferring the environment variable
// over the config file value. Returns ErrMissingAPIKey when neither is set.
func (c *Config) ResolveAPIKey() (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	if c != nil && c.APIKey != "" {
		return c.APIKey, nil
	}
	return "", ErrMissingAPIKey
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
