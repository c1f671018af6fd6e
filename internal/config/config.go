// Package config resolves connector settings from the environment and the
// user's config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connector/client"

	"github.com/goccy/go-yaml"
)

const (
	envVarEndpoint   = "CONNECTOR_ENDPOINT"
	envVarAPIKey     = "CONNECTOR_API_KEY"
	envVarTimeout    = "CONNECTOR_TIMEOUT"
	envVarConfigPath = "CONNECTOR_CONFIG"
	configFileName   = ".connector/config.yml"
)

// Config holds the values read from the config file
type Config struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Timeout  string `yaml:"timeout"`
}

// Load reads the config file named by CONNECTOR_CONFIG, or ~/.connector/config.yml.
// A missing file yields an empty Config.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields an empty Config.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the config file location: env var > ~/.connector/config.yml
func DefaultPath() (string, error) {
	if path := os.Getenv(envVarConfigPath); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// GetEndpoint returns the endpoint with priority: env var > config file
func (c *Config) GetEndpoint() string {
	return firstNonBlank(os.Getenv(envVarEndpoint), c.Endpoint)
}

// GetAPIKey returns the API key with priority: env var > config file
func (c *Config) GetAPIKey() string {
	return firstNonBlank(os.Getenv(envVarAPIKey), c.APIKey)
}

// GetTimeout returns the timeout with priority: env var > config file.
// Zero means unset.
func (c *Config) GetTimeout() (time.Duration, error) {
	raw := firstNonBlank(os.Getenv(envVarTimeout), c.Timeout)
	if raw == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	return d, nil
}

// Apply sets every resolved value on b. Unset values are left alone so the
// builder keeps its own defaults.
func (c *Config) Apply(b *client.Builder) error {
	if endpoint := c.GetEndpoint(); endpoint != "" {
		if err := b.SetEndpoint(endpoint); err != nil {
			return err
		}
	}

	if apiKey := c.GetAPIKey(); apiKey != "" {
		if err := b.SetCredential(apiKey); err != nil {
			return err
		}
	}

	timeout, err := c.GetTimeout()
	if err != nil {
		return err
	}
	if timeout != 0 {
		if err := b.SetTimeout(timeout); err != nil {
			return err
		}
	}

	return nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
