package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API      APIConfig      `toml:"api"`
	Database DatabaseConfig `toml:"database"`
}

// APIConfig contains remote backend settings.
type APIConfig struct {
	// Environment selects which base URL is used: "development" or "production".
	Environment string `toml:"environment"`
	// BaseURL overrides the environment selection when set.
	BaseURL        string `toml:"base_url"`
	DevBaseURL     string `toml:"dev_base_url"`
	ProdBaseURL    string `toml:"prod_base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	// RequestsPerSecond throttles outgoing calls; zero disables throttling.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// DatabaseConfig contains local SQLite settings for the token store and roster cache.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ResolveBaseURL returns the effective backend base URL for this configuration.
func (c *Config) ResolveBaseURL() string {
	if c.API.BaseURL != "" {
		return c.API.BaseURL
	}
	if c.API.Environment == "production" {
		return c.API.ProdBaseURL
	}
	return c.API.DevBaseURL
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
