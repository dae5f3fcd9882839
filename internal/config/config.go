package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the client configuration
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url" env:"SCHOOLHUB_API_BASE_URL"`
		Timeout string `yaml:"timeout" env:"SCHOOLHUB_API_TIMEOUT"`
	} `yaml:"api"`

	Auth struct {
		TokenFile string `yaml:"token_file" env:"SCHOOLHUB_TOKEN_FILE"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"SCHOOLHUB_LOG_LEVEL"`
		Format string `yaml:"format" env:"SCHOOLHUB_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.API.BaseURL = "http://localhost:8000/api"
	config.API.Timeout = "15s"

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	config.Auth.TokenFile = filepath.Join(home, ".schoolhub", "tokens.json")

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.API.BaseURL = GetEnv("SCHOOLHUB_API_BASE_URL", config.API.BaseURL)
	config.API.Timeout = GetEnv("SCHOOLHUB_API_TIMEOUT", config.API.Timeout)
	config.Auth.TokenFile = GetEnv("SCHOOLHUB_TOKEN_FILE", config.Auth.TokenFile)
	config.Logging.Level = GetEnv("SCHOOLHUB_LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("SCHOOLHUB_LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if !strings.HasPrefix(config.API.BaseURL, "http://") && !strings.HasPrefix(config.API.BaseURL, "https://") {
		return fmt.Errorf("API base URL must be an http(s) URL")
	}
	if config.Auth.TokenFile == "" {
		return fmt.Errorf("token file path is required")
	}
	if _, err := time.ParseDuration(config.API.Timeout); err != nil {
		return fmt.Errorf("invalid API timeout format: %w", err)
	}
	return nil
}

// RequestTimeout returns the parsed API request timeout.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
