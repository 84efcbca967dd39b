package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"AAS_LOG_LEVEL"`
		Format string `yaml:"format" env:"AAS_LOG_FORMAT"`
	} `yaml:"logging"`

	Auth struct {
		// SignInDelay is the simulated network latency applied to sign-in.
		SignInDelay string `yaml:"sign_in_delay" env:"AAS_SIGN_IN_DELAY"`
	} `yaml:"auth"`

	Seed struct {
		// RosterPath points at a roster override; empty uses the embedded roster.
		RosterPath string `yaml:"roster_path" env:"AAS_ROSTER_PATH"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults cover everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Logging.Level = "info"
	config.Logging.Format = "text"

	// Matches the simulated latency of the original sign-in flow
	config.Auth.SignInDelay = "800ms"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if _, err := time.ParseDuration(config.Auth.SignInDelay); err != nil {
		return fmt.Errorf("invalid sign-in delay format: %w", err)
	}
	return nil
}

// SignInDelay returns the parsed sign-in latency.
func (c *Config) SignInDelay() time.Duration {
	d, err := time.ParseDuration(c.Auth.SignInDelay)
	if err != nil {
		return 800 * time.Millisecond
	}
	return d
}
