package sanipath

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the service configuration
type Config struct {
	Port   int          `yaml:"port"`
	Policy PolicyConfig `yaml:"policy"`
}

// PolicyConfig holds the default sanitization policy applied to requests
// that do not override it
type PolicyConfig struct {
	FATCompatible bool `yaml:"fat_compatible"`
	TrimToLimit   bool `yaml:"trim_to_limit"`
	Quiet         bool `yaml:"quiet"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// ApplyDefaults sets default values for unspecified configuration options
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	return nil
}

// Options builds engine options from the configured policy. The warn sink is
// left to the caller.
func (p PolicyConfig) Options() Options {
	return Options{
		FATCompatible: p.FATCompatible,
		TrimToLimit:   p.TrimToLimit,
	}
}
