// Package config loads CLI settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names a config file used when no --config flag is given.
const EnvConfigFile = "READINPUT_CONFIG"

// Config holds the settings shared by every CLI question.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Repeat       bool   `yaml:"repeat"`
	Error        string `yaml:"error"`
	MaxInputSize int    `yaml:"max_input_size"`
	Sanitize     bool   `yaml:"sanitize"`
	Styled       bool   `yaml:"styled"`
	History      string `yaml:"history"`
	LogLevel     string `yaml:"log_level"`
}

// Load reads path, or the file named by READINPUT_CONFIG when path is empty.
// No file at all yields the zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that yaml cannot.
func (c Config) Validate() error {
	if c.MaxInputSize < 0 {
		return errors.New("max_input_size must not be negative")
	}
	return nil
}
