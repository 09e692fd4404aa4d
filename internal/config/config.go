package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. Every field can be set
// from a yaml file, overridden by the environment.
type Config struct {
	// Environment selects the logger flavour (development or production).
	Environment string `env:"TODAYIRAN_ENVIRONMENT" env-default:"production" yaml:"environment"`

	Log struct {
		// Level is the minimum level written to stderr.
		Level string `env:"TODAYIRAN_LOG_LEVEL" env-default:"warn" yaml:"level"`
	} `yaml:"log"`

	// Units is the display unit system, metric or imperial.
	Units string `env:"TODAYIRAN_UNITS" env-default:"metric" yaml:"units"`

	// Verbose enables the projection and comparison sections.
	Verbose bool `env:"TODAYIRAN_VERBOSE" env-default:"false" yaml:"verbose"`
}

// Load reads the yaml config file at configPath and applies environment
// overrides. An empty configPath reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file %q does not exist: %w", configPath, err)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
