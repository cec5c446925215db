// Package config holds the configuration of the domsurfer command line
// tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jakopako/domsurfer/fetch"
	"github.com/jakopako/domsurfer/output"
)

// Config defines the overall structure of the configuration. Values will
// be taken from a config yml file or environment variables or both.
type Config struct {
	LogLevel string              `yaml:"log_level" env:"DOMSURFER_LOG_LEVEL" env-default:"info"`
	Fetcher  fetch.FetcherConfig `yaml:"fetcher"`
	Output   output.WriterConfig `yaml:"output"`
}

// NewConfig reads the config file at configPath. If there is no such
// file the configuration is read from the environment only.
func NewConfig(configPath string) (*Config, error) {
	var config Config

	if configPath == "" {
		return readEnv(&config)
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return readEnv(&config)
	}
	if err := cleanenv.ReadConfig(configPath, &config); err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", configPath, err)
	}
	return &config, nil
}

func readEnv(config *Config) (*Config, error) {
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("error reading config from environment: %w", err)
	}
	return config, nil
}

// Debug reports whether debug logging is configured.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}
