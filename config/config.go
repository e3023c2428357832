// Package config loads the optional edgarex configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the structure of ~/.edgarex/config.yaml.
type Config struct {
	// Contact is the e-mail address placed in the SEC User-Agent header.
	Contact string `yaml:"contact"`
	// FetchTimeout bounds a single filing fetch, e.g. "30s".
	FetchTimeout string `yaml:"fetch_timeout"`
	// ArchiveDB is the path of the SQLite run archive.
	ArchiveDB string `yaml:"archive_db"`
	// OutputDir is where extraction reports are written by default.
	OutputDir string `yaml:"output_dir"`
}

// Timeout parses FetchTimeout, returning zero (meaning "use the default")
// when unset or unparseable.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.FetchTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0
	}
	return d
}

// Load reads ~/.edgarex/config.yaml. Returns nil if the file doesn't exist
// (not an error). Returns an error if the file exists but cannot be parsed.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return LoadFile(filepath.Join(homeDir, ".edgarex", "config.yaml"))
}

// LoadFile reads a config file at an explicit path, with the same
// missing-file semantics as Load.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
