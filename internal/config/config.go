// Package config provides configuration management for docmap.
//
// Config file locations (priority order):
//  1. $DOCMAP_CONFIG
//  2. ./docmap.yaml
//  3. ~/.config/docmap/config.yaml
//  4. /etc/docmap/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{
		Version:  1,
		Server:   ServerConfig{Addr: ":8080"},
		Docs:     DocsConfig{Dir: "./docs"},
		Database: DatabaseConfig{Path: "./docmap.db"},
		Graph: GraphConfig{
			DefaultWidth:  800,
			DefaultHeight: 600,
		},
		Logging: LoggingConfig{Level: "info"},
	}
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Docs.Dir == "" {
		c.Docs.Dir = "./docs"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./docmap.db"
	}
	if c.Graph.DefaultWidth <= 0 {
		c.Graph.DefaultWidth = 800
	}
	if c.Graph.DefaultHeight <= 0 {
		c.Graph.DefaultHeight = 600
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
