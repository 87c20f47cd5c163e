package config

import "time"

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Server   ServerConfig   `yaml:"server"`
	Docs     DocsConfig     `yaml:"docs"`
	Database DatabaseConfig `yaml:"database"`
	Graph    GraphConfig    `yaml:"graph"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string    `yaml:"addr"`
	ReadTimeout     *Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout    *Duration `yaml:"write_timeout,omitempty"`
	ShutdownTimeout *Duration `yaml:"shutdown_timeout,omitempty"`
}

// DocsConfig points at the documentation content. Dir is walked directly;
// ManifestPath, when set, takes precedence and is parsed as a pre-walked tree.
type DocsConfig struct {
	Dir              string `yaml:"dir"`
	ManifestPath     string `yaml:"manifest_path,omitempty"`
	CuratedLinksPath string `yaml:"curated_links_path,omitempty"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// GraphConfig tunes graph building and session behavior
type GraphConfig struct {
	Seed          int64   `yaml:"seed,omitempty"`
	ReducedMotion bool    `yaml:"reduced_motion"`
	DefaultWidth  float64 `yaml:"default_width"`
	DefaultHeight float64 `yaml:"default_height"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DurationOr returns the wrapped duration, or fallback when unset
func DurationOr(d *Duration, fallback time.Duration) time.Duration {
	if d == nil {
		return fallback
	}
	return d.Duration()
}
