package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Every field has a usable zero
// default, so a missing config file behaves like an empty one. The
// converter never writes the file itself: its only output is the
// checklist on stdout.
type Config struct {
	// UseAmericanFormat switches rendered due dates to year-first
	// (yyyy/mm/dd) order.
	UseAmericanFormat bool `yaml:"use_american_format"`

	// HorizonDays caps how far into the future events are kept.
	// Zero keeps every future event.
	HorizonDays int `yaml:"horizon_days"`

	// LogLevel is one of "debug", "info", "error".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		UseAmericanFormat: false,
		HorizonDays:       0,
		LogLevel:          "info",
	}
}

// Normalize fills zero or out-of-range values with defaults so that
// partially-filled config files behave predictably.
func (c *Config) Normalize() {
	if c.HorizonDays < 0 {
		c.HorizonDays = 0
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "error":
	default:
		c.LogLevel = "info"
	}
}

// Horizon converts HorizonDays into a duration. Zero means unbounded.
func (c *Config) Horizon() time.Duration {
	return time.Duration(c.HorizonDays) * 24 * time.Hour
}

// DefaultPath resolves the config file location: $ICS2MD_CONFIG if set,
// otherwise config.yaml under the XDG config directory. Returns "" when
// no location can be resolved.
func DefaultPath() string {
	if p := os.Getenv("ICS2MD_CONFIG"); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ics2md", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ics2md", "config.yaml")
}

// Load reads the YAML configuration at path. A missing file, or an empty
// path when no config location could be resolved, yields the defaults:
// the tool must run without prior setup. A file that exists but does not
// parse is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}
