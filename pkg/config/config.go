// Package config loads logtally.yaml.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modoterra/logtally/pkg/parser"
)

// DefaultPath is looked up in the working directory when --config is not given.
const DefaultPath = "logtally.yaml"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config represents a logtally.yaml file.
type Config struct {
	Version  int    `yaml:"version"   json:"version"`
	Limit    int    `yaml:"limit"     json:"limit"`
	Output   string `yaml:"output"    json:"output"`
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:  1,
		Limit:    parser.MaxRecords,
		Output:   OutputTable,
		LogLevel: "warn",
	}
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Save writes c to path as YAML.
func Save(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lv, nil
}
