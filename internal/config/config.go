// Package config holds the settings of the parsefn command and loads them
// from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fossabot/parse-function/jsextract"
)

// Config is the resolved configuration of one run.
type Config struct {
	Format      string   `yaml:"format"`
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	Kinds       []string `yaml:"kinds"`
	MaxFileSize int64    `yaml:"max_file_size"`
}

// Default returns the settings used when neither a file nor a flag says
// otherwise.
func Default() Config {
	return Config{
		Format:      "json",
		LogLevel:    "warn",
		LogFormat:   "text",
		MaxFileSize: jsextract.DefaultMaxFileSize,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes case and rejects unknown values.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format != "json" && c.Format != "yaml" {
		return fmt.Errorf("invalid format %q: must be 'json' or 'yaml'", c.Format)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}

	if c.MaxFileSize < 0 {
		return fmt.Errorf("invalid max-file-size %d: must not be negative", c.MaxFileSize)
	}

	if _, err := c.ExtractKinds(); err != nil {
		return err
	}
	return nil
}

// ExtractKinds converts Kinds for jsextract. An empty list means every kind.
func (c Config) ExtractKinds() ([]jsextract.Kind, error) {
	kinds := make([]jsextract.Kind, 0, len(c.Kinds))
	for _, s := range c.Kinds {
		k, err := jsextract.ParseKind(strings.ToLower(strings.TrimSpace(s)))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// ExtractOptions returns the jsextract options this configuration implies.
func (c Config) ExtractOptions() ([]jsextract.Option, error) {
	opts := []jsextract.Option{jsextract.WithMaxFileSize(c.MaxFileSize)}
	kinds, err := c.ExtractKinds()
	if err != nil {
		return nil, err
	}
	if len(kinds) > 0 {
		opts = append(opts, jsextract.WithKinds(kinds...))
	}
	return opts, nil
}
