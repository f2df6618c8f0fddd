// Package config holds the service configuration, loaded from a YAML file
// with environment-variable overrides applied by the caller.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Duration wraps time.Duration so YAML values like "30s" parse directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", raw)
	}
	*d = Duration(parsed)
	return nil
}

// Config configures the detection service.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// DictionaryDir holds newline-delimited word-list files, one word per line.
	DictionaryDir string `yaml:"dictionary_dir"`

	// DefaultMaxSkip is the fuzzy scanner's skip budget when a request
	// does not supply one.
	DefaultMaxSkip int `yaml:"default_max_skip"`

	// CaseFold lowercases dictionary words and scanned text.
	CaseFold bool `yaml:"case_fold"`

	// StripDiacritics removes combining marks before matching.
	StripDiacritics bool `yaml:"strip_diacritics"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Addr:            ":8080",
		DictionaryDir:   "dictionaries",
		DefaultMaxSkip:  5,
		CaseFold:        true,
		StripDiacritics: false,
		LogLevel:        "info",
		ReadTimeout:     Duration(30 * time.Second),
		WriteTimeout:    Duration(60 * time.Second),
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the scanners would refuse at request time.
func (c Config) Validate() error {
	if c.DefaultMaxSkip < 0 {
		return errors.New("default_max_skip must be non-negative")
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	return nil
}
