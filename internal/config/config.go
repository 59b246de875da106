// Package config loads the optional YAML run configuration used by the
// wanish command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors the command-line options that make sense to persist.
type Config struct {
	PositiveKeywords []string          `yaml:"positive_keywords"`
	NegativeKeywords []string          `yaml:"negative_keywords"`
	SummarySentences int               `yaml:"summary_sentences"`
	Headers          map[string]string `yaml:"headers"`
	UserAgent        string            `yaml:"user_agent"`
	Timeout          Duration          `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SummarySentences: 5,
		Timeout:          Duration(30 * time.Second),
	}
}

// Load reads a YAML config file. Unknown keys are an error so typos do not
// silently disable options. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.SummarySentences < 0 {
		return cfg, fmt.Errorf("config: summary_sentences must not be negative")
	}
	return cfg, nil
}

// Duration wraps time.Duration so YAML accepts values like "30s" or "1m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
