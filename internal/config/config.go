// Package config loads optional run configuration from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = ".cmangle.yaml"

// Config mirrors the .cmangle.yaml schema. Zero values mean "not set";
// command-line flags always win over config values.
type Config struct {
	// Level is the default obfuscation level name.
	Level string `yaml:"level"`
	// Seed makes runs reproducible when non-empty.
	Seed string `yaml:"seed"`
	// Reserved lists extra identifiers that must never be renamed.
	Reserved []string `yaml:"reserved"`
}

// Load reads the config at path. A missing or empty file is not an error; an
// empty Config is returned so flags and built-in defaults take over.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
