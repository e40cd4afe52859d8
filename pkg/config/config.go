// Package config reads the optional YAML file holding the game base directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultBasePath is used when neither an argument nor a config file names one.
const DefaultBasePath = "./"

var ErrEmptyBasePath = errors.New("base_path is empty")

// Config holds the single base directory setting.
type Config struct {
	BasePath string `yaml:"base_path"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{BasePath: DefaultBasePath}
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(reader io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBasePath
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.BasePath == "" {
		return nil, ErrEmptyBasePath
	}
	return &cfg, nil
}

// Load reads the config file at path. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	log.Debugf("Reading configuration file at %s", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ResolveBasePath picks the positional argument when given, otherwise the
// base_path from the config file at cfgPath, otherwise DefaultBasePath.
func ResolveBasePath(args []string, cfgPath string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		return "", err
	}
	return cfg.BasePath, nil
}
