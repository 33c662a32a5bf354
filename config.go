package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional aoc.yaml read by the harness.
type Config struct {
	// Inputs is the directory holding <year>/<day>.input files.
	Inputs string `yaml:"inputs"`
	// Answers are known answers, by year, day and part, checked after each
	// real run.
	Answers map[int]map[int]map[string]string `yaml:"answers"`
}

// DefaultConfig is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{Inputs: "inputs"}
}

// LoadConfig reads the config at path. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Inputs == "" {
		cfg.Inputs = DefaultConfig().Inputs
	}
	return cfg, nil
}

// Answer returns the known answer for a part, if any.
func (c *Config) Answer(year, day int, part string) (string, bool) {
	v, ok := c.Answers[year][day][part]
	return v, ok
}
