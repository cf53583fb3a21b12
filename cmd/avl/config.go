package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// checkConfig controls the randomized checker.
// It can be read from a YAML file; flags given on the command line win.
type checkConfig struct {
	Rounds  int   `yaml:"rounds"`
	Size    int   `yaml:"size"`
	Span    int   `yaml:"span"`
	Workers int   `yaml:"workers"`
	Seed    int64 `yaml:"seed"`
}

func defaultCheckConfig() checkConfig {
	return checkConfig{
		Rounds:  32,
		Size:    1000,
		Span:    200,
		Workers: 4,
		Seed:    1,
	}
}

// loadCheckConfig reads path over the defaults. Fields missing from
// the file keep their default values.
func loadCheckConfig(path string) (checkConfig, error) {
	cfg := defaultCheckConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c checkConfig) validate() error {
	switch {
	case c.Rounds < 0:
		return errors.New("rounds must not be negative")
	case c.Size < 0:
		return errors.New("size must not be negative")
	case c.Span <= 0:
		return errors.New("span must be positive")
	case c.Workers <= 0:
		return errors.New("workers must be positive")
	}
	return nil
}
