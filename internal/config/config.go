// Package config reads pipeline hyperparameters from a YAML file. Values are
// dataset-specific tunables; anything absent from the file keeps its
// reference default.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config mirrors faqrank.Params in file form.
type Config struct {
	TopN    int     `yaml:"top_n"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Bias    float64 `yaml:"bias"`
	C       float64 `yaml:"c"`
	Trees   int     `yaml:"trees"`
	Ratio   float64 `yaml:"ratio"`
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
}

// Default returns the reference hyperparameters.
func Default() *Config {
	return &Config{
		TopN:    19,
		Alpha:   0.0001,
		Beta:    0.0001,
		C:       1.0,
		Trees:   250,
		Ratio:   3,
		Seed:    1,
		Workers: runtime.NumCPU(),
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("faqrank: reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("faqrank: parsing config %s: %w", path, err)
	}
	return c, nil
}
