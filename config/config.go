// Package config provides YAML-loadable pipeline configuration, following
// the struct-of-structs-with-yaml-tags pattern and embedded-defaults
// loading of the teacher pack's pthm-soup/config package.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every pipeline stage's tunable parameters.
type Config struct {
	Anneal   AnnealConfig   `yaml:"anneal"`
	Legalize LegalizeConfig `yaml:"legalize"`
	Detail   DetailConfig   `yaml:"detail"`
}

// AnnealConfig mirrors anneal.Config's tunables.
type AnnealConfig struct {
	T0               float64 `yaml:"t0"`
	Alpha            float64 `yaml:"alpha"`
	OverlapWeight    float64 `yaml:"overlap_weight"`
	DensityWeight    float64 `yaml:"density_weight"`
	MaxEpochs        int     `yaml:"max_epochs"`
	MovesPerEpoch    int     `yaml:"moves_per_epoch"`
	StallWindow      int     `yaml:"stall_window"`
}

// LegalizeConfig mirrors legalize.Config's tunables.
type LegalizeConfig struct {
	// no tunables beyond logging today; kept as its own struct so new
	// legalizer knobs have a home without reshaping the top-level Config.
}

// DetailConfig mirrors detail.Config's tunables.
type DetailConfig struct {
	WindowSize    int     `yaml:"window_size"`
	MaxIterations int     `yaml:"max_iterations"`
	OverlapWeight float64 `yaml:"overlap_weight"`
	DensityWeight float64 `yaml:"density_weight"`
}

// Load loads configuration starting from the embedded defaults, then
// overlays path if non-empty (only the fields present in the file are
// overwritten). An empty path yields the embedded defaults unchanged.
func Load(path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing embedded defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing config file: %w", err)
	}
	return cfg, nil
}
