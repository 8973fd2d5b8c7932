package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExperimentConfig describes one inference run, loaded from YAML.
//
// Example:
//
//	model: coinflip
//	inference: mh
//	seed: 42
//	flips: 200
//	samples: 2000
//	burn_in: 500
type ExperimentConfig struct {
	Model     string `yaml:"model"`     // coinflip or logreg
	Inference string `yaml:"inference"` // klqp, hmc, mh or sgld
	Seed      int64  `yaml:"seed"`

	// Variational settings.
	Steps int     `yaml:"steps"`
	LR    float64 `yaml:"lr"`

	// Monte Carlo settings.
	Samples  int     `yaml:"samples"`
	BurnIn   int     `yaml:"burn_in"`
	StepSize float64 `yaml:"step_size"`

	// Data settings.
	Flips int `yaml:"flips"` // coinflip observations
	N     int `yaml:"n"`     // logreg observations
}

// loadConfig reads and validates an experiment file.
func loadConfig(path string) (*ExperimentConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := &ExperimentConfig{
		Model:     "coinflip",
		Inference: "mh",
		Seed:      42,
		Steps:     2000,
		LR:        0.05,
		Samples:   2000,
		BurnIn:    500,
		StepSize:  0.1,
		Flips:     100,
		N:         500,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	switch cfg.Model {
	case "coinflip", "logreg":
	default:
		return nil, fmt.Errorf("unknown model %q (want coinflip or logreg)", cfg.Model)
	}
	switch cfg.Inference {
	case "klqp", "hmc", "mh", "sgld":
	default:
		return nil, fmt.Errorf("unknown inference %q (want klqp, hmc, mh or sgld)", cfg.Inference)
	}
	return cfg, nil
}
