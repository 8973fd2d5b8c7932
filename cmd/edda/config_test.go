package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "model: coinflip\n")
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "coinflip", cfg.Model)
	assert.Equal(t, "mh", cfg.Inference)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2000, cfg.Samples)
	assert.Equal(t, 100, cfg.Flips)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
model: logreg
inference: hmc
seed: 7
samples: 500
burn_in: 50
step_size: 0.05
n: 200
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "logreg", cfg.Model)
	assert.Equal(t, "hmc", cfg.Inference)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 500, cfg.Samples)
	assert.Equal(t, 50, cfg.BurnIn)
	assert.InDelta(t, 0.05, cfg.StepSize, 1e-12)
	assert.Equal(t, 200, cfg.N)
}

func TestLoadConfigRejectsUnknownModel(t *testing.T) {
	path := writeConfig(t, "model: mysterymodel\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownInference(t *testing.T) {
	path := writeConfig(t, "inference: exactenumeration\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "model: [unclosed\n")
	_, err := loadConfig(path)
	assert.Error(t, err)
}
