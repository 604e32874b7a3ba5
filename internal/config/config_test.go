package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 50, cfg.Game.Satisfaction)
	assert.Equal(t, 100, cfg.Game.Stability)
	assert.Equal(t, 0.3, cfg.Game.EventChance)
	assert.Equal(t, 10, cfg.Game.Resources.QuantumEnergy)
	assert.Equal(t, 5, cfg.Game.Resources.ProbabilityStabilizer)
	assert.Equal(t, 2, cfg.Game.Resources.TimelineToken)
	assert.False(t, cfg.Playground.Enabled)
	assert.Equal(t, 8080, cfg.Playground.Port)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
seed: 42
game:
  satisfaction: 60
  event_chance: 0.5
  resources:
    quantum_energy: 20
playground:
  enabled: true
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 60, cfg.Game.Satisfaction)
	assert.Equal(t, 0.5, cfg.Game.EventChance)
	assert.Equal(t, 20, cfg.Game.Resources.QuantumEnergy)
	assert.True(t, cfg.Playground.Enabled)
	assert.Equal(t, 9000, cfg.Playground.Port)
	// Fields the file leaves out keep their defaults.
	assert.Equal(t, 100, cfg.Game.Stability)
	assert.Equal(t, 5, cfg.Game.Resources.ProbabilityStabilizer)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\n"), 0o644))

	t.Setenv("KUANTUM_SEED", "7")
	t.Setenv("KUANTUM_STABILITY", "80")
	t.Setenv("KUANTUM_METRICS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 80, cfg.Game.Stability)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
