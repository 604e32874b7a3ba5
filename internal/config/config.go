// Package config loads the game configuration from an optional YAML file,
// with environment variable overrides applied on top.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Seed fixes the run's random seed. Zero means generate one.
	Seed int64 `yaml:"seed" env:"KUANTUM_SEED"`

	Game struct {
		Satisfaction int     `yaml:"satisfaction" env:"KUANTUM_SATISFACTION"`
		Stability    int     `yaml:"stability" env:"KUANTUM_STABILITY"`
		EventChance  float64 `yaml:"event_chance" env:"KUANTUM_EVENT_CHANCE"`

		Resources struct {
			QuantumEnergy         int `yaml:"quantum_energy" env:"KUANTUM_ENERGY"`
			ProbabilityStabilizer int `yaml:"probability_stabilizer" env:"KUANTUM_STABILIZERS"`
			TimelineToken         int `yaml:"timeline_token" env:"KUANTUM_TOKENS"`
		} `yaml:"resources"`
	} `yaml:"game"`

	Playground struct {
		Enabled bool `yaml:"enabled" env:"KUANTUM_PLAYGROUND"`
		Port    int  `yaml:"port" env:"KUANTUM_PLAYGROUND_PORT"`
	} `yaml:"playground"`

	Metrics struct {
		Enabled bool `yaml:"enabled" env:"KUANTUM_METRICS"`
		Port    int  `yaml:"port" env:"KUANTUM_METRICS_PORT"`
	} `yaml:"metrics"`
}

// Default returns the standard configuration.
func Default() Config {
	var cfg Config
	cfg.Game.Satisfaction = 50
	cfg.Game.Stability = 100
	cfg.Game.EventChance = 0.3
	cfg.Game.Resources.QuantumEnergy = 10
	cfg.Game.Resources.ProbabilityStabilizer = 5
	cfg.Game.Resources.TimelineToken = 2
	cfg.Playground.Port = 8080
	cfg.Metrics.Port = 9090
	return cfg
}

// Load reads the configuration file at path (when it exists) over the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config file is fine; defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
