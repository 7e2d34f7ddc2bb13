// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Catalog    CatalogConfig    `yaml:"catalog"`
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Animation  AnimationConfig  `yaml:"animation"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CatalogConfig selects the reference data.
type CatalogConfig struct {
	Path string `yaml:"path"` // Empty uses the built-in catalog
}

// VehicleConfig selects the configuration to build.
type VehicleConfig struct {
	Patch string `yaml:"patch"` // YAML file merged over the catalog defaults
}

// AnimationConfig holds ride height animation settings.
type AnimationConfig struct {
	StartOffset float64 `yaml:"start_offset"` // meters above the settled height
}

// SimulationConfig controls the headless frame loop.
type SimulationConfig struct {
	FPS      int           `yaml:"fps"`
	Duration time.Duration `yaml:"duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			StartOffset: 0.1,
		},
		Simulation: SimulationConfig{
			FPS:      60,
			Duration: 2 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// FrameTime returns the simulated seconds per frame.
func (s SimulationConfig) FrameTime() float64 {
	if s.FPS <= 0 {
		return 0
	}
	return 1 / float64(s.FPS)
}

// Frames returns how many frames cover Duration.
func (s SimulationConfig) Frames() int {
	if s.FPS <= 0 || s.Duration <= 0 {
		return 0
	}
	return int(s.Duration.Seconds() * float64(s.FPS))
}
