// Package config loads and saves blochview settings as yaml.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/blochview/internal/anim"
	"github.com/san-kum/blochview/internal/qmath"
)

const (
	DefaultDurationMS = 300.0
	DefaultEasing     = "ease-in-out"
	DefaultMaxPoints  = 200
	DefaultFrameRate  = 60
	DefaultTheme      = "cyberpunk"
)

type Config struct {
	Animation  AnimationConfig  `yaml:"animation"`
	View       ViewConfig       `yaml:"view"`
	Trajectory TrajectoryConfig `yaml:"trajectory"`
	Initial    string           `yaml:"initial_state"`
}

type AnimationConfig struct {
	Enabled    bool    `yaml:"enabled"`
	DurationMS float64 `yaml:"duration_ms"`
	Easing     string  `yaml:"easing"`
}

type ViewConfig struct {
	FrameRate int    `yaml:"frame_rate"`
	Theme     string `yaml:"theme"`
}

type TrajectoryConfig struct {
	Show      bool `yaml:"show"`
	MaxPoints int  `yaml:"max_points"`
}

func DefaultConfig() *Config {
	return &Config{
		Animation: AnimationConfig{
			Enabled:    true,
			DurationMS: DefaultDurationMS,
			Easing:     DefaultEasing,
		},
		View: ViewConfig{
			FrameRate: DefaultFrameRate,
			Theme:     DefaultTheme,
		},
		Trajectory: TrajectoryConfig{
			Show:      true,
			MaxPoints: DefaultMaxPoints,
		},
		Initial: "zero",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AnimConfig resolves the yaml animation section into driver settings,
// validating the easing name.
func (c *Config) AnimConfig() (anim.Config, error) {
	easing, err := qmath.ParseEasing(c.Animation.Easing)
	if err != nil {
		return anim.Config{}, err
	}
	return anim.Config{
		Enabled:  c.Animation.Enabled,
		Duration: time.Duration(c.Animation.DurationMS * float64(time.Millisecond)),
		Easing:   easing,
	}, nil
}
