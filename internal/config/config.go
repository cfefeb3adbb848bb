package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/paraflect/internal/scene"
)

// Config mirrors the scene parameters plus presentation settings, as
// loaded from a yaml file.
type Config struct {
	Focus   float64     `yaml:"focus"`
	Rays    int         `yaml:"rays"`
	Mode    string      `yaml:"mode"`
	Span    SpanConfig  `yaml:"span"`
	Curve   CurveConfig `yaml:"curve"`
	DataDir string      `yaml:"data_dir"`
}

// SpanConfig bounds the x positions of the parallel bundle.
type SpanConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// CurveConfig controls curve sampling for display.
type CurveConfig struct {
	Lo      float64 `yaml:"lo"`
	Hi      float64 `yaml:"hi"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Focus: scene.DefaultFocus,
		Rays:  scene.DefaultRays,
		Mode:  scene.ModeParallel.String(),
		Span:  SpanConfig{Lo: scene.DefaultSpanLo, Hi: scene.DefaultSpanHi},
		Curve: CurveConfig{Lo: scene.CurveLo, Hi: scene.CurveHi, Samples: scene.CurveSamples},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Scene converts the config into a validated scene, clamping the
// controls the same way the interactive presenter does.
func (c *Config) Scene() (scene.Scene, error) {
	mode, err := scene.ParseMode(c.Mode)
	if err != nil {
		return scene.Scene{}, err
	}
	if c.Span.Lo >= c.Span.Hi {
		return scene.Scene{}, fmt.Errorf("config: span lo %v must be below hi %v", c.Span.Lo, c.Span.Hi)
	}

	s := scene.NewScene()
	s.Mode = mode
	s.SpanLo = c.Span.Lo
	s.SpanHi = c.Span.Hi
	if err := s.SetFocus(c.Focus); err != nil {
		return scene.Scene{}, err
	}
	s.SetRays(c.Rays)
	return s, nil
}
