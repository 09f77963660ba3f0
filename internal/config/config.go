// Package config handles radial bar configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/radialbar/pkg/radialbar"
)

// Config holds all settings for the bar tools and demo.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Bars     []BarConfig    `yaml:"bars"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	ClearColor string `yaml:"clear_color"`
}

// BarConfig describes one radial bar to spawn.
type BarConfig struct {
	Name         string     `yaml:"name"`
	HoleRadius   float32    `yaml:"hole_radius"`
	CircleRadius float32    `yaml:"circle_radius"`
	Segments     int        `yaml:"segments"`
	MaxValue     float32    `yaml:"max_value"`
	Value        float32    `yaml:"value"`
	Color        string     `yaml:"color"`        // "#rrggbb", "#rrggbbaa" or an SVG color name
	Position     [2]float32 `yaml:"position"`     // Center in world units
	ClampOnSet   bool       `yaml:"clamp_on_set"` // Clamp SetValue like AddValue
}

// DemoConfig holds the interactive demo behavior.
type DemoConfig struct {
	AutoDrain     bool    `yaml:"auto_drain"`
	DrainPerFrame float32 `yaml:"drain_per_frame"` // Value removed per frame while draining
	Step          float32 `yaml:"step"`            // Value added/removed per key press
	SpinSpeed     float32 `yaml:"spin_speed"`      // Radians per second, 0 disables
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ClearColor: "#4d4d4d",
		},
		Bars: []BarConfig{DefaultBar()},
		Demo: DemoConfig{
			AutoDrain:     false,
			DrainPerFrame: 0.5,
			Step:          20,
			SpinSpeed:     0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultBar returns the stock health ring.
func DefaultBar() BarConfig {
	return BarConfig{
		Name:         "health",
		HoleRadius:   0.1,
		CircleRadius: 0.2,
		Segments:     18,
		MaxValue:     360,
		Value:        360,
		Color:        "midnightblue",
	}
}

// ProgressBar returns the stock progress ring: finer segments, starting empty.
func ProgressBar() BarConfig {
	return BarConfig{
		Name:         "progress",
		HoleRadius:   0.15,
		CircleRadius: 0.2,
		Segments:     36,
		MaxValue:     100,
		Value:        0,
		Color:        "progress",
		ClampOnSet:   true,
	}
}

// Presets returns the built-in bars by name.
func Presets() map[string]BarConfig {
	return map[string]BarConfig{
		"health":   DefaultBar(),
		"progress": ProgressBar(),
	}
}

// Radial converts the bar settings into a radialbar.Config.
func (b BarConfig) Radial() (radialbar.Config, error) {
	color, err := ParseColor(b.Color)
	if err != nil {
		return radialbar.Config{}, fmt.Errorf("bar %q: %w", b.Name, err)
	}

	cfg := radialbar.Config{
		HoleRadius:   b.HoleRadius,
		CircleRadius: b.CircleRadius,
		SegmentCount: b.Segments,
		MaxValue:     b.MaxValue,
		Value:        b.Value,
		Color:        color,
		ClampOnSet:   b.ClampOnSet,
	}
	if err := cfg.Validate(); err != nil {
		return radialbar.Config{}, fmt.Errorf("bar %q: %w", b.Name, err)
	}
	return cfg, nil
}

// Validate checks every bar and the clear color.
func (c *Config) Validate() error {
	if _, err := ParseColor(c.Graphics.ClearColor); err != nil {
		return fmt.Errorf("graphics.clear_color: %w", err)
	}
	for i, bar := range c.Bars {
		if _, err := bar.Radial(); err != nil {
			return fmt.Errorf("bars[%d]: %w", i, err)
		}
	}
	return nil
}
