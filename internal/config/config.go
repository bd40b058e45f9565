// Package config provides the settings for the bouncer front ends and animation.
// Settings start from defaults and are overlaid by an optional TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/bouncer/internal/animation"
)

// Config holds all settings.
type Config struct {
	Window    WindowConfig    `toml:"window" yaml:"window"`
	Panel     PanelConfig     `toml:"panel" yaml:"panel"`
	Animation AnimationConfig `toml:"animation" yaml:"animation"`
	Terminal  TerminalConfig  `toml:"terminal" yaml:"terminal"`
	Audio     AudioConfig     `toml:"audio" yaml:"audio"`
	Log       LogConfig       `toml:"log" yaml:"log"`

	// Seed for the random generator; 0 picks one from the clock.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Title     string `toml:"title" yaml:"title"`
	TPS       int    `toml:"tps" yaml:"tps"` // updates per second
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

// PanelConfig describes the control strip above the play area.
type PanelConfig struct {
	Height int `toml:"height" yaml:"height"`
}

// AnimationConfig holds spawn defaults and limits.
type AnimationConfig struct {
	MaxRadius    int    `toml:"max_radius" yaml:"max_radius"`
	DefaultCount int    `toml:"default_count" yaml:"default_count"`
	DefaultSpeed string `toml:"default_speed" yaml:"default_speed"`
	MaxCount     int    `toml:"max_count" yaml:"max_count"`       // per spawn request
	MaxCatchUp   int    `toml:"max_catch_up" yaml:"max_catch_up"` // timer firings per task per update
}

// TerminalConfig describes how the pixel canvas maps onto terminal cells.
type TerminalConfig struct {
	CellWidth  int `toml:"cell_width" yaml:"cell_width"`
	CellHeight int `toml:"cell_height" yaml:"cell_height"`
	TPS        int `toml:"tps" yaml:"tps"`
	MaxRadius  int `toml:"max_radius" yaml:"max_radius"`
}

// AudioConfig controls the bounce chime.
type AudioConfig struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	Frequency  float64 `toml:"frequency" yaml:"frequency"`
	DurationMS int     `toml:"duration_ms" yaml:"duration_ms"`
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
	MinGapMS   int     `toml:"min_gap_ms" yaml:"min_gap_ms"`
}

// LogConfig sets the log level ("debug", "info", "warn", "error"). Empty keeps the CLI's choice.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1024,
			Height:    640,
			Title:     "Bouncer",
			TPS:       60,
			Resizable: true,
		},
		Panel: PanelConfig{
			Height: 48,
		},
		Animation: AnimationConfig{
			MaxRadius:    animation.DefaultMaxRadius,
			DefaultCount: 10,
			DefaultSpeed: "Medium",
			MaxCount:     1000,
			MaxCatchUp:   64,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			TPS:        30,
			MaxRadius:  64,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Frequency:  880,
			DurationMS: 30,
			SampleRate: 44100,
			MinGapMS:   60,
		},
	}
}

// LoadConfig loads settings from path. A missing file yields the defaults.
// Files ending in .yaml or .yml are read as YAML, anything else as TOML.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	case c.Panel.Height < 0 || c.Panel.Height >= c.Window.Height:
		return fmt.Errorf("panel height %d does not fit window height %d", c.Panel.Height, c.Window.Height)
	case c.Animation.MaxRadius <= 0:
		return fmt.Errorf("max_radius must be positive, got %d", c.Animation.MaxRadius)
	case c.Animation.MaxCount <= 0:
		return fmt.Errorf("max_count must be positive, got %d", c.Animation.MaxCount)
	case c.Animation.DefaultCount < 0:
		return fmt.Errorf("default_count cannot be negative, got %d", c.Animation.DefaultCount)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	case c.Terminal.TPS <= 0:
		return fmt.Errorf("terminal tps must be positive, got %d", c.Terminal.TPS)
	case c.Terminal.MaxRadius <= 0:
		return fmt.Errorf("terminal max_radius must be positive, got %d", c.Terminal.MaxRadius)
	case c.Audio.Enabled && (c.Audio.SampleRate <= 0 || c.Audio.Frequency <= 0):
		return fmt.Errorf("audio needs a positive sample rate and frequency")
	}
	if _, err := c.Speed(); err != nil {
		return err
	}
	return nil
}

// Speed parses the configured default speed.
func (c *Config) Speed() (animation.Speed, error) {
	s, err := animation.ParseSpeed(c.Animation.DefaultSpeed)
	if err != nil {
		return 0, fmt.Errorf("default_speed: %w", err)
	}
	return s, nil
}
