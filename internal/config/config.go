package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ha1tch/deluxeanim/internal/logging"
	"github.com/ha1tch/deluxeanim/internal/timeline"
	"github.com/ha1tch/deluxeanim/internal/toolbar"
)

const appName = "deluxeanim"

// Config is the whole configuration file.
type Config struct {
	LogLevel string         `koanf:"log_level"` // "debug", "info", "warn", "error"
	Window   WindowConfig   `koanf:"window"`
	Font     FontConfig     `koanf:"font"`
	Timeline TimelineConfig `koanf:"timeline"`
	Toolbar  ToolbarConfig  `koanf:"toolbar"`
}

type WindowConfig struct {
	Title     string `koanf:"title"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	FPS       int    `koanf:"fps"`
	Resizable bool   `koanf:"resizable"`
	VSync     bool   `koanf:"vsync"`
}

// FontConfig names the label font and the single fallback tried when
// it cannot be loaded.
type FontConfig struct {
	Path     string `koanf:"path"`
	Fallback string `koanf:"fallback"`
	Size     int    `koanf:"size"`
}

// TimelineConfig seeds the timeline panel.
type TimelineConfig struct {
	PanelWidth     int     `koanf:"panel_width"`
	Layers         int     `koanf:"layers"`
	Columns        int     `koanf:"columns"`
	FrameRate      int     `koanf:"frame_rate"`
	Speed          float64 `koanf:"speed"`
	CarryRemainder bool    `koanf:"carry_remainder"` // false resets the playback timer after each frame
}

type ToolbarConfig struct {
	Height int      `koanf:"height"`
	Items  []string `koanf:"items"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:     "Animation Engine",
			Width:     1200,
			Height:    700,
			FPS:       60,
			Resizable: true,
			VSync:     true,
		},
		Font: FontConfig{
			Path:     "OpenSans.ttf",
			Fallback: "Arial.ttf",
			Size:     16,
		},
		Timeline: TimelineConfig{
			PanelWidth:     300,
			Layers:         3,
			Columns:        2,
			FrameRate:      timeline.BaseFrameRate,
			Speed:          1.0,
			CarryRemainder: true,
		},
		Toolbar: ToolbarConfig{
			Height: toolbar.DefaultHeight,
			Items:  append([]string(nil), toolbar.DefaultItems...),
		},
	}
}

// Load reads the config files in priority order, last wins. Keys
// missing from every file keep their defaults.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles is Load with explicit paths. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		logging.Logger().Debug("config loaded", "path", path)
	}

	cfg := Default()
	// Lists decode over the existing slice; start empty so a shorter
	// list in the file does not keep trailing defaults.
	if k.Exists("toolbar.items") {
		cfg.Toolbar.Items = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/deluxeanim/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// normalize replaces out of range values with defaults.
func (c *Config) normalize() {
	def := Default()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.FPS <= 0 {
		c.Window.FPS = def.Window.FPS
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Font.Size <= 0 {
		c.Font.Size = def.Font.Size
	}

	if c.Timeline.PanelWidth < timeline.MinPanelWidth || c.Timeline.PanelWidth > c.Window.Width {
		c.Timeline.PanelWidth = min(def.Timeline.PanelWidth, c.Window.Width)
	}
	if c.Timeline.Layers <= 0 {
		c.Timeline.Layers = def.Timeline.Layers
	}
	if c.Timeline.Columns <= 0 {
		c.Timeline.Columns = def.Timeline.Columns
	}
	if c.Timeline.FrameRate <= 0 {
		c.Timeline.FrameRate = def.Timeline.FrameRate
	}
	if c.Timeline.Speed <= 0 {
		c.Timeline.Speed = def.Timeline.Speed
	}
	c.Timeline.Speed = timeline.ClampSpeed(c.Timeline.Speed)

	if c.Toolbar.Height < toolbar.MinHeight {
		c.Toolbar.Height = def.Toolbar.Height
	}
	if len(c.Toolbar.Items) == 0 {
		c.Toolbar.Items = def.Toolbar.Items
	}
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}

// TimelineOptions converts the timeline section for timeline.NewWithOptions.
func (c *Config) TimelineOptions() timeline.Options {
	policy := timeline.CarryRemainder
	if !c.Timeline.CarryRemainder {
		policy = timeline.DiscardRemainder
	}
	return timeline.Options{
		Layers:    c.Timeline.Layers,
		Columns:   c.Timeline.Columns,
		FrameRate: c.Timeline.FrameRate,
		Speed:     c.Timeline.Speed,
		Policy:    policy,
	}
}
