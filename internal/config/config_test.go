package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/turtlesim/internal/palette"
	"github.com/san-kum/turtlesim/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Variant != "snake" {
		t.Errorf("expected variant snake, got %s", cfg.Variant)
	}
	if cfg.Turtle.StrokeWidth <= 0 {
		t.Error("stroke width should be positive")
	}
	if cfg.Canvas.Background != "#FFFFFF" {
		t.Errorf("expected white background, got %s", cfg.Canvas.Background)
	}
	if _, err := cfg.ToSim(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("snake", "tight")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Turtle.StrokeWidth != 4 {
		t.Errorf("expected stroke width 4, got %f", cfg.Turtle.StrokeWidth)
	}

	again := GetPreset("snake", "tight")
	again.Seeds = 99
	if cfg.Seeds == 99 {
		t.Error("presets share state between calls")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("snake", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "tight")
	if cfg != nil {
		t.Error("expected nil for nonexistent variant")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("spiral")
	if len(presets) == 0 {
		t.Error("expected presets for spiral")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent variant")
	}
}

func TestPresetsValidate(t *testing.T) {
	for variant, presets := range Presets {
		for name := range presets {
			cfg := GetPreset(variant, name)
			if _, err := cfg.ToSim(); err != nil {
				t.Errorf("%s/%s: %v", variant, name, err)
			}
			if cfg.Variant != variant {
				t.Errorf("%s/%s: variant %s", variant, name, cfg.Variant)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := GetPreset("spiral", "branching")
	cfg.Seed = 1234
	cfg.Probe.StrideDeg = 15
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestParseAppliesVariantDefaults(t *testing.T) {
	cfg, err := Parse([]byte("variant: spiral\nseed: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Turtle.Phaser || cfg.Turtle.PrefTurn != sim.DefaultPrefTurn {
		t.Errorf("spiral defaults not applied: %+v", cfg.Turtle)
	}
	if cfg.Seed != 5 {
		t.Errorf("expected seed 5, got %d", cfg.Seed)
	}

	cfg, err = Parse([]byte("canvas:\n  width: 64\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "snake" || cfg.Canvas.Width != 64 || cfg.Canvas.Height != sim.DefaultHeight {
		t.Errorf("partial file not merged onto defaults: %+v", cfg.Canvas)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if _, err := Parse([]byte("seeds: [1, 2")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestToSim(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"bad background", func(c *Config) { c.Canvas.Background = "white" }, sim.ErrInvalidConfig},
		{"unknown palette", func(c *Config) { c.Canvas.Palette = "neon" }, palette.ErrUnknownPalette},
		{"unknown variant", func(c *Config) { c.Variant = "koch" }, sim.ErrUnknownVariant},
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, sim.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if _, err := cfg.ToSim(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	s, err := DefaultConfig().ToSim()
	if err != nil {
		t.Fatal(err)
	}
	if s.Background.R != 1 || s.Background.G != 1 || s.Background.B != 1 {
		t.Errorf("background not white: %+v", s.Background)
	}
	if s.Probe.StrideDeg != 30 || s.Probe.ChannelThreshold != 250 {
		t.Errorf("probe settings lost: %+v", s.Probe)
	}
}
