package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/turtlesim/internal/palette"
	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/sim"
	"github.com/san-kum/turtlesim/internal/turtle"
)

const (
	DefaultVariant    = "snake"
	DefaultBackground = "#FFFFFF"
	DefaultPreviewFPS = 20
)

type Config struct {
	Variant  string        `yaml:"variant"`
	Seed     int64         `yaml:"seed"`
	Seeds    int           `yaml:"seeds"`
	MaxTicks int           `yaml:"max_ticks"`
	Canvas   CanvasConfig  `yaml:"canvas"`
	Turtle   TurtleConfig  `yaml:"turtle"`
	Probe    ProbeConfig   `yaml:"probe"`
	Preview  PreviewConfig `yaml:"preview"`
}

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Palette    string `yaml:"palette"`
}

type TurtleConfig struct {
	StrokeWidth   float64 `yaml:"stroke_width"`
	StepSize      float64 `yaml:"step_size,omitempty"`
	TurnBias      float64 `yaml:"turn_bias"`
	SpawnProb     float64 `yaml:"spawn_prob"`
	PrefTurn      float64 `yaml:"pref_turn"`
	Phaser        bool    `yaml:"phaser"`
	SpiralSpacing float64 `yaml:"spiral_spacing"`
	MaxPhase      int     `yaml:"max_phase"`
}

type ProbeConfig struct {
	OpacityThreshold uint8 `yaml:"opacity_threshold"`
	ChannelThreshold uint8 `yaml:"channel_threshold"`
	StrideDeg        int   `yaml:"stride_deg"`
}

type PreviewConfig struct {
	FrameEvery    int  `yaml:"frame_every"`
	FPS           int  `yaml:"fps"`
	RecordStrokes bool `yaml:"record_strokes"`
}

func DefaultConfig() *Config {
	return ForVariant(DefaultVariant)
}

// ForVariant returns the defaults the variant was tuned with.
func ForVariant(variant string) *Config {
	return FromSim(sim.DefaultConfig(variant))
}

// FromSim converts run settings into their file form.
func FromSim(s sim.Config) *Config {
	return &Config{
		Variant:  s.Variant,
		Seed:     s.Seed,
		Seeds:    s.Seeds,
		MaxTicks: s.MaxTicks,
		Canvas: CanvasConfig{
			Width:      s.Width,
			Height:     s.Height,
			Background: hexOf(s.Background),
			Palette:    s.Palette,
		},
		Turtle: TurtleConfig{
			StrokeWidth:   s.StrokeWidth,
			StepSize:      s.StepSize,
			TurnBias:      s.TurnBias,
			SpawnProb:     s.SpawnProb,
			PrefTurn:      s.PrefTurn,
			Phaser:        s.Phaser,
			SpiralSpacing: s.SpiralSpacing,
			MaxPhase:      s.MaxPhase,
		},
		Probe: ProbeConfig{
			OpacityThreshold: s.Probe.OpacityThreshold,
			ChannelThreshold: s.Probe.ChannelThreshold,
			StrideDeg:        s.Probe.StrideDeg,
		},
		Preview: PreviewConfig{
			FrameEvery:    s.FrameEvery,
			FPS:           DefaultPreviewFPS,
			RecordStrokes: s.RecordStrokes,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults of the variant it names, so a
// file only needs the fields it changes.
func Parse(data []byte) (*Config, error) {
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg := DefaultConfig()
	if head.Variant != "" {
		cfg = ForVariant(head.Variant)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
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

// ToSim converts the file form into run settings and validates them.
func (c *Config) ToSim() (sim.Config, error) {
	bg, err := turtle.ParseHex(c.Canvas.Background)
	if err != nil {
		return sim.Config{}, fmt.Errorf("%w: background: %v", sim.ErrInvalidConfig, err)
	}
	if _, err := palette.Sequential(c.Canvas.Palette, 1); err != nil {
		return sim.Config{}, err
	}

	s := sim.Config{
		Variant:       c.Variant,
		Width:         c.Canvas.Width,
		Height:        c.Canvas.Height,
		Background:    bg,
		Palette:       c.Canvas.Palette,
		Seeds:         c.Seeds,
		Seed:          c.Seed,
		StrokeWidth:   c.Turtle.StrokeWidth,
		StepSize:      c.Turtle.StepSize,
		TurnBias:      c.Turtle.TurnBias,
		SpawnProb:     c.Turtle.SpawnProb,
		PrefTurn:      c.Turtle.PrefTurn,
		Phaser:        c.Turtle.Phaser,
		SpiralSpacing: c.Turtle.SpiralSpacing,
		MaxPhase:      c.Turtle.MaxPhase,
		Probe: turtle.Probe{
			OpacityThreshold: c.Probe.OpacityThreshold,
			ChannelThreshold: c.Probe.ChannelThreshold,
			StrideDeg:        c.Probe.StrideDeg,
		},
		MaxTicks:      c.MaxTicks,
		FrameEvery:    c.Preview.FrameEvery,
		RecordStrokes: c.Preview.RecordStrokes,
	}
	if err := s.Validate(); err != nil {
		return sim.Config{}, err
	}
	return s, nil
}

func hexOf(c raster.RGB) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
