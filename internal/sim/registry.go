package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/turtlesim/internal/palette"
	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/turtle"
)

const (
	DefaultWidth         = 512
	DefaultHeight        = 512
	DefaultStrokeWidth   = 10.0
	DefaultSeeds         = 8
	DefaultTurnBias      = 0.2
	DefaultSpawnProb     = 0.1
	DefaultPrefTurn      = 50.0
	DefaultSpiralSpacing = 2.0
	DefaultFrameEvery    = 10

	// MaxPrefTurn bounds the spiral's starting turn, in degrees either way.
	MaxPrefTurn = 90.0
)

var policies = map[string]func(Config) Policy{
	"snake": func(cfg Config) Policy {
		return &Snake{TurnBias: cfg.TurnBias, SpawnProb: cfg.SpawnProb, Step: cfg.StepSize}
	},
	"spiral": func(cfg Config) Policy {
		return &Spiral{SpawnProb: cfg.SpawnProb, Spacing: cfg.SpiralSpacing, Step: cfg.StepSize}
	},
}

// NewPolicy builds the policy named by cfg.Variant.
func NewPolicy(cfg Config) (Policy, error) {
	fn, ok := policies[cfg.Variant]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownVariant, cfg.Variant, Variants())
	}
	return fn(cfg), nil
}

func Variants() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultConfig returns the settings the given variant was designed with.
// Unknown variants get the snake settings and fail later in Validate.
func DefaultConfig(variant string) Config {
	cfg := Config{
		Variant:       variant,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Background:    raster.White,
		Palette:       palette.Default,
		Seeds:         DefaultSeeds,
		Seed:          1,
		StrokeWidth:   DefaultStrokeWidth,
		TurnBias:      DefaultTurnBias,
		SpawnProb:     DefaultSpawnProb,
		SpiralSpacing: DefaultSpiralSpacing,
		MaxPhase:      turtle.DefaultMaxPhase,
		Probe:         turtle.DefaultProbe(),
		FrameEvery:    DefaultFrameEvery,
	}
	if variant == "spiral" {
		cfg.PrefTurn = DefaultPrefTurn
		cfg.Phaser = true
		cfg.SpawnProb = 0
	}
	return cfg
}

// Validate checks the fields a run depends on.
func (c Config) Validate() error {
	if _, ok := policies[c.Variant]; !ok {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownVariant, c.Variant, Variants())
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"stroke width", c.StrokeWidth},
		{"step size", c.StepSize},
		{"turn bias", c.TurnBias},
		{"spawn probability", c.SpawnProb},
		{"pref turn", c.PrefTurn},
		{"spiral spacing", c.SpiralSpacing},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %f", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("%w: stroke width must be positive, got %f", ErrInvalidConfig, c.StrokeWidth)
	case c.StepSize < 0:
		return fmt.Errorf("%w: step size must not be negative, got %f", ErrInvalidConfig, c.StepSize)
	case c.Seeds < 0:
		return fmt.Errorf("%w: seeds must not be negative, got %d", ErrInvalidConfig, c.Seeds)
	case c.TurnBias < 0 || c.TurnBias > 0.5:
		return fmt.Errorf("%w: turn bias must be in [0,0.5], got %f", ErrInvalidConfig, c.TurnBias)
	case c.SpawnProb < 0 || c.SpawnProb > 0.5:
		return fmt.Errorf("%w: spawn probability must be in [0,0.5], got %f", ErrInvalidConfig, c.SpawnProb)
	case c.MaxPhase < 0:
		return fmt.Errorf("%w: max phase must not be negative, got %d", ErrInvalidConfig, c.MaxPhase)
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: max ticks must not be negative, got %d", ErrInvalidConfig, c.MaxTicks)
	}
	if c.Variant == "spiral" {
		if c.SpiralSpacing <= 0 {
			return fmt.Errorf("%w: spiral spacing must be positive, got %f", ErrInvalidConfig, c.SpiralSpacing)
		}
		if math.Abs(c.PrefTurn) > MaxPrefTurn {
			return fmt.Errorf("%w: pref turn must be within ±%.0f, got %f", ErrInvalidConfig, MaxPrefTurn, c.PrefTurn)
		}
		sp := &Spiral{Spacing: c.SpiralSpacing, Step: c.StepSize}
		if !sp.Converges(c.StrokeWidth, c.PrefTurn) {
			return fmt.Errorf("%w: pref turn %f diverges at spacing %f and step %f",
				ErrInvalidConfig, c.PrefTurn, c.SpiralSpacing, sp.step(c.StrokeWidth))
		}
	}
	return nil
}
