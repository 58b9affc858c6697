package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/turtlesim/internal/config"
)

func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// resolveConfig layers the run settings: variant defaults, then the preset,
// then the config file, then any flag set on the command line.
func resolveConfig(cmd *cobra.Command, variant string) (*config.Config, error) {
	var cfg *config.Config

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if variant != "" && variant != cfg.Variant {
			return nil, fmt.Errorf("config file is for %s, not %s", cfg.Variant, variant)
		}
	}

	if variant == "" {
		variant = config.DefaultVariant
		if cfg != nil {
			variant = cfg.Variant
		}
	}

	if preset != "" {
		p := config.GetPreset(variant, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(variant))
		}
		if cfg == nil {
			cfg = p
		}
	}
	if cfg == nil {
		cfg = config.ForVariant(variant)
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	} else if configFile == "" || cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	changed := cmd.Flags().Changed
	if changed("seeds") {
		cfg.Seeds = seeds
	}
	if changed("width") {
		cfg.Canvas.Width = width
	}
	if changed("height") {
		cfg.Canvas.Height = height
	}
	if changed("background") {
		cfg.Canvas.Background = background
	}
	if changed("palette") {
		cfg.Canvas.Palette = paletteArg
	}
	if changed("stroke") {
		cfg.Turtle.StrokeWidth = stroke
	}
	if changed("step") {
		cfg.Turtle.StepSize = stepSize
	}
	if changed("turn-bias") {
		cfg.Turtle.TurnBias = turnBias
	}
	if changed("spawn-prob") {
		cfg.Turtle.SpawnProb = spawnProb
	}
	if changed("pref-turn") {
		cfg.Turtle.PrefTurn = prefTurn
	}
	if changed("phaser") {
		cfg.Turtle.Phaser = phaser
	}
	if changed("spacing") {
		cfg.Turtle.SpiralSpacing = spacing
	}
	if changed("max-phase") {
		cfg.Turtle.MaxPhase = maxPhase
	}
	if changed("max-ticks") {
		cfg.MaxTicks = maxTicks
	}
	if changed("frame-every") {
		cfg.Preview.FrameEvery = frameEvery
	}
	if changed("strokes") {
		cfg.Preview.RecordStrokes = strokes
	}
	return cfg, nil
}
