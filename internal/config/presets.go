package config

import "sort"

// Presets holds named starting points per variant. Values are applied on
// top of the variant defaults by GetPreset.
var Presets = map[string]map[string]func(*Config){
	"snake": {
		"classic": func(c *Config) {},
		"tight": func(c *Config) {
			c.Turtle.StrokeWidth = 4
			c.Turtle.TurnBias = 0.35
			c.Seeds = 12
		},
		"loose": func(c *Config) {
			c.Turtle.StrokeWidth = 14
			c.Turtle.TurnBias = 0.05
			c.Turtle.SpawnProb = 0.04
			c.Seeds = 4
		},
		"dense": func(c *Config) {
			c.Turtle.StrokeWidth = 6
			c.Turtle.SpawnProb = 0.3
			c.Seeds = 24
			c.Canvas.Palette = "teal"
		},
	},
	"spiral": {
		"classic": func(c *Config) {},
		"branching": func(c *Config) {
			c.Turtle.SpawnProb = 0.05
			c.Canvas.Palette = "purp"
		},
		"wide": func(c *Config) {
			c.Turtle.SpiralSpacing = 3
			c.Turtle.PrefTurn = 35
			c.Seeds = 4
		},
	},
}

// GetPreset returns a fresh config for the preset, or nil if the variant
// or preset is unknown.
func GetPreset(variant, preset string) *Config {
	variantPresets, ok := Presets[variant]
	if !ok {
		return nil
	}
	apply, ok := variantPresets[preset]
	if !ok {
		return nil
	}
	cfg := ForVariant(variant)
	apply(cfg)
	return cfg
}

func ListPresets(variant string) []string {
	variantPresets, ok := Presets[variant]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variantPresets))
	for name := range variantPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
