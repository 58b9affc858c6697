package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/turtle"
)

// SeedTurtles places cfg.Seeds turtles on a grid with a pitch of two stroke
// widths, each facing one of the four axis directions. colors are assigned
// in order and may be shorter than the seed count.
func SeedTurtles(c raster.Canvas, rng *rand.Rand, cfg Config, colors []raster.RGB) ([]*turtle.Turtle, error) {
	pitch := cfg.StrokeWidth * 2
	cols := int(math.Floor(float64(c.Width()) / pitch))
	rows := int(math.Floor(float64(c.Height()) / pitch))
	if cfg.Seeds > 0 && (cols < 1 || rows < 1) {
		return nil, fmt.Errorf("%w: %dx%d canvas, stroke %.1f", ErrCanvasTooSmall, c.Width(), c.Height(), cfg.StrokeWidth)
	}

	seeds := make([]*turtle.Turtle, 0, cfg.Seeds)
	for i := 0; i < cfg.Seeds; i++ {
		x := float64(1+rng.Intn(cols)) * pitch
		y := float64(1+rng.Intn(rows)) * pitch
		heading := float64(rng.Intn(4)) * 90

		opts := []turtle.Option{
			turtle.WithStrokeWidth(cfg.StrokeWidth),
			turtle.WithProbe(cfg.Probe),
			turtle.WithMaxPhase(cfg.MaxPhase),
			turtle.WithPhaser(cfg.Phaser),
			turtle.WithPrefTurn(cfg.PrefTurn),
		}
		if i < len(colors) {
			opts = append(opts, turtle.WithColor(colors[i]))
		}
		seeds = append(seeds, turtle.New(c, x, y, heading, opts...))
	}
	return seeds, nil
}
