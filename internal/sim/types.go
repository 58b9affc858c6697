package sim

import (
	"image"
	"math/rand"

	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/turtle"
)

// Policy decides how the turtles of one variant move and branch.
type Policy interface {
	Name() string
	// StepSize is the distance of a regular move.
	StepSize(t *turtle.Turtle) float64
	// Candidates returns the turn offsets to try this tick, in order.
	Candidates(t *turtle.Turtle, rng *rand.Rand) []float64
	// Advance runs after a successful move.
	Advance(t *turtle.Turtle)
	// Branch returns the turns a clone of t should try, in order. An empty
	// result means no spawn this tick.
	Branch(t *turtle.Turtle, rng *rand.Rand) []float64
}

// TickStats summarizes one pass over the population.
type TickStats struct {
	Tick     int `json:"tick"`
	Live     int `json:"live"`
	Moves    int `json:"moves"`
	Bypasses int `json:"bypasses"`
	Spawns   int `json:"spawns"`
	Removals int `json:"removals"`
}

type Metric interface {
	Name() string
	Observe(s TickStats)
	Value() float64
	Reset()
}

// Frame is a copy of the canvas handed to observers. Observers never see
// the live canvas.
type Frame struct {
	Tick  int
	Live  int
	Image *image.RGBA
	Final bool
	// Stats is the tick that produced the frame; zero before the first tick.
	Stats TickStats
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Config struct {
	Variant    string
	Width      int
	Height     int
	Background raster.RGB
	Palette    string
	Seeds      int
	Seed       int64

	StrokeWidth float64
	// StepSize overrides the variant's move distance when positive.
	StepSize float64
	// A snake turtle prefers turning when |U-0.5| < TurnBias.
	TurnBias float64
	// A turtle tries to spawn when |U-0.5| < SpawnProb, so the per-tick
	// chance is 2*SpawnProb.
	SpawnProb float64
	PrefTurn  float64
	Phaser    bool
	// SpiralSpacing is the gap between spiral arms in stroke widths.
	SpiralSpacing float64
	MaxPhase      int

	Probe turtle.Probe

	// MaxTicks stops a run early when positive.
	MaxTicks int
	// FrameEvery sends a frame to observers every n ticks.
	FrameEvery    int
	RecordStrokes bool
}

type Result struct {
	Seed     int64
	Ticks    int
	History  []TickStats
	Metrics  map[string]float64
	Coverage float64
	Image    *image.RGBA
	Strokes  []raster.Segment
}
