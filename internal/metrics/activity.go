package metrics

import (
	"github.com/san-kum/turtlesim/internal/sim"
)

// SpawnRate is the number of branches that stepped off per successful move.
type SpawnRate struct {
	name   string
	spawns int
	moves  int
}

func NewSpawnRate() *SpawnRate {
	return &SpawnRate{
		name: "spawn_rate",
	}
}

func (r *SpawnRate) Name() string {
	return r.name
}

func (r *SpawnRate) Observe(s sim.TickStats) {
	r.spawns += s.Spawns
	r.moves += s.Moves
}

func (r *SpawnRate) Value() float64 {
	if r.moves == 0 {
		return 0
	}
	return float64(r.spawns) / float64(r.moves)
}

func (r *SpawnRate) Reset() {
	r.spawns = 0
	r.moves = 0
}

// BypassRatio is the share of moves made with the pen lifted over an
// obstacle. It stays zero for variants without a phaser.
type BypassRatio struct {
	name     string
	bypasses int
	moves    int
}

func NewBypassRatio() *BypassRatio {
	return &BypassRatio{
		name: "bypass_ratio",
	}
}

func (b *BypassRatio) Name() string { return b.name }

func (b *BypassRatio) Observe(s sim.TickStats) {
	b.bypasses += s.Bypasses
	b.moves += s.Moves
}

func (b *BypassRatio) Value() float64 {
	if b.moves == 0 {
		return 0
	}
	return float64(b.bypasses) / float64(b.moves)
}

func (b *BypassRatio) Reset() {
	b.bypasses = 0
	b.moves = 0
}

// Defaults returns a fresh set of the metrics every run reports.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewPeakPopulation(),
		NewMeanPopulation(),
		NewSpawnRate(),
		NewBypassRatio(),
	}
}
