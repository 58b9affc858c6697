// Package sim runs turtle populations until they exhaust the canvas.
//
// The package ties the pieces of a run together:
//
//   - [Policy]: per-variant move, update and branch rules ([Snake], [Spiral])
//   - [Population]: the live set, advanced one [Population.Tick] at a time
//   - [Simulator]: builds a run from a [Config] and drives it to completion
//   - [Ensemble]: independent runs over consecutive seeds
//
// # Example
//
//	cfg := sim.DefaultConfig("snake")
//	cfg.Seed = 42
//	s, _ := sim.New(cfg)
//	result, _ := s.Run(ctx)
//
// # Determinism
//
// A run draws every random number from one generator seeded with
// Config.Seed, and ticks visit turtles in a fixed order, so equal configs
// produce identical images. Simulator instances are NOT thread-safe;
// observers receive copies of the canvas and may hand them to other
// goroutines.
package sim
