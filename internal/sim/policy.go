package sim

import (
	"math"
	"math/rand"

	"github.com/san-kum/turtlesim/internal/turtle"
)

// Snake wanders with small random turns and branches at right angles,
// filling the canvas with maze-like corridors.
type Snake struct {
	TurnBias  float64
	SpawnProb float64
	Step      float64
}

func (s *Snake) Name() string { return "snake" }

func (s *Snake) StepSize(t *turtle.Turtle) float64 {
	if s.Step > 0 {
		return s.Step
	}
	return t.StrokeWidth()
}

// Candidates goes straight first unless the draw falls inside the turn
// bias, in which case both turns are tried before going straight.
func (s *Snake) Candidates(t *turtle.Turtle, rng *rand.Rand) []float64 {
	turnRand := rng.Float64() - 0.5
	pref := math.Copysign(float64(10+rng.Intn(36)), turnRand)
	if math.Abs(turnRand) < s.TurnBias {
		return []float64{pref, -pref, 0}
	}
	return []float64{0, pref, -pref}
}

func (s *Snake) Advance(t *turtle.Turtle) {}

func (s *Snake) Branch(t *turtle.Turtle, rng *rand.Rand) []float64 {
	spawnRand := rng.Float64() - 0.5
	if math.Abs(spawnRand) >= s.SpawnProb {
		return nil
	}
	turn := math.Copysign(90, spawnRand)
	return []float64{turn, -turn}
}

// Spiral keeps turning by the turtle's preferred turn and relaxes it after
// every move so successive arms stay Spacing stroke widths apart, which
// approximates an Archimedean spiral.
type Spiral struct {
	SpawnProb float64
	Spacing   float64
	Step      float64
}

func (s *Spiral) Name() string { return "spiral" }

func (s *Spiral) StepSize(t *turtle.Turtle) float64 {
	return s.step(t.StrokeWidth())
}

func (s *Spiral) step(strokeWidth float64) float64 {
	if s.Step > 0 {
		return s.Step
	}
	return strokeWidth * 0.5
}

// Converges reports whether Advance shrinks a starting turn of prefTurn
// degrees toward zero. Each step maps r to r(1-k*r^2), which contracts
// only while k*r^2 < 2; beyond that the turn flips sign and grows.
func (s *Spiral) Converges(strokeWidth, prefTurn float64) bool {
	step := s.step(strokeWidth)
	if step <= 0 {
		return false
	}
	k := (s.Spacing * strokeWidth) / (step * 2 * math.Pi)
	rad := prefTurn * math.Pi / 180
	return k*rad*rad < 2
}

func (s *Spiral) Candidates(t *turtle.Turtle, rng *rand.Rand) []float64 {
	return []float64{t.PrefTurn()}
}

// Advance applies the leading term of the arc-length expansion: the turn
// per step that keeps arm spacing constant shrinks with the cube of the
// current turn.
func (s *Spiral) Advance(t *turtle.Turtle) {
	step := s.StepSize(t)
	if step <= 0 {
		return
	}
	rad := t.PrefTurn() * math.Pi / 180
	delta := (s.Spacing * t.StrokeWidth()) / (step * 2 * math.Pi) * rad * rad * rad
	t.SetPrefTurn(t.PrefTurn() - delta*180/math.Pi)
}

// Branch only fires while the turtle is drawing, and sends the clone to
// the outside of the curve.
func (s *Spiral) Branch(t *turtle.Turtle, rng *rand.Rand) []float64 {
	spawnRand := rng.Float64() - 0.5
	if math.Abs(spawnRand) >= s.SpawnProb || t.PhaseCount() != 0 {
		return nil
	}
	return []float64{math.Copysign(90, -t.PrefTurn())}
}
