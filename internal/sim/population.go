package sim

import (
	"math/rand"

	"github.com/san-kum/turtlesim/internal/turtle"
)

// Population is the set of live turtles of one run. It owns its turtles;
// a spawned branch is a separate value, never an alias of its parent.
type Population struct {
	turtles []*turtle.Turtle
	policy  Policy
	rng     *rand.Rand
	tick    int
}

func NewPopulation(policy Policy, rng *rand.Rand, seeds ...*turtle.Turtle) *Population {
	p := &Population{
		turtles: make([]*turtle.Turtle, 0, len(seeds)),
		policy:  policy,
		rng:     rng,
	}
	for _, t := range seeds {
		p.Add(t)
	}
	return p
}

func (p *Population) Add(t *turtle.Turtle) {
	if t != nil {
		p.turtles = append(p.turtles, t)
	}
}

func (p *Population) Len() int    { return len(p.turtles) }
func (p *Population) Empty() bool { return len(p.turtles) == 0 }
func (p *Population) Ticks() int  { return p.tick }

// Turtles returns the live turtles in iteration order.
func (p *Population) Turtles() []*turtle.Turtle {
	out := make([]*turtle.Turtle, len(p.turtles))
	copy(out, p.turtles)
	return out
}

// Tick gives every live turtle one move attempt. Exhausted turtles are
// dropped and new branches joined only after the pass, so the pass always
// walks the set that was live when it started.
func (p *Population) Tick() TickStats {
	p.tick++
	stats := TickStats{Tick: p.tick}

	alive := p.turtles[:0]
	var spawned []*turtle.Turtle

	for _, t := range p.turtles {
		out, ok := p.move(t)
		if !ok {
			stats.Removals++
			logger().Debug("turtle retired", "tick", p.tick, "x", t.Position().X, "y", t.Position().Y)
			continue
		}
		alive = append(alive, t)
		stats.Moves++
		if out == turtle.Bypassed {
			stats.Bypasses++
		}

		p.policy.Advance(t)

		if c := p.branch(t); c != nil {
			spawned = append(spawned, c)
			stats.Spawns++
		}
	}

	for i := len(alive); i < len(p.turtles); i++ {
		p.turtles[i] = nil
	}
	p.turtles = append(alive, spawned...)
	stats.Live = len(p.turtles)
	return stats
}

// move tries each candidate turn, undoing it when the step is refused.
func (p *Population) move(t *turtle.Turtle) (turtle.Outcome, bool) {
	step := p.policy.StepSize(t)
	for _, turn := range p.policy.Candidates(t, p.rng) {
		t.TurnRight(turn)
		if out := t.Forward(step, true); out.Moved() {
			return out, true
		}
		t.TurnLeft(turn)
	}
	return turtle.Refused, false
}

// branch clones t and tries to step the clone off at each offered turn.
func (p *Population) branch(t *turtle.Turtle) *turtle.Turtle {
	turns := p.policy.Branch(t, p.rng)
	if len(turns) == 0 {
		return nil
	}
	c := t.Clone()
	for _, turn := range turns {
		c.TurnRight(turn)
		if c.Forward(c.StrokeWidth(), true).Moved() {
			return c
		}
		c.TurnLeft(turn)
	}
	return nil
}
