package turtle

import (
	"math"

	"github.com/san-kum/turtlesim/internal/raster"
)

// DefaultMaxPhase caps consecutive bypassed moves for a phasing turtle.
const DefaultMaxPhase = 500

// Outcome is the result of a Forward call.
type Outcome uint8

const (
	// Committed means the move happened with no collision.
	Committed Outcome = iota
	// Bypassed means the move collided but a phasing turtle went through
	// with its pen lifted.
	Bypassed
	// Refused means the move collided and nothing changed.
	Refused
	// PhaseLimitExceeded is a refusal of a phasing turtle that has already
	// bypassed the maximum number of moves in a row.
	PhaseLimitExceeded
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Bypassed:
		return "bypassed"
	case Refused:
		return "refused"
	case PhaseLimitExceeded:
		return "phase-limit"
	default:
		return "unknown"
	}
}

// Moved reports whether the turtle changed position.
func (o Outcome) Moved() bool { return o == Committed || o == Bypassed }

// Turtle is a pen-carrying agent on a shared canvas. All of its state is
// plain values, so copying a Turtle yields a fully independent agent.
type Turtle struct {
	canvas raster.Canvas
	probe  Probe

	x, y    float64
	heading float64
	penDown bool
	anchor  raster.Point

	strokeWidth float64
	prefTurn    float64
	phaser      bool
	phaseCount  int
	maxPhase    int
	color       raster.RGB
}

// Option configures a Turtle in New.
type Option func(*Turtle)

// WithStrokeWidth sets the pen width, which is also the probe margin.
func WithStrokeWidth(w float64) Option { return func(t *Turtle) { t.strokeWidth = w } }

// WithPrefTurn sets the initial preferred turn in degrees.
func WithPrefTurn(deg float64) Option { return func(t *Turtle) { t.prefTurn = deg } }

// WithPhaser lets the turtle pass through drawn areas with its pen up.
func WithPhaser(on bool) Option { return func(t *Turtle) { t.phaser = on } }

// WithMaxPhase caps how many moves in a row a phaser may bypass.
func WithMaxPhase(n int) Option { return func(t *Turtle) { t.maxPhase = n } }

// WithProbe replaces the default collision thresholds.
func WithProbe(p Probe) Option { return func(t *Turtle) { t.probe = p } }

// WithColor sets the pen color; channels are clamped to [0,1].
func WithColor(c raster.RGB) Option { return func(t *Turtle) { t.color = c.Clamp() } }

// New places a turtle at (x, y) facing heading degrees with its pen down.
func New(c raster.Canvas, x, y, heading float64, opts ...Option) *Turtle {
	t := &Turtle{
		canvas:      c,
		probe:       DefaultProbe(),
		x:           x,
		y:           y,
		heading:     normalize(heading),
		penDown:     true,
		anchor:      raster.Point{X: x, Y: y},
		strokeWidth: 1,
		maxPhase:    DefaultMaxPhase,
		color:       raster.Black,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Clone returns an independent copy sharing only the canvas handle.
func (t *Turtle) Clone() *Turtle {
	c := *t
	return &c
}

func (t *Turtle) Position() raster.Point { return raster.Point{X: t.x, Y: t.y} }
func (t *Turtle) Heading() float64       { return t.heading }
func (t *Turtle) IsDown() bool           { return t.penDown }
func (t *Turtle) StrokeWidth() float64   { return t.strokeWidth }
func (t *Turtle) PrefTurn() float64      { return t.prefTurn }
func (t *Turtle) PhaseCount() int        { return t.phaseCount }
func (t *Turtle) Phaser() bool           { return t.phaser }
func (t *Turtle) Color() raster.RGB      { return t.color }

// SetPrefTurn replaces the preferred turn, in degrees. NaN and infinite
// values are ignored.
func (t *Turtle) SetPrefTurn(deg float64) {
	if finite(deg) {
		t.prefTurn = deg
	}
}

// Forward moves distance units along the heading. When check is set the
// destination is probed first; see Outcome for what a collision does.
func (t *Turtle) Forward(distance float64, check bool) Outcome {
	rad := t.heading * math.Pi / 180
	nx := t.x + distance*math.Cos(rad)
	ny := t.y - distance*math.Sin(rad)

	outcome := Committed
	if check && t.collides(nx, ny) {
		if !t.phaser {
			return Refused
		}
		if t.phaseCount >= t.maxPhase {
			return PhaseLimitExceeded
		}
		t.phaseCount++
		t.PenUp()
		outcome = Bypassed
	} else {
		t.phaseCount = 0
		t.PenDown()
	}

	if t.penDown {
		to := raster.Point{X: nx, Y: ny}
		t.canvas.DrawSegment(raster.Point{X: t.x, Y: t.y}, to, t.color, t.strokeWidth)
		t.anchor = to
	}
	t.x, t.y = nx, ny
	return outcome
}

func (t *Turtle) collides(nx, ny float64) bool {
	if t.probe.Check(t.canvas, nx, ny, t.heading, t.strokeWidth, false).Blocked() {
		return true
	}
	return t.phaseCount > 0 && t.probe.Check(t.canvas, t.x, t.y, t.heading, t.strokeWidth, true).Blocked()
}

// TurnRight turns clockwise. A NaN or infinite angle leaves the heading
// unchanged.
func (t *Turtle) TurnRight(deg float64) {
	if finite(deg) {
		t.heading = normalize(t.heading - deg)
	}
}

// TurnLeft turns counter-clockwise, with the same guard as TurnRight.
func (t *Turtle) TurnLeft(deg float64) {
	if finite(deg) {
		t.heading = normalize(t.heading + deg)
	}
}

func (t *Turtle) PenUp() { t.penDown = false }

// PenDown starts a fresh path at the current position so the next stroke
// does not join whatever was drawn before a gap.
func (t *Turtle) PenDown() {
	t.penDown = true
	t.anchor = raster.Point{X: t.x, Y: t.y}
}

// SetColor accepts "#RRGGBB".
func (t *Turtle) SetColor(hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	t.color = c
	return nil
}

// SetRGB accepts channels in [0,1]; out of range values are clamped.
func (t *Turtle) SetRGB(c raster.RGB) { t.color = c.Clamp() }

// Goto teleports to (x, y), drawing a straight line there if the pen is down.
func (t *Turtle) Goto(x, y float64) {
	to := raster.Point{X: x, Y: y}
	if t.penDown {
		t.canvas.DrawSegment(t.anchor, to, t.color, t.strokeWidth)
	}
	t.anchor = to
	t.x, t.y = x, y
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// normalize maps deg into [0,360). Non-finite input becomes 0.
func normalize(deg float64) float64 {
	if !finite(deg) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}
