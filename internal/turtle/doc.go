// Package turtle implements the drawing agent and its collision probe.
//
// A [Turtle] carries a position, a heading in degrees (0 along +x, counter
// clockwise positive, y inverted on screen) and a pen. [Turtle.Forward] can
// probe the destination before moving:
//
//	t := turtle.New(canvas, 100, 100, 0, turtle.WithStrokeWidth(10))
//	if !t.Forward(10, true).Moved() {
//		t.TurnRight(90)
//	}
//
// A refused move leaves the turtle exactly as it was. Turtles created with
// [WithPhaser] may instead pass through drawn areas with the pen lifted, up
// to [DefaultMaxPhase] moves in a row.
//
// # Probe
//
// [Probe] samples a ring of points at the stroke-width radius. Points off
// the canvas count as drawn, so canvas edges behave like walls.
package turtle
