package raster

// Segment is one committed stroke.
type Segment struct {
	From, To Point
	Color    RGB
	Width    float64
}

// Recorder forwards to another Canvas and keeps every segment drawn through
// it, so a run can be re-emitted as vector output.
type Recorder struct {
	Canvas
	segments []Segment
}

func NewRecorder(c Canvas) *Recorder {
	return &Recorder{Canvas: c, segments: make([]Segment, 0, 1024)}
}

func (r *Recorder) DrawSegment(p0, p1 Point, c RGB, strokeWidth float64) {
	r.segments = append(r.segments, Segment{From: p0, To: p1, Color: c, Width: strokeWidth})
	r.Canvas.DrawSegment(p0, p1, c, strokeWidth)
}

// Segments returns the recorded strokes in draw order.
func (r *Recorder) Segments() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}
