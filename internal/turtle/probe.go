package turtle

import (
	"math"

	"github.com/san-kum/turtlesim/internal/raster"
)

const (
	DefaultOpacityThreshold = 10
	DefaultChannelThreshold = 250
	DefaultProbeStride      = 30
)

// Hit classifies what a probe ran into.
type Hit uint8

const (
	HitNone Hit = iota
	HitStroke
	HitEdge
)

func (h Hit) String() string {
	switch h {
	case HitStroke:
		return "stroke"
	case HitEdge:
		return "edge"
	default:
		return "none"
	}
}

// Blocked reports whether the probe found anything. Edges and strokes are
// the same obstacle to a turtle.
func (h Hit) Blocked() bool { return h != HitNone }

// Probe samples a ring of pixels around a location to decide whether that
// area has already been drawn.
//
// The thresholds were tuned against opaque white backgrounds with 8-bit
// premultiplied pixels; other formats may need different values.
type Probe struct {
	// A translucent pixel counts as drawn above this alpha.
	OpacityThreshold uint8
	// An opaque pixel counts as drawn if any channel is below this.
	ChannelThreshold uint8
	// Angular distance between ring samples, in degrees.
	StrideDeg int
}

func DefaultProbe() Probe {
	return Probe{
		OpacityThreshold: DefaultOpacityThreshold,
		ChannelThreshold: DefaultChannelThreshold,
		StrideDeg:        DefaultProbeStride,
	}
}

// Check samples the ring of radius margin around (x, y). With fullCircle
// unset only the semicircle within ±90° of heading is sampled, which keeps
// a turtle from tripping over the stroke it just left behind.
func (p Probe) Check(c raster.Canvas, x, y, heading, margin float64, fullCircle bool) Hit {
	cx := math.RoundToEven(x)
	cy := math.RoundToEven(y)
	r := math.RoundToEven(margin)

	span := 90
	if fullCircle {
		span = 180
	}
	stride := p.StrideDeg
	if stride <= 0 {
		stride = DefaultProbeStride
	}

	for d := -span; d <= span; d += stride {
		rad := (heading + float64(d)) * math.Pi / 180
		px := int(math.RoundToEven(cx + r*math.Cos(rad)))
		py := int(math.RoundToEven(cy - r*math.Sin(rad)))
		if h := p.Pixel(c, px, py); h.Blocked() {
			return h
		}
	}
	return HitNone
}

// Pixel classifies a single pixel.
func (p Probe) Pixel(c raster.Canvas, x, y int) Hit {
	cov, ok := c.At(x, y)
	if !ok {
		return HitEdge
	}
	if p.Drawn(cov) {
		return HitStroke
	}
	return HitNone
}

// Drawn reports whether a pixel differs from the background.
func (p Probe) Drawn(cov raster.Coverage) bool {
	switch {
	case cov.A == 0:
		return false
	case cov.A < 255:
		return cov.A > p.OpacityThreshold
	default:
		return cov.R < p.ChannelThreshold || cov.G < p.ChannelThreshold || cov.B < p.ChannelThreshold
	}
}

// Coverage returns the fraction of canvas pixels Drawn would flag.
func (p Probe) Coverage(c raster.Canvas) float64 {
	w, h := c.Width(), c.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	drawn := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cov, ok := c.At(x, y); ok && p.Drawn(cov) {
				drawn++
			}
		}
	}
	return float64(drawn) / float64(w*h)
}
