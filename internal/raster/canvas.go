package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// RGB is a color with each channel in [0,1].
type RGB struct {
	R, G, B float64
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// Clamp limits every channel to [0,1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// NRGBA converts c to an opaque 8-bit color.
func (c RGB) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a location in canvas coordinates, y growing downward.
type Point struct {
	X, Y float64
}

// Coverage is the raw content of one pixel. Channels are premultiplied by
// alpha, the way they sit in the backing buffer.
type Coverage struct {
	R, G, B, A uint8
}

// Canvas is a fixed-size pixel buffer shared by every turtle of a run.
// Pixels are only ever painted over, never cleared.
type Canvas interface {
	Width() int
	Height() int
	DrawSegment(p0, p1 Point, c RGB, strokeWidth float64)
	// At reports the pixel at (x, y); ok is false outside the canvas.
	At(x, y int) (cov Coverage, ok bool)
	// Snapshot returns a copy of the current pixels.
	Snapshot() *image.RGBA
}

// Image is a Canvas backed by an *image.RGBA and drawn with gg.
type Image struct {
	im *image.RGBA
	dc *gg.Context
}

// New allocates a width x height canvas filled with bg.
func New(width, height int, bg RGB) *Image {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	dc := gg.NewContextForRGBA(im)
	bg = bg.Clamp()
	dc.SetRGB(bg.R, bg.G, bg.B)
	dc.Clear()
	dc.SetLineCap(gg.LineCapRound)
	return &Image{im: im, dc: dc}
}

// FromRGBA wraps an existing buffer, such as a snapshot, so it can be
// probed or drawn on. The buffer is shared, not copied.
func FromRGBA(im *image.RGBA) *Image {
	dc := gg.NewContextForRGBA(im)
	dc.SetLineCap(gg.LineCapRound)
	return &Image{im: im, dc: dc}
}

func (c *Image) Width() int  { return c.im.Rect.Dx() }
func (c *Image) Height() int { return c.im.Rect.Dy() }

// DrawSegment strokes a straight line with round caps.
func (c *Image) DrawSegment(p0, p1 Point, col RGB, strokeWidth float64) {
	col = col.Clamp()
	c.dc.SetRGB(col.R, col.G, col.B)
	c.dc.SetLineWidth(strokeWidth)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	c.dc.Stroke()
}

func (c *Image) At(x, y int) (Coverage, bool) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return Coverage{}, false
	}
	i := c.im.PixOffset(x, y)
	p := c.im.Pix[i : i+4 : i+4]
	return Coverage{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}

func (c *Image) Snapshot() *image.RGBA {
	dst := image.NewRGBA(c.im.Rect)
	copy(dst.Pix, c.im.Pix)
	return dst
}

// RGBA exposes the live backing image. Callers must not write to it.
func (c *Image) RGBA() *image.RGBA { return c.im }
