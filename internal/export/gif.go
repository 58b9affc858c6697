package export

import (
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"

	"github.com/san-kum/turtlesim/internal/sim"
)

// GIFRecorder collects observer frames into an animation. Frames wider
// than MaxWidth are scaled down before quantizing.
type GIFRecorder struct {
	MaxWidth int
	// Delay between frames in 100ths of a second.
	Delay int

	mu     sync.Mutex
	frames []*image.Paletted
}

func NewGIFRecorder(maxWidth, delay int) *GIFRecorder {
	return &GIFRecorder{MaxWidth: maxWidth, Delay: delay}
}

func (g *GIFRecorder) OnFrame(f sim.Frame) {
	if f.Image == nil {
		return
	}
	src := f.Image
	bounds := src.Bounds()
	dst := bounds
	if g.MaxWidth > 0 && bounds.Dx() > g.MaxWidth {
		h := bounds.Dy() * g.MaxWidth / bounds.Dx()
		if h < 1 {
			h = 1
		}
		dst = image.Rect(0, 0, g.MaxWidth, h)
	}

	var scaled image.Image = src
	if dst != bounds {
		tmp := image.NewRGBA(dst)
		draw.ApproxBiLinear.Scale(tmp, dst, src, bounds, draw.Src, nil)
		scaled = tmp
	}

	pal := image.NewPaletted(dst, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, dst, scaled, dst.Min)

	g.mu.Lock()
	g.frames = append(g.frames, pal)
	g.mu.Unlock()
}

func (g *GIFRecorder) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.frames)
}

// Encode writes the collected frames as a looping animation. The last
// frame is held ten times longer.
func (g *GIFRecorder) Encode(w io.Writer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.frames) == 0 {
		return ErrNoFrames
	}

	anim := gif.GIF{LoopCount: 0}
	for i, frame := range g.frames {
		delay := g.Delay
		if i == len(g.frames)-1 {
			delay *= 10
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
