package export

import (
	"bytes"
	"errors"
	"image/gif"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/sim"
)

func TestWritePNGKeepsPixels(t *testing.T) {
	c := raster.New(30, 20, raster.White)
	c.DrawSegment(raster.Point{X: 2, Y: 10}, raster.Point{X: 28, Y: 10}, raster.Black, 4)
	src := c.Snapshot()

	var buf bytes.Buffer
	if err := WritePNG(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds %v, want %v", img.Bounds(), src.Bounds())
	}
	for _, p := range [][2]int{{15, 10}, {15, 2}, {0, 0}} {
		r, g, b, _ := img.At(p[0], p[1]).RGBA()
		sr, sg, sb, _ := src.At(p[0], p[1]).RGBA()
		if r != sr || g != sg || b != sb {
			t.Errorf("pixel %v changed", p)
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, raster.New(4, 4, raster.White).Snapshot()); err != nil {
		t.Fatal(err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), raster.New(4, 4, raster.White).Snapshot()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWriteSVGOneLinePerStroke(t *testing.T) {
	strokes := []raster.Segment{
		{From: raster.Point{X: 1, Y: 1}, To: raster.Point{X: 10, Y: 1}, Color: raster.RGB{R: 1}, Width: 2},
		{From: raster.Point{X: 10, Y: 1}, To: raster.Point{X: 10, Y: 8.5}, Color: raster.Black, Width: 2},
		{From: raster.Point{X: 3, Y: 3}, To: raster.Point{X: 4, Y: 4}, Color: raster.RGB{G: 1}, Width: 0.5},
	}

	var buf bytes.Buffer
	WriteSVG(&buf, 20, 10, raster.White, strokes)
	out := buf.String()

	if n := strings.Count(out, "<line"); n != len(strokes) {
		t.Errorf("expected %d lines, got %d", len(strokes), n)
	}
	for _, want := range []string{
		`viewBox="0 0 200 100"`,
		"fill:#ffffff",
		"stroke:#ff0000",
		"stroke-linecap:round",
		`y2="85"`,
		"stroke-width:5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("document not closed")
	}
}

func TestGIFRecorder(t *testing.T) {
	rec := NewGIFRecorder(40, 5)

	var buf bytes.Buffer
	if err := rec.Encode(&buf); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}

	c := raster.New(80, 60, raster.White)
	rec.OnFrame(sim.Frame{Tick: 1, Image: c.Snapshot()})
	c.DrawSegment(raster.Point{X: 10, Y: 30}, raster.Point{X: 70, Y: 30}, raster.Black, 6)
	rec.OnFrame(sim.Frame{Tick: 2, Image: c.Snapshot(), Final: true})
	rec.OnFrame(sim.Frame{Tick: 3})

	if rec.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", rec.Len())
	}

	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Fatalf("decoded %d frames", len(anim.Image))
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("frame not scaled: %v", b)
	}
	if anim.Delay[0] != 5 || anim.Delay[1] != 50 {
		t.Errorf("unexpected delays %v", anim.Delay)
	}

	r, _, _, _ := anim.Image[1].At(20, 15).RGBA()
	if r > 0x4000 {
		t.Errorf("stroke missing from last frame, red=%#x", r)
	}
}
