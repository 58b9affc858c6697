package raster

import (
	"testing"
)

func TestNewFillsBackground(t *testing.T) {
	c := New(16, 8, White)

	if c.Width() != 16 || c.Height() != 8 {
		t.Fatalf("expected 16x8, got %dx%d", c.Width(), c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cov, ok := c.At(x, y)
			if !ok {
				t.Fatalf("At(%d,%d) reported out of bounds", x, y)
			}
			if cov != (Coverage{255, 255, 255, 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want opaque white", x, y, cov)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	c := New(10, 10, White)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x at width", 10, 5},
		{"y at height", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := c.At(tt.x, tt.y); ok {
				t.Errorf("At(%d,%d) should be out of bounds", tt.x, tt.y)
			}
		})
	}
}

func TestDrawSegmentPaints(t *testing.T) {
	c := New(64, 64, White)
	c.DrawSegment(Point{10, 32}, Point{50, 32}, Black, 4)

	cov, _ := c.At(30, 32)
	if cov.A != 255 || cov.R > 10 {
		t.Errorf("expected dark pixel on the stroke, got %v", cov)
	}

	cov, _ = c.At(30, 10)
	if cov.R != 255 || cov.G != 255 || cov.B != 255 {
		t.Errorf("expected untouched pixel away from the stroke, got %v", cov)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New(32, 32, White)
	snap := c.Snapshot()

	c.DrawSegment(Point{0, 16}, Point{32, 16}, Black, 6)

	i := snap.PixOffset(16, 16)
	if snap.Pix[i] != 255 {
		t.Error("snapshot changed after drawing on the canvas")
	}
}

func TestRecorderKeepsSegments(t *testing.T) {
	rec := NewRecorder(New(32, 32, White))
	rec.DrawSegment(Point{1, 1}, Point{10, 1}, Black, 2)
	rec.DrawSegment(Point{10, 1}, Point{10, 10}, RGB{1, 0, 0}, 3)

	segs := rec.Segments()
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[1].Width != 3 || segs[1].Color.R != 1 {
		t.Errorf("unexpected second segment: %+v", segs[1])
	}

	cov, _ := rec.At(5, 1)
	if cov.R == 255 {
		t.Error("recorder did not forward drawing to the canvas")
	}
}

func TestRGBClamp(t *testing.T) {
	c := RGB{-0.5, 0.5, 1.5}.Clamp()
	if c != (RGB{0, 0.5, 1}) {
		t.Errorf("Clamp() = %v", c)
	}
	n := RGB{1, 0, 0}.NRGBA()
	if n.R != 255 || n.G != 0 || n.A != 255 {
		t.Errorf("NRGBA() = %v", n)
	}
}

func TestFromRGBASharesPixels(t *testing.T) {
	snap := New(10, 10, White).Snapshot()
	c := FromRGBA(snap)

	if c.Width() != 10 || c.Height() != 10 {
		t.Fatalf("unexpected size %dx%d", c.Width(), c.Height())
	}
	c.DrawSegment(Point{X: 1, Y: 5}, Point{X: 9, Y: 5}, Black, 2)

	i := snap.PixOffset(5, 5)
	if snap.Pix[i] != 0 {
		t.Errorf("drawing did not reach the wrapped buffer, red=%d", snap.Pix[i])
	}
}
