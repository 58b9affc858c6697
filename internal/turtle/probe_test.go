package turtle

import (
	"math"
	"testing"

	"github.com/san-kum/turtlesim/internal/raster"
)

func TestProbeDrawn(t *testing.T) {
	p := DefaultProbe()

	tests := []struct {
		name string
		cov  raster.Coverage
		want bool
	}{
		{"transparent", raster.Coverage{}, false},
		{"faint translucent", raster.Coverage{R: 5, G: 5, B: 5, A: 10}, false},
		{"translucent", raster.Coverage{R: 40, G: 40, B: 40, A: 11}, true},
		{"white", raster.Coverage{R: 255, G: 255, B: 255, A: 255}, false},
		{"near white", raster.Coverage{R: 250, G: 251, B: 255, A: 255}, false},
		{"light grey", raster.Coverage{R: 249, G: 255, B: 255, A: 255}, true},
		{"black", raster.Coverage{A: 255}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Drawn(tt.cov); got != tt.want {
				t.Errorf("Drawn(%v) = %v, want %v", tt.cov, got, tt.want)
			}
		})
	}
}

func TestProbeThresholdsConfigurable(t *testing.T) {
	p := Probe{OpacityThreshold: 100, ChannelThreshold: 128, StrideDeg: 30}

	if p.Drawn(raster.Coverage{A: 50}) {
		t.Error("alpha 50 should be below a 100 threshold")
	}
	if p.Drawn(raster.Coverage{R: 200, G: 200, B: 200, A: 255}) {
		t.Error("grey 200 should be background under a 128 channel threshold")
	}
}

func TestProbeForwardSemicircle(t *testing.T) {
	c := raster.New(100, 100, raster.White)
	c.DrawSegment(raster.Point{X: 60, Y: 45}, raster.Point{X: 60, Y: 55}, raster.Black, 4)
	p := DefaultProbe()

	if h := p.Check(c, 50, 50, 0, 10, false); h != HitStroke {
		t.Errorf("facing the stroke: got %v, want stroke", h)
	}
	if h := p.Check(c, 50, 50, 180, 10, false); h != HitNone {
		t.Errorf("facing away: got %v, want none", h)
	}
	if h := p.Check(c, 50, 50, 180, 10, true); h != HitStroke {
		t.Errorf("full circle facing away: got %v, want stroke", h)
	}
}

func TestProbeEdge(t *testing.T) {
	c := raster.New(50, 50, raster.White)
	p := DefaultProbe()

	if h := p.Check(c, 45, 25, 0, 10, false); h != HitEdge {
		t.Errorf("near right edge: got %v, want edge", h)
	}
	if h := p.Check(c, 25, 5, 90, 10, false); h != HitEdge {
		t.Errorf("near top edge: got %v, want edge", h)
	}
	if h := p.Check(c, 25, 25, 0, 10, true); h != HitNone {
		t.Errorf("centre: got %v, want none", h)
	}
}

func TestProbeCoverage(t *testing.T) {
	p := DefaultProbe()

	if got := p.Coverage(raster.New(10, 10, raster.White)); got != 0 {
		t.Errorf("blank canvas coverage %v, want 0", got)
	}
	if got := p.Coverage(raster.New(10, 10, raster.Black)); got != 1 {
		t.Errorf("black canvas coverage %v, want 1", got)
	}

	c := raster.New(100, 100, raster.White)
	c.DrawSegment(raster.Point{X: 0, Y: 50}, raster.Point{X: 100, Y: 50}, raster.Black, 10)
	got := p.Coverage(c)
	if math.Abs(got-0.1) > 0.03 {
		t.Errorf("coverage %v, want about 0.1", got)
	}
}

func TestHitString(t *testing.T) {
	if HitEdge.String() != "edge" || HitStroke.String() != "stroke" || HitNone.String() != "none" {
		t.Error("unexpected Hit names")
	}
	if HitNone.Blocked() || !HitEdge.Blocked() {
		t.Error("Blocked mismatch")
	}
}
