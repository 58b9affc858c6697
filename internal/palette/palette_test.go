package palette

import (
	"errors"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestSequentialSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 20} {
		colors, err := Sequential(Default, n)
		if err != nil {
			t.Fatalf("Sequential(%d): %v", n, err)
		}
		if len(colors) != n {
			t.Errorf("Sequential(%d) returned %d colors", n, len(colors))
		}
	}
}

func TestSequentialDarkToLight(t *testing.T) {
	colors, err := Sequential("teal", 8)
	if err != nil {
		t.Fatal(err)
	}

	prev := -1.0
	for i, c := range colors {
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			t.Fatalf("color %d out of range: %v", i, c)
		}
		l, _, _ := colorful.Color{R: c.R, G: c.G, B: c.B}.Lab()
		if l+0.02 < prev {
			t.Errorf("color %d lightness %.3f below previous %.3f", i, l, prev)
		}
		prev = l
	}
}

func TestSequentialSingleIsDarkEnd(t *testing.T) {
	colors, err := Sequential("mono", 1)
	if err != nil {
		t.Fatal(err)
	}
	if colors[0].R > 1e-6 || colors[0].G > 1e-6 || colors[0].B > 1e-6 {
		t.Errorf("mono palette should be black, got %v", colors[0])
	}
}

func TestSequentialUnknown(t *testing.T) {
	if _, err := Sequential("rainbow", 3); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(ramps) {
		t.Fatalf("expected %d names, got %d", len(ramps), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
