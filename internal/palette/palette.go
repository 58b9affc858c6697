// Package palette generates sequential color ramps for seed turtles.
package palette

import (
	"errors"
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/turtlesim/internal/raster"
)

var ErrUnknownPalette = errors.New("palette: unknown palette")

const Default = "burg"

// ramp holds the dark and light ends of a sequential palette.
type ramp struct {
	dark, light string
}

var ramps = map[string]ramp{
	"burg": {dark: "#672044", light: "#ffc6c4"},
	"teal": {dark: "#2a5674", light: "#d1eeea"},
	"purp": {dark: "#63589f", light: "#f3e0f7"},
	"mono": {dark: "#000000", light: "#000000"},
}

// Names lists the known palettes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sequential returns n colors running from the dark end of the named ramp
// to its light end, interpolated in HCL space.
func Sequential(name string, n int) ([]raster.RGB, error) {
	r, ok := ramps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPalette, name, Names())
	}
	if n <= 0 {
		return []raster.RGB{}, nil
	}

	dark, err := colorful.Hex(r.dark)
	if err != nil {
		return nil, err
	}
	light, err := colorful.Hex(r.light)
	if err != nil {
		return nil, err
	}

	out := make([]raster.RGB, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := dark.BlendHcl(light, t).Clamped()
		out[i] = raster.RGB{R: c.R, G: c.G, B: c.B}
	}
	return out, nil
}
