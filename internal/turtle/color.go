package turtle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/turtlesim/internal/raster"
)

var ErrBadColor = errors.New("turtle: malformed hex color")

// ParseHex decodes "#RRGGBB" (the leading # is optional) into channels in
// [0,1], each byte pair divided by 255.
func ParseHex(s string) (raster.RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return raster.RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return raster.RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		ch[i] = float64(v) / 255.0
	}
	return raster.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}
