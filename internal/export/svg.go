package export

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/turtlesim/internal/raster"
)

// svgScale is the number of user units per pixel; svgo only takes integer
// coordinates.
const svgScale = 10

// WriteSVG renders recorded strokes as round-capped lines on a background
// rectangle. Strokes appear in the order they were drawn.
func WriteSVG(w io.Writer, width, height int, bg raster.RGB, strokes []raster.Segment) {
	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width*svgScale, height*svgScale)
	canvas.Rect(0, 0, width*svgScale, height*svgScale, "fill:"+hex(bg))
	canvas.Gstyle("fill:none;stroke-linecap:round")
	for _, s := range strokes {
		canvas.Line(
			scaled(s.From.X), scaled(s.From.Y),
			scaled(s.To.X), scaled(s.To.Y),
			fmt.Sprintf("stroke:%s;stroke-width:%d", hex(s.Color), scaled(s.Width)),
		)
	}
	canvas.Gend()
	canvas.End()
}

func SaveSVG(path string, width, height int, bg raster.RGB, strokes []raster.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	WriteSVG(f, width, height, bg, strokes)
	return f.Close()
}

func scaled(v float64) int { return int(math.Round(v * svgScale)) }

func hex(c raster.RGB) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
