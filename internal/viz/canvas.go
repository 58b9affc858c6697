package viz

import (
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/turtle"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells, each holding 2x4 dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set raises the dot at (x, y) in dot coordinates, (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the dot at (x, y) is raised.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Rasterize scales img down to the dot grid and raises every dot whose
// sample the probe would treat as drawn.
func (c *Canvas) Rasterize(img *image.RGBA, probe turtle.Probe) {
	c.Clear()
	if img == nil {
		return
	}
	dw, dh := c.Width*2, c.Height*4
	if dw == 0 || dh == 0 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	sc := raster.FromRGBA(small)
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if cov, ok := sc.At(x, y); ok && probe.Drawn(cov) {
				c.Set(x, y)
			}
		}
	}
}

// FromImage renders img into a new cols x rows braille canvas.
func FromImage(img *image.RGBA, cols, rows int, probe turtle.Probe) *Canvas {
	c := NewCanvas(cols, rows)
	c.Rasterize(img, probe)
	return c
}

// FitCells picks the largest cell grid within maxCols x maxRows that keeps
// the image's aspect ratio. A braille cell covers 2x4 dots.
func FitCells(imgW, imgH, maxCols, maxRows int) (int, int) {
	if imgW <= 0 || imgH <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	cols := maxCols
	rows := cols * 2 * imgH / imgW / 4
	if rows > maxRows {
		rows = maxRows
		cols = rows * 4 * imgW / imgH / 2
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
