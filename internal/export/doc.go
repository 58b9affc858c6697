// Package export writes finished runs to image files: the raster as PNG,
// recorded strokes as SVG, and observer frames as an animated GIF.
package export
