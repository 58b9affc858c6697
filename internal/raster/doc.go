// Package raster provides the pixel canvas turtles draw on.
//
// [Image] wraps an *image.RGBA with a gg drawing context. Strokes are
// antialiased with round caps, and pixels keep gg's premultiplied layout
// (R, G, B, A bytes). [Canvas.At] hands those bytes back unchanged so that
// collision tests see exactly what was painted.
//
// [Recorder] decorates any Canvas and remembers each committed segment.
package raster
