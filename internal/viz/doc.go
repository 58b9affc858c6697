// Package viz shows turtle runs in the terminal.
//
// The package never drives a simulation; it subscribes to frames:
//
//   - [Canvas]: braille dot grid that a canvas snapshot is scaled onto
//   - [Model]: Bubble Tea live view fed by [RunLive]
//   - [Progress]: one-line status for non-interactive runs
//
// # Key Bindings
//
//	Space - Freeze/unfreeze the display (the run keeps going)
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit and cancel the run
package viz
