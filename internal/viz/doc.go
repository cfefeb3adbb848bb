// Package viz renders reflector traces in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [App]: interactive presenter owning the scene state
//   - [Canvas]: braille dot canvas with Bresenham line drawing
//   - [Viewport]: world-coordinate projection onto the canvas
//
// # Key Bindings
//
//	h/l  - Focal length down/up
//	j/k  - Ray count down/up
//	m    - Toggle parallel/focal bundle
//	r    - Reset to defaults
//	t    - Cycle color themes
//	e    - Export current frame as SVG
//	?    - Toggle help
//
// Every key that changes a parameter triggers a full synchronous
// retrace before the next input is handled.
package viz
