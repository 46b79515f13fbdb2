// Package viz renders the Bloch sphere in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the live view, ticking the animation driver once per frame
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Camera] / [Wireframe]: painter's-algorithm 3D projection
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	x y z h s t - apply the matching gate to the current state
//	0 1 p m i u - jump to a named state (|0⟩ |1⟩ |+⟩ |−⟩ |+i⟩ |−i⟩)
//	arrows, +/- - rotate and zoom the camera
//	e           - cycle easing curve
//	tab         - cycle color themes
//	space       - pause/resume ticking
//	r           - reset to |0⟩ and clear the trail
//	?           - toggle help overlay
package viz
