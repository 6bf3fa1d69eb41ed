// Package viz provides the terminal views of the waveform demos.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view of one demo, drawn on a braille [Canvas]
//   - [RunMenu]: demo and variant picker that opens the live view
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space   - Pause/Resume
//	R       - Reset clock and parameters
//	Tab     - Select the next control
//	Up/Down - Step the selected control
//	E       - Type a value for the selected control
//	T       - Cycle color themes
//	G       - Toggle GIF recording
//	?       - Show help overlay
//
// # Recording
//
// G starts and stops recording the canvas as a GIF animation, saved to
// motorwave.gif in the current directory.
package viz
