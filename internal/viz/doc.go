// Package viz renders calculator output in the terminal.
//
//   - [Plot]: asciigraph line charts, one per [mech.Series]
//   - [Scatter]: XY curves drawn on a Braille [Canvas] (PV diagrams)
//   - [Report]: lipgloss key/value summaries
//   - [Explorer]: Bubble Tea program animating a slider-crank
//
// # Key Bindings (Explorer)
//
//	Space - Pause/Resume rotation
//	←/→   - Step the crank angle
//	↑/↓   - Tune angular velocity (±5%)
//	R     - Reset angle and speed
//	T     - Cycle color themes
//	Q     - Quit
package viz
