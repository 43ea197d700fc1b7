// Package render draws a universe into a desktop window.
package render

import "github.com/sheikhrachel/torus-life/model"

// Simulation is what a window needs from a driver
type Simulation interface {
	// Advance moves one generation forward and reports whether the run continues
	Advance() bool
	Universe() *model.Universe
	StatusLines() []string
}
