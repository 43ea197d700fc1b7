//go:build !ebiten

package render

import "github.com/pkg/errors"

// ErrWindowUnavailable is returned when the binary was built without the ebiten tag
var ErrWindowUnavailable = errors.New("window renderer requires building with the 'ebiten' tag")

// Window is a placeholder for headless builds
type Window struct{}

// NewWindow returns a window that always fails to run
func NewWindow(Simulation, int, int) *Window {
	return &Window{}
}

// Run reports that the GUI build tag is missing
func (w *Window) Run() error {
	return errors.Wrap(ErrWindowUnavailable, "[Window.Run] re-run with `go run -tags ebiten .`")
}
