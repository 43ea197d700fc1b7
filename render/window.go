//go:build ebiten

package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/torus-life/model"
)

const windowTitle = "≛ torus of life ≛"

var (
	liveColor       = color.RGBA{R: 0x00, G: 0xe4, B: 0x30, A: 0xff}
	backgroundColor = color.Black
	hudColor        = color.White
)

// Window adapts a simulation to the ebiten.Game interface
type Window struct {
	sim        Simulation
	windowSize int
	tps        int

	paused   bool
	tickOnce bool
	showHUD  bool
}

// NewWindow creates a square window of windowSize pixels advancing sim tps times a second
func NewWindow(sim Simulation, windowSize, tps int) *Window {
	return &Window{sim: sim, windowSize: windowSize, tps: tps, showHUD: true}
}

// Run opens the window and blocks until it is closed
func (w *Window) Run() error {
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(w.tps)
	ebiten.SetWindowSize(w.windowSize, w.windowSize)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Window.Run] game loop failed")
	}
	return nil
}

// Update handles input and advances the simulation once per tick
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		w.showHUD = !w.showHUD
	}

	if !w.paused || w.tickOnce {
		w.tickOnce = false
		if !w.sim.Advance() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw paints every live cell as a square one pixel smaller than the cell,
// leaving a grid gap. Dead cells show the background.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, c := range w.sim.Universe().Cells() {
		if c.State != model.Alive {
			continue
		}
		edge := float32(c.Size - 1)
		vector.DrawFilledRect(screen, float32(c.X), float32(c.Y), edge, edge, liveColor, false)
	}

	if w.showHUD {
		for i, line := range w.sim.StatusLines() {
			text.Draw(screen, line, basicfont.Face7x13, 8, 16+i*14, hudColor)
		}
		if w.paused {
			text.Draw(screen, fmt.Sprintf("paused (%d TPS)", w.tps), basicfont.Face7x13, 8, w.windowSize-8, hudColor)
		}
	}
}

// Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.windowSize, w.windowSize
}
