package view

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
)

const (
	fieldView  = "universe"
	statusView = "status"

	statusWidth = 36
)

// Simulation is what the console needs from a driver
type Simulation interface {
	// Advance moves one generation forward and reports whether the run continues
	Advance() bool
	Universe() *model.Universe
	StatusLines() []string
}

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// Console is an interactive terminal view built on gocui
type Console struct {
	sim      Simulation
	g        *gocui.Gui
	keys     []keyBinding
	interval time.Duration
	done     chan struct{}

	// only touched from the gocui main loop
	paused   bool
	stepOnce bool

	liveFiller string
	deadFiller string
}

// NewConsole creates a console that advances sim every interval
func NewConsole(sim Simulation, interval time.Duration) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsole] failed to init terminal")
	}

	c := &Console{
		sim:        sim,
		g:          g,
		interval:   interval,
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: " ",
	}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit},
		{'q', "Q", "Exit", c.cmdQuit},
		{gocui.KeySpace, "SPACE", "Pause / resume", c.cmdTogglePause},
		{'n', "N", "Next step", c.cmdNextStep},
	}

	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err = g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "[NewConsole] failed to bind key %s", kb.name)
		}
	}
	return c, nil
}

// Run blocks until the user quits or the simulation finishes
func (c *Console) Run() error {
	defer c.g.Close()
	go c.tick()
	err := c.g.MainLoop()
	close(c.done)
	if err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Console.Run] main loop failed")
	}
	return nil
}

func (c *Console) tick() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.g.Update(c.frame)
		}
	}
}

// frame runs on the gocui main loop, so updating and drawing never overlap
func (c *Console) frame(g *gocui.Gui) error {
	if !c.paused || c.stepOnce {
		c.stepOnce = false
		if !c.sim.Advance() {
			return gocui.ErrQuit
		}
	}
	c.renderField(g)
	c.renderStatus(g)
	return nil
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	split := max(maxX-statusWidth, 2)

	if v, err := g.SetView(fieldView, 0, 0, split-1, max(maxY-1, 1)); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = fieldView
	}
	if v, err := g.SetView(statusView, split, 0, max(maxX-1, split+1), max(maxY-1, 1)); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = statusView
		v.Wrap = true
	}
	return nil
}

func (c *Console) renderField(g *gocui.Gui) {
	v, err := g.View(fieldView)
	if err != nil {
		return
	}
	v.Clear()

	u := c.sim.Universe()
	maxW, maxH := v.Size()
	crop := u.Width() > maxW || u.Height() > maxH

	var b bytes.Buffer
	for y := range min(u.Height(), maxH) {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The universe is larger than the view").String())
			break
		}
		for x := range min(u.Width(), maxW) {
			if u.StateAt(x, y) == model.Alive {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (c *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View(statusView)
	if err != nil {
		return
	}
	v.Clear()

	for _, line := range c.sim.StatusLines() {
		_, _ = fmt.Fprintln(v, line)
	}
	mode := aurora.Cyan("running")
	if c.paused {
		mode = aurora.Blue("paused")
	}
	_, _ = fmt.Fprintf(v, "Mode: %s\n\n", mode)
	for _, kb := range c.keys {
		_, _ = fmt.Fprintf(v, "%s %s\n", aurora.Bold(kb.name), kb.descr)
	}
}

func (c *Console) cmdQuit() error {
	return gocui.ErrQuit
}

func (c *Console) cmdTogglePause() error {
	c.paused = !c.paused
	return nil
}

func (c *Console) cmdNextStep() error {
	c.paused = true
	c.stepOnce = true
	return nil
}
