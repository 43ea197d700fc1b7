package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/render"
	"github.com/sheikhrachel/torus-life/utils"
	"github.com/sheikhrachel/torus-life/view"
)

const defaultConfigPath = "config.json"

// cliOptions holds the command line overrides, zero values mean "not set"
type cliOptions struct {
	cells       string
	configPath  string
	renderer    string
	seed        uint64
	windowSize  int
	generations int
	parallel    bool
}

func parseFlags() cliOptions {
	opts := cliOptions{configPath: defaultConfigPath}

	flaggy.SetName("torus-life")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.AddPositionalValue(&opts.cells, "cells", 1, false, "Number of cells per side (default 100)")
	flaggy.String(&opts.configPath, "c", "config", "Path to a JSON config file")
	flaggy.String(&opts.renderer, "r", "renderer", "Renderer to use [terminal|console|window]")
	flaggy.UInt64(&opts.seed, "s", "seed", "Seed for the initial random state (0 picks one)")
	flaggy.Int(&opts.windowSize, "w", "window", "Window size in pixels")
	flaggy.Int(&opts.generations, "g", "generations", "Stop after this many generations")
	flaggy.Bool(&opts.parallel, "p", "parallel", "Compute generations on all CPUs")

	flaggy.Parse()
	return opts
}

// apply writes the options that were set on top of config
func (o cliOptions) apply(config *utils.Config) {
	if o.cells != "" {
		config.SideLength = utils.ParseSideLength(o.cells, utils.DefaultSideLength)
	}
	if o.renderer != "" {
		config.Renderer = o.renderer
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.windowSize != 0 {
		config.WindowSize = o.windowSize
	}
	if o.generations != 0 {
		config.MaxGenerations = o.generations
	}
	if o.parallel {
		config.UseParallel = true
	}
}

func main() {
	opts := parseFlags()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%s not found)\n", opts.configPath)
		config = utils.DefaultConfig()
	}
	opts.apply(&config)

	if err = config.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	var out io.Writer = os.Stdout
	if config.Renderer == utils.RendererConsole {
		// gocui owns the terminal
		out = io.Discard
	}

	g, err := newGame(config, out)
	if err != nil {
		log.Fatalf("failed to create universe: %v", err)
	}

	switch config.Renderer {
	case utils.RendererConsole:
		console, err := view.NewConsole(g, config.FrameRate)
		if err != nil {
			log.Fatal(err)
		}
		if err = console.Run(); err != nil {
			log.Fatal(err)
		}
	case utils.RendererWindow:
		g.displayGameInfo()
		if err = render.NewWindow(g, config.WindowSize, config.TicksPerSecond()).Run(); err != nil {
			log.Fatal(err)
		}
	default:
		runTerminal(g)
	}
	g.displayFinalStats()
}

// runTerminal draws every generation to stdout until interrupted or finished
func runTerminal(g *game) {
	g.displayGameInfo()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		renderer = &model.TerminalRenderer{Out: os.Stdout}
		ticker   = time.NewTicker(g.config.FrameRate)
	)
	defer ticker.Stop()

	for {
		renderer.Clear()
		for _, line := range g.StatusLines() {
			fmt.Println(line)
		}
		fmt.Println()
		renderer.Display(g.Universe())

		if !g.Advance() {
			return
		}

		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			return
		case <-ticker.C:
		}
	}
}
