package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// game drives a universe frame by frame and keeps the run statistics
type game struct {
	config   utils.Config
	universe *model.Universe
	pool     *model.CellPool
	rng      *rand.Rand
	stats    *utils.Stats
	out      io.Writer

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastFrameTime  time.Time
	livingCells    int
	status         string
}

// newGame sets up the initial game state
func newGame(config utils.Config, out io.Writer) (*game, error) {
	g := &game{
		config:        config,
		rng:           model.NewRand(config.Seed),
		stats:         utils.NewStats(),
		out:           out,
		lastFrameTime: time.Now(),
		status:        "Active",
	}
	if config.UseMemoryPool {
		g.pool = model.NewCellPool()
	}

	universe, err := g.newUniverse()
	if err != nil {
		return nil, err
	}
	g.universe = universe
	g.livingCells = universe.CountLivingCells()
	return g, nil
}

func (g *game) newUniverse() (*model.Universe, error) {
	universe, err := model.NewUniverse(g.config.WindowSize, g.config.SideLength, g.config.LiveProbability, g.rng)
	if err != nil {
		return nil, err
	}
	universe.UsePool(g.pool)
	return universe, nil
}

func (g *game) printf(format string, args ...interface{}) {
	if g.out == nil {
		return
	}
	_, _ = fmt.Fprintf(g.out, format, args...)
}

// Universe returns the universe currently being simulated
func (g *game) Universe() *model.Universe {
	return g.universe
}

// finished reports whether the generation limit has been reached
func (g *game) finished() bool {
	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

// Advance calculates the next generation and handles stagnation and restarts.
// It returns false once the run is over.
func (g *game) Advance() bool {
	if g.finished() {
		return false
	}

	g.universe.Step(g.config)
	g.generation++

	isStagnant := g.updateGameState()
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	shouldRestart, restartReason := checkRestartConditions(g.livingCells, g.stagnantCount, g.config)
	if shouldRestart && g.config.AutoRestart {
		g.printf("🔄 Restarting due to %s...\n", restartReason)
		if err := g.restartGame(); err != nil {
			g.printf("Restart failed: %v\n", err)
			return false
		}
	} else if g.config.InjectionCount > 0 && g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
		// Inject some life to try to break the stagnation
		g.universe.InjectRandomLife(g.config.InjectionCount)
		g.universe.ResetHistory()
	}

	if g.finished() {
		g.printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
	}
	return true
}

// updateGameState refreshes the stats for the current generation and reports stagnation
func (g *game) updateGameState() bool {
	g.livingCells = g.universe.CountLivingCells()

	now := time.Now()
	g.stats.Update(g.generation, g.livingCells, now.Sub(g.lastFrameTime))
	census := g.universe.LastCensus()
	g.stats.RecordCensus(census.Births, census.Deaths)
	g.lastFrameTime = now

	isStagnant := g.universe.IsStagnant()
	g.universe.UpdateHistory()

	switch {
	case g.livingCells == 0:
		g.status = "Extinct"
	case isStagnant:
		g.status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount+1)
	default:
		g.status = "Active"
	}
	return isStagnant
}

// StatusLines describes the current generation for renderers
func (g *game) StatusLines() []string {
	var (
		total   = g.universe.Width() * g.universe.Height()
		density = float64(g.livingCells) / float64(total) * 100
	)
	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%%", g.generation, g.livingCells, density),
		fmt.Sprintf("Status: %s | Births: %d | Deaths: %d", g.status, g.stats.Births, g.stats.Deaths),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
			g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds()),
	}
	if g.generation > g.lastRestartGen && g.lastRestartGen > 0 {
		lines = append(lines, fmt.Sprintf("Generations since restart: %d (%d restarts)",
			g.generation-g.lastRestartGen, g.stats.Restarts))
	}
	return lines
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	g.printf("Features: Memory Pool: %v, Parallel: %v, Renderer: %s\n",
		g.config.UseMemoryPool, g.config.UseParallel, g.config.Renderer)
	g.printf("Grid: %dx%d | Cell size: %dpx | Initial living cells: %d\n",
		g.universe.Width(), g.universe.Height(), g.universe.CellSize(), g.livingCells)
	g.printf("Press Ctrl+C to exit gracefully\n\n")
}

// displayFinalStats prints the summary shown on shutdown
func (g *game) displayFinalStats() {
	g.printf("Final stats: %d generations in %.1f seconds\n",
		g.generation, g.stats.Runtime().Seconds())
	g.printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame replaces the universe with a freshly seeded one
func (g *game) restartGame() error {
	universe, err := g.newUniverse()
	if err != nil {
		return err
	}
	g.universe = universe
	g.livingCells = universe.CountLivingCells()
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	g.stats.Restarts++

	g.printf("✨ New universe seeded! Living cells: %d\n", g.livingCells)
	return nil
}
