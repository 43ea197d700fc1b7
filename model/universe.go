package model

import (
	"math"
	"math/rand/v2"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-life/rules"
	"github.com/sheikhrachel/torus-life/utils"
)

// DefaultLiveProbability is the chance that a randomly seeded cell starts alive
const DefaultLiveProbability = 0.15

// ErrInvalidConfiguration is returned when a universe cannot be built from the given input
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Census counts the cells that changed state during the last generation
type Census struct {
	Births int
	Deaths int
}

// Universe is a toroidal Game of Life grid stored in row-major order
type Universe struct {
	width  int
	height int
	size   int
	cells  []Cell
	census Census
	pool   *CellPool
	rng    *rand.Rand

	history []string // Store recent grid states for cycle detection
}

// NewUniverse creates a square universe of sideLength cells per axis, sized
// to fill a window of windowSize pixels. Each cell is alive with probability
// density, drawn from rng. A nil rng uses a randomly seeded source.
func NewUniverse(windowSize, sideLength int, density float64, rng *rand.Rand) (*Universe, error) {
	if sideLength <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewUniverse] side length must be positive: %d", sideLength)
	}
	if windowSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewUniverse] window size must be positive: %d", windowSize)
	}
	if !(density >= 0 && density <= 1) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewUniverse] density must be within [0, 1]: %v", density)
	}

	offset := int(math.Round(float64(windowSize) / float64(sideLength)))
	if offset < 1 {
		return nil, errors.Wrapf(ErrInvalidConfiguration,
			"[NewUniverse] window size %d is too small for %d cells per side", windowSize, sideLength)
	}

	if rng == nil {
		rng = NewRand(0)
	}

	cells := make([]Cell, sideLength*sideLength)
	for i := range cells {
		var (
			x     = i % sideLength
			y     = i / sideLength
			state = Dead
		)
		if rng.Float64() < density {
			state = Alive
		}
		cells[i] = NewCell(state, x*offset, y*offset, offset)
	}

	return &Universe{
		width:  sideLength,
		height: sideLength,
		size:   offset,
		cells:  cells,
		rng:    rng,
	}, nil
}

// NewUniverseFromStates creates a universe from an explicit row-major list of states
func NewUniverseFromStates(width, height, size int, states []CellState) (*Universe, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewUniverseFromStates] dimensions must be positive: %dx%d", width, height)
	}
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "[NewUniverseFromStates] cell size must be positive: %d", size)
	}
	if len(states) != width*height {
		return nil, errors.Wrapf(ErrInvalidConfiguration,
			"[NewUniverseFromStates] got %d states for a %dx%d grid", len(states), width, height)
	}

	cells := make([]Cell, len(states))
	for i, state := range states {
		if state != Alive {
			state = Dead
		}
		cells[i] = NewCell(state, (i%width)*size, (i/width)*size, size)
	}

	return &Universe{
		width:  width,
		height: height,
		size:   size,
		cells:  cells,
	}, nil
}

// UsePool makes the universe recycle retired cell buffers through pool.
// Once set, the slice returned by Cells is only valid until the next update.
func (u *Universe) UsePool(pool *CellPool) {
	u.pool = pool
}

// Width returns the number of cells per row
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

// CellSize returns the pixel edge length shared by every cell
func (u *Universe) CellSize() int {
	return u.size
}

// Cells exposes the current generation for rendering. Callers must not modify it.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// LastCensus returns the births and deaths of the most recent update
func (u *Universe) LastCensus() Census {
	return u.census
}

// GetIndex maps grid coordinates to the cell buffer index
func (u *Universe) GetIndex(x, y int) int {
	return x + y*u.width
}

// wrap folds any coordinate pair back onto the torus
func (u *Universe) wrap(x, y int) (int, int) {
	x = (x%u.width + u.width) % u.width
	y = (y%u.height + u.height) % u.height
	return x, y
}

// StateAt returns the state at (x, y); coordinates wrap around the edges
func (u *Universe) StateAt(x, y int) CellState {
	x, y = u.wrap(x, y)
	return u.cells[u.GetIndex(x, y)].State
}

// Set sets the state at (x, y); coordinates wrap around the edges
func (u *Universe) Set(x, y int, state CellState) {
	if state != Alive {
		state = Dead
	}
	x, y = u.wrap(x, y)
	u.cells[u.GetIndex(x, y)].State = state
}

// LiveNeighborCount counts the live cells in the Moore neighborhood of (x, y).
// The grid is a torus, so cells on an edge see the opposite edge.
func (u *Universe) LiveNeighborCount(x, y int) int {
	count := 0
	for _, dy := range [...]int{-1, 0, 1} {
		for _, dx := range [...]int{-1, 0, 1} {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := u.wrap(x+dx, y+dy)
			count += int(u.cells[u.GetIndex(nx, ny)].State)
		}
	}
	return count
}

// Update advances the universe by exactly one generation
func (u *Universe) Update() {
	next := u.nextBuffer()
	u.census = u.advanceRows(next, 0, u.height)
	u.swap(next)
}

// UpdateParallel advances the universe by one generation, splitting rows
// across workers. A non-positive worker count uses one worker per CPU.
func (u *Universe) UpdateParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	next := u.nextBuffer()

	var (
		eg            errgroup.Group
		rowsPerWorker = (u.height + workers - 1) / workers // Ceiling division
		censuses      = make([]Census, workers)
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, u.height)
		)
		if startRow >= u.height {
			break
		}

		eg.Go(func() error {
			censuses[i] = u.advanceRows(next, startRow, endRow)
			return nil
		})
	}

	// workers only read the old buffer and never fail
	_ = eg.Wait()

	var total Census
	for _, c := range censuses {
		total.Births += c.Births
		total.Deaths += c.Deaths
	}
	u.census = total
	u.swap(next)
}

// Step advances one generation using the strategy selected by config
func (u *Universe) Step(config utils.Config) {
	if config.UseParallel {
		u.UpdateParallel(runtime.NumCPU())
		return
	}
	u.Update()
}

// advanceRows writes the next state of rows [startRow, endRow) into next,
// reading only from the current buffer
func (u *Universe) advanceRows(next []Cell, startRow, endRow int) (census Census) {
	for y := startRow; y < endRow; y++ {
		for x := range u.width {
			idx := u.GetIndex(x, y)
			alive := u.cells[idx].IsAlive()

			transition := rules.Classify(u.LiveNeighborCount(x, y), alive)
			switch {
			case transition == rules.Reproduction:
				census.Births++
			case alive && !transition.Alive():
				census.Deaths++
			}

			next[idx].State = Dead
			if transition.Alive() {
				next[idx].State = Alive
			}
		}
	}
	return
}

// nextBuffer returns a copy of the current cells to hold the next generation
func (u *Universe) nextBuffer() []Cell {
	if u.pool == nil {
		return slices.Clone(u.cells)
	}
	next := u.pool.Get(len(u.cells))
	copy(next, u.cells)
	return next
}

// swap installs next as the current generation
func (u *Universe) swap(next []Cell) {
	prev := u.cells
	u.cells = next
	if u.pool != nil {
		u.pool.Put(prev)
	}
}
