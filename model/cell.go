package model

// CellState is the state of a single cell. It is numeric so that live
// neighbors can be counted by summing states.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns a human readable name for the state
func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is a grid cell together with its pixel geometry
type Cell struct {
	State CellState
	X     int
	Y     int
	Size  int
}

// NewCell creates a cell at pixel position (x, y) with edge length size
func NewCell(state CellState, x, y, size int) Cell {
	return Cell{State: state, X: x, Y: y, Size: size}
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.State == Alive
}
