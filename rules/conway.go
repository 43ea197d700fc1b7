package rules

// Transition names the rule that decided a cell's next state
type Transition uint8

const (
	Unchanged Transition = iota
	Underpopulation
	Survival
	Overpopulation
	Reproduction
)

var transitionNames = [...]string{
	Unchanged:       "unchanged",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

// String returns the rule name
func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// Alive reports whether a cell is alive after the transition
func (t Transition) Alive() bool {
	return t == Survival || t == Reproduction
}

/*
Classify returns the Conway rule that applies to a cell with the given number
of live neighbors.

	alive, n < 2      -> Underpopulation (dies)
	alive, n == 2, 3  -> Survival
	alive, n > 3      -> Overpopulation (dies)
	dead,  n == 3     -> Reproduction (born)
	dead,  otherwise  -> Unchanged
*/
func Classify(neighbors int, alive bool) Transition {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors > 3:
		return Overpopulation
	case alive:
		return Survival
	case neighbors == 3:
		return Reproduction
	default:
		return Unchanged
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(neighbors, alive).Alive()
}
