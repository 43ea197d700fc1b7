package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// CountLivingCells returns the total number of living cells
func (u *Universe) CountLivingCells() (count int) {
	for _, c := range u.cells {
		count += int(c.State)
	}
	return
}

// GetGridHash returns an MD5 hash of the current cell states
func (u *Universe) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(u.cells))
	for i, c := range u.cells {
		buf[i] = byte(c.State)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (u *Universe) UpdateHistory() {
	u.history = append(u.history, u.GetGridHash())

	// Keep only the last few states to detect cycles
	if len(u.history) > historySize {
		u.history = u.history[1:]
	}
}

// IsStagnant reports whether the current state matches one of the last three
// recorded states, which covers still lifes and period 2 and 3 oscillators.
// The current state must not have been recorded yet.
func (u *Universe) IsStagnant() bool {
	if len(u.history) < 3 {
		return false
	}

	currentHash := u.GetGridHash()
	for i := 1; i <= 3; i++ {
		if u.history[len(u.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// ResetHistory forgets all recorded states
func (u *Universe) ResetHistory() {
	u.history = nil
}

// InjectRandomLife brings count random cells to life to break stagnation
func (u *Universe) InjectRandomLife(count int) {
	if u.rng == nil {
		u.rng = NewRand(0)
	}
	for range count {
		u.Set(u.rng.IntN(u.width), u.rng.IntN(u.height), Alive)
	}
}

// Clear kills every cell
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i].State = Dead
	}
	u.history = nil
}

// AddGlider adds a glider pattern at the specified position
func (u *Universe) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, alive := range row {
			state := Dead
			if alive {
				state = Alive
			}
			u.Set(startX+x, startY+y, state)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at the specified position
func (u *Universe) AddBlinker(startX, startY int) {
	u.Set(startX, startY, Alive)
	u.Set(startX+1, startY, Alive)
	u.Set(startX+2, startY, Alive)
}
