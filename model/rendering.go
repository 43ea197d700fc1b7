package model

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosEmpty = "  "

	clearScreenSeq = "\033[H\033[2J"
)

var gridPosBlock = aurora.Green("██").String()

// TerminalRenderer draws a universe as text, two characters per cell
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the cells of the universe
func (r *TerminalRenderer) Display(u *Universe) {
	var b bytes.Buffer
	for y := range u.Height() {
		for x := range u.Width() {
			if u.cells[u.GetIndex(x, y)].IsAlive() {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	if _, err := r.out().Write(b.Bytes()); err != nil {
		fmt.Println("Error rendering universe:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if _, err := io.WriteString(r.out(), clearScreenSeq); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
