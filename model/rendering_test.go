package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	u := newDeadUniverse(t, 3, 2)
	u.Set(1, 0, Alive)
	u.Set(2, 1, Alive)

	var out bytes.Buffer
	r := &TerminalRenderer{Out: &out}
	r.Display(u)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	expected := []string{
		gridPosEmpty + gridPosBlock + gridPosEmpty,
		gridPosEmpty + gridPosEmpty + gridPosBlock,
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Fatalf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var out bytes.Buffer
	(&TerminalRenderer{Out: &out}).Clear()
	if out.String() != clearScreenSeq {
		t.Fatalf("unexpected clear sequence %q", out.String())
	}
}
