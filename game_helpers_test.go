package main

import (
	"io"
	"testing"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.WindowSize = 200
	config.SideLength = 20
	config.Seed = 11
	return config
}

func TestNewGameRejectsInvalidSideLength(t *testing.T) {
	config := testConfig()
	config.SideLength = -5
	if _, err := newGame(config, io.Discard); err == nil {
		t.Fatal("expected an error for a negative side length")
	}
}

func TestAdvanceStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3

	g, err := newGame(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if !g.Advance() {
			t.Fatalf("run ended after %d generations", i)
		}
	}
	if g.Advance() {
		t.Fatal("run continued past the generation limit")
	}
	if g.generation != 3 {
		t.Fatalf("generation %d, expected 3", g.generation)
	}
}

func TestAdvanceRestartsOnExtinction(t *testing.T) {
	config := testConfig()
	config.LiveProbability = 0
	config.AutoRestart = true

	g, err := newGame(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	first := g.Universe()
	if !g.Advance() {
		t.Fatal("run ended unexpectedly")
	}
	if g.Universe() == first {
		t.Fatal("universe was not replaced")
	}
	if g.stats.Restarts != 1 || g.lastRestartGen != 1 {
		t.Fatalf("restarts=%d lastRestartGen=%d, expected 1 and 1", g.stats.Restarts, g.lastRestartGen)
	}
}

func TestAdvanceWithoutRestartKeepsUniverse(t *testing.T) {
	config := testConfig()
	config.LiveProbability = 0

	g, err := newGame(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	first := g.Universe()
	for range 5 {
		g.Advance()
	}
	if g.Universe() != first {
		t.Fatal("universe replaced although auto restart is off")
	}
	if g.status != "Extinct" {
		t.Fatalf("status %q, expected Extinct", g.status)
	}
}

func TestAdvanceCountsStagnation(t *testing.T) {
	config := testConfig()
	config.LiveProbability = 0
	config.StagnationThreshold = 0

	g, err := newGame(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	g.universe.Set(3, 3, model.Alive)
	g.universe.Set(4, 3, model.Alive)
	g.universe.Set(3, 4, model.Alive)
	g.universe.Set(4, 4, model.Alive)

	for range 6 {
		g.Advance()
	}
	if g.stagnantCount == 0 {
		t.Fatal("still life was not counted as stagnant")
	}
}

func TestSequentialAndParallelGamesAgree(t *testing.T) {
	config := testConfig()
	sequential, err := newGame(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	config.UseParallel = true
	config.UseMemoryPool = false
	parallel, err := newGame(config, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	for range 20 {
		sequential.Advance()
		parallel.Advance()
		if sequential.Universe().GetGridHash() != parallel.Universe().GetGridHash() {
			t.Fatalf("games diverged at generation %d", sequential.generation)
		}
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()
	cases := []struct {
		living, stagnant int
		restart          bool
		reason           string
	}{
		{0, 0, true, "extinction"},
		{10, config.StagnationThreshold, true, "stagnation detected"},
		{10, config.StagnationThreshold - 1, false, ""},
		{10, 0, false, ""},
	}
	for _, tc := range cases {
		restart, reason := checkRestartConditions(tc.living, tc.stagnant, config)
		if restart != tc.restart || reason != tc.reason {
			t.Errorf("checkRestartConditions(%d, %d) = %v %q, expected %v %q",
				tc.living, tc.stagnant, restart, reason, tc.restart, tc.reason)
		}
	}
}

func TestCLIOptionsApply(t *testing.T) {
	config := utils.DefaultConfig()
	cliOptions{cells: "not-a-number", renderer: utils.RendererWindow, parallel: true}.apply(&config)
	if config.SideLength != utils.DefaultSideLength {
		t.Fatalf("side length %d, expected fallback %d", config.SideLength, utils.DefaultSideLength)
	}
	if config.Renderer != utils.RendererWindow || !config.UseParallel {
		t.Fatalf("options not applied: %+v", config)
	}

	config = utils.DefaultConfig()
	config.SideLength = 42
	cliOptions{}.apply(&config)
	if config.SideLength != 42 {
		t.Fatalf("unset option overwrote side length: %d", config.SideLength)
	}

	cliOptions{cells: "16", seed: 9, generations: 50}.apply(&config)
	if config.SideLength != 16 || config.Seed != 9 || config.MaxGenerations != 50 {
		t.Fatalf("options not applied: %+v", config)
	}
}
