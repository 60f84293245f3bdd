package engine

import (
	"errors"
	"math/rand"
	"testing"

	"gridlock/internal/board"
	"gridlock/internal/core"
	"gridlock/internal/graph"
	"gridlock/internal/spawn"
)

func trappedProjectiles() []board.Projectile {
	// Four rim projectiles converging on the center's neighbors: no legal
	// move exists on turn 0.
	return []board.Projectile{
		{Pos: core.Point{X: 0, Y: 2}, Dir: core.Down},
		{Pos: core.Point{X: 0, Y: -2}, Dir: core.Up},
		{Pos: core.Point{X: -2, Y: 0}, Dir: core.Right},
		{Pos: core.Point{X: 2, Y: 0}, Dir: core.Left},
	}
}

func TestPlanThreeSpawnsOnEmptyBoard(t *testing.T) {
	p := New()
	spawns, err := p.Plan(Request{Player: core.Point{}, Size: 7, Count: 3})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if len(spawns) != 3 {
		t.Fatalf("placed %d spawns, want 3", len(spawns))
	}

	seen := make(map[core.Point]bool)
	for _, s := range spawns {
		row, col := core.PositionToIndex(s.Pos, 7)
		if !core.OnRim(row, col, 7) {
			t.Errorf("spawn at (%d,%d) is not on the rim", row, col)
		}
		if seen[s.Pos] {
			t.Errorf("duplicate spawn cell %v", s.Pos)
		}
		seen[s.Pos] = true

		// Edge-implied inward direction.
		dr, dc := s.Dir.Delta()
		if !core.InBounds(row+dr, col+dc, 7) || core.OnRim(row+dr, col+dc, 7) {
			t.Errorf("spawn at (%d,%d) heads %v, not inward", row, col, s.Dir)
		}
	}

	// Re-simulate the augmented board: the player must keep at least one
	// open path through every turn.
	augmented := board.FromState(core.Point{}, spawns, 7)
	g, err := graph.Build(board.Simulate(augmented, 5))
	if err != nil {
		t.Fatalf("Build() on augmented board failed: %v", err)
	}
	if !g.Solvable() {
		t.Error("augmented board is unsolvable")
	}
}

func TestPlanUnsolvableBaseReturnsEmpty(t *testing.T) {
	p := New()
	for _, k := range []int{0, 1, 3} {
		spawns, err := p.Plan(Request{
			Player:      core.Point{},
			Projectiles: trappedProjectiles(),
			Size:        5,
			Count:       k,
		})
		if err != nil {
			t.Fatalf("Plan(k=%d) failed: %v", k, err)
		}
		if len(spawns) != 0 {
			t.Errorf("Plan(k=%d) on trapped board placed %d spawns, want 0", k, len(spawns))
		}
	}
}

func TestPlanDefaultsToSevenBySeven(t *testing.T) {
	p := New()
	spawns, err := p.Plan(Request{Player: core.Point{}, Count: 1})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if len(spawns) != 1 {
		t.Fatalf("placed %d spawns, want 1", len(spawns))
	}
	row, col := core.PositionToIndex(spawns[0].Pos, DefaultBoardSize)
	if !core.OnRim(row, col, DefaultBoardSize) {
		t.Errorf("spawn at (%d,%d) not on the 7x7 rim; default size not applied", row, col)
	}
}

func TestPlanRejectsBadInput(t *testing.T) {
	p := New()
	if _, err := p.Plan(Request{Size: 6, Count: 1}); err == nil {
		t.Error("even board size accepted")
	}
	if _, err := p.Plan(Request{Size: 3, Count: 1}); err == nil {
		t.Error("undersized board accepted")
	}
	if _, err := p.Plan(Request{Size: 7, Count: -1}); err == nil {
		t.Error("negative spawn count accepted")
	}
}

func TestPlanMissingPlayerFails(t *testing.T) {
	p := New()
	_, err := p.Plan(Request{Player: core.Point{X: 100, Y: 100}, Size: 7, Count: 1})
	if !errors.Is(err, graph.ErrNoPlayer) {
		t.Fatalf("Plan() error = %v, want ErrNoPlayer", err)
	}
}

func TestPlanZeroCount(t *testing.T) {
	p := New()
	spawns, err := p.Plan(Request{Player: core.Point{}, Size: 7, Count: 0})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if len(spawns) != 0 {
		t.Errorf("k=0 placed %d spawns", len(spawns))
	}
}

func TestPlanWithIterativeStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	p := New(
		WithStrategy(spawn.Iterative{Select: spawn.Random(rng)}),
		WithSetSelector(spawn.RandomSet(rng)),
	)
	spawns, err := p.Plan(Request{Player: core.Point{}, Size: 7, Count: 2})
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if len(spawns) != 2 {
		t.Fatalf("iterative planner placed %d spawns, want 2", len(spawns))
	}
	augmented := board.FromState(core.Point{}, spawns, 7)
	g, err := graph.Build(board.Simulate(augmented, 5))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if !g.Solvable() {
		t.Error("iterative result leaves the board unsolvable")
	}
}
