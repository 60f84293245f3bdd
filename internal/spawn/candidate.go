// Package spawn searches the reachability graph for new projectile spawn
// points that keep the board solvable.
package spawn

import (
	"gridlock/internal/board"
	"gridlock/internal/core"
)

// Candidate is a non-corner rim cell eligible for a new projectile, with the
// inward direction its edge implies. Index is the candidate's position in
// the canonical enumeration order and stays stable for a given board size.
type Candidate struct {
	Index    int
	Row, Col int
	Dir      core.Direction
}

// Candidates enumerates every eligible spawn cell for a board of the given
// size: top edge left to right, bottom edge left to right, left edge top to
// bottom, right edge top to bottom. Corners are excluded, so the set has
// exactly 4(N-2) members.
func Candidates(size int) []Candidate {
	out := make([]Candidate, 0, 4*(size-2))
	add := func(row, col int, d core.Direction) {
		out = append(out, Candidate{Index: len(out), Row: row, Col: col, Dir: d})
	}
	for col := 1; col < size-1; col++ {
		add(0, col, core.Down)
	}
	for col := 1; col < size-1; col++ {
		add(size-1, col, core.Up)
	}
	for row := 1; row < size-1; row++ {
		add(row, 0, core.Right)
	}
	for row := 1; row < size-1; row++ {
		add(row, size-1, core.Left)
	}
	return out
}

// Projectile converts the candidate into a projectile at its rim cell in
// centered coordinates.
func (c Candidate) Projectile(size int) board.Projectile {
	return board.Projectile{
		Pos: core.IndexToPosition(c.Row, c.Col, size),
		Dir: c.Dir,
	}
}

// Threatens reports whether the candidate's lane crosses the given grid
// cell: vertical spawns sweep a column, horizontal spawns sweep a row.
func (c Candidate) Threatens(row, col int) bool {
	switch c.Dir {
	case core.Up, core.Down:
		return c.Col == col
	default:
		return c.Row == row
	}
}
