// Package board implements the bitmask board model and the one-turn
// projectile simulator. A board is immutable once produced: Advance returns
// a fresh board and never touches its input.
package board

import "gridlock/internal/core"

// Cell bit layout: bit 0 marks the player, bits 1-4 mark projectiles heading
// up, left, down and right. A cell may hold several projectile bits at once.
const (
	playerBit      uint8 = 1 << 0
	projectileMask uint8 = 0b11110
)

// projectileBit returns the cell mask bit for a projectile heading d.
func projectileBit(d core.Direction) uint8 {
	return 1 << (1 + uint(d))
}

// Projectile is a hazard at a centered-coordinate position moving in one
// cardinal direction, one cell per turn.
type Projectile struct {
	Pos core.Point
	Dir core.Direction
}

// Board is the state of an N x N grid at one turn.
type Board struct {
	size  int
	cells []uint8
}

// New returns an empty board of the given size.
func New(size int) Board {
	return Board{size: size, cells: make([]uint8, size*size)}
}

// FromState builds a board from a player position and a projectile list.
// Projectiles outside the grid are silently dropped: an off-board projectile
// can never affect reachability. A player outside the grid is likewise
// dropped and surfaces later as a missing-player build error.
func FromState(player core.Point, projectiles []Projectile, size int) Board {
	b := New(size)
	row, col := core.PositionToIndex(player, size)
	if core.InBounds(row, col, size) {
		b.cells[row*size+col] |= playerBit
	}
	for _, p := range projectiles {
		row, col := core.PositionToIndex(p.Pos, size)
		if !core.InBounds(row, col, size) || !p.Dir.IsValid() {
			continue
		}
		b.cells[row*size+col] |= projectileBit(p.Dir)
	}
	return b
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// Cell returns the raw bitmask at the given grid position, or 0 when out of
// bounds.
func (b Board) Cell(row, col int) uint8 {
	if !core.InBounds(row, col, b.size) {
		return 0
	}
	return b.cells[row*b.size+col]
}

// HasPlayer reports whether the player occupies the cell.
func (b Board) HasPlayer(row, col int) bool {
	return b.Cell(row, col)&playerBit != 0
}

// HasProjectile reports whether any projectile occupies the cell.
func (b Board) HasProjectile(row, col int) bool {
	return b.Cell(row, col)&projectileMask != 0
}

// HasProjectileHeading reports whether a projectile moving in direction d
// occupies the cell. Used for swap-collision checks.
func (b Board) HasProjectileHeading(row, col int, d core.Direction) bool {
	return b.Cell(row, col)&projectileBit(d) != 0
}

// PlayerCell returns the player's grid position. ok is false when no player
// bit is set anywhere on the board.
func (b Board) PlayerCell() (row, col int, ok bool) {
	for i, c := range b.cells {
		if c&playerBit != 0 {
			return i / b.size, i % b.size, true
		}
	}
	return 0, 0, false
}

// Projectiles returns every projectile on the board in centered coordinates.
func (b Board) Projectiles() []Projectile {
	var out []Projectile
	for i, c := range b.cells {
		if c&projectileMask == 0 {
			continue
		}
		row, col := i/b.size, i%b.size
		for _, d := range core.AllDirections() {
			if c&projectileBit(d) != 0 {
				out = append(out, Projectile{
					Pos: core.IndexToPosition(row, col, b.size),
					Dir: d,
				})
			}
		}
	}
	return out
}

// Advance moves every projectile bit one cell along its heading and returns
// the resulting board. Projectiles leaving the grid vanish; projectiles
// merging into one cell OR their bits. The player bit is carried unchanged:
// player movement is the graph's concern, not the simulator's.
func Advance(b Board) Board {
	next := New(b.size)
	for i, c := range b.cells {
		if c == 0 {
			continue
		}
		row, col := i/b.size, i%b.size
		if c&playerBit != 0 {
			next.cells[i] |= playerBit
		}
		for _, d := range core.AllDirections() {
			if c&projectileBit(d) == 0 {
				continue
			}
			dr, dc := d.Delta()
			destRow, destCol := row+dr, col+dc
			if !core.InBounds(destRow, destCol, b.size) {
				continue
			}
			next.cells[destRow*b.size+destCol] |= projectileBit(d)
		}
	}
	return next
}

// Simulate materializes the turn sequence boards[0..steps], advancing the
// start board step times. Graph construction needs random access to both
// boards[t] and boards[t+1], so the whole sequence is produced up front.
func Simulate(start Board, steps int) []Board {
	boards := make([]Board, steps+1)
	boards[0] = start
	for t := 1; t <= steps; t++ {
		boards[t] = Advance(boards[t-1])
	}
	return boards
}
