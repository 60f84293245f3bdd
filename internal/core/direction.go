// Package core provides grid geometry primitives for the planning engine.
// It contains no external dependencies to keep engine logic pure and
// testable.
package core

// Direction is a cardinal movement direction on the board. The value order
// matches the direction codes used in level files and the projectile bit
// layout in the board model.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// AllDirections returns every valid direction for iteration.
func AllDirections() []Direction {
	return []Direction{Up, Left, Down, Right}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the row and column offsets of one step in this direction.
// Up decreases the row index: north is toward row 0.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Arrow returns a single-rune marker for the direction, used by the CLI
// board preview.
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '^'
	case Left:
		return '<'
	case Down:
		return 'v'
	case Right:
		return '>'
	default:
		return '?'
	}
}
