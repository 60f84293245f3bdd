package core

// Point is a position in centered board coordinates: the origin sits at the
// board center, X grows eastward and Y grows northward (toward row 0).
type Point struct {
	X, Y int
}

// IndexToPosition converts grid indices to centered coordinates for a board
// of the given size. It is the exact inverse of PositionToIndex.
func IndexToPosition(row, col, size int) Point {
	half := size / 2
	return Point{X: col - half, Y: half - row}
}

// PositionToIndex converts centered coordinates back to grid indices.
func PositionToIndex(p Point, size int) (row, col int) {
	half := size / 2
	return half - p.Y, p.X + half
}

// InBounds reports whether the cell lies on a board of the given size.
func InBounds(row, col, size int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

// OnRim reports whether the cell lies on the outer ring of the board. The
// rim is reserved for projectile spawns; the player may never occupy it.
func OnRim(row, col, size int) bool {
	return row == 0 || row == size-1 || col == 0 || col == size-1
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
