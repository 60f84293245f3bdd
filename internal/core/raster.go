package core

// TraceLine rasterizes the integer line segment from a to b and returns the
// ordered cell sequence, a first and b last. The walk is octant-normalized
// Bresenham: mirroring the segment across either axis yields the mirrored
// cell sequence, so the rendered trajectory does not depend on slope sign.
func TraceLine(a, b Point) []Point {
	dx := Abs(b.X - a.X)
	dy := -Abs(b.Y - a.Y)

	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}

	cells := make([]Point, 0, Abs(dx)+Abs(dy)+1)
	x, y := a.X, a.Y
	err := dx + dy

	for {
		cells = append(cells, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
