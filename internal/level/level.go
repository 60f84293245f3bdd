// Package level reads initial projectile placements from tabular level
// files: one header row naming four columns, then one row per placement
// holding four integers (x, y, direction code 0-3, spawn turn). Load errors
// are non-fatal for callers: a malformed file yields an error and no data,
// and the caller decides whether to continue without it.
package level

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gridlock/internal/board"
	"gridlock/internal/core"
)

// Placement is one row of a level table: a projectile spawn in centered
// coordinates, released on the given turn.
type Placement struct {
	X, Y int
	Dir  core.Direction
	Turn int
}

// Position returns the placement's centered-coordinate point.
func (p Placement) Position() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// Parse reads the tabular format from r. Any malformed row, wrong column
// count or out-of-range direction code fails the whole load and yields no
// data.
func Parse(r io.Reader) ([]Placement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("level: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("level: reading header: %w", err)
	}
	if len(header) != 4 {
		return nil, fmt.Errorf("level: header names %d columns, want 4", len(header))
	}

	var placements []Placement
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("level: row %d: %w", line, err)
		}

		fields := make([]int, 4)
		for i, raw := range record {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("level: row %d column %q: not an integer: %q", line, header[i], raw)
			}
			fields[i] = v
		}

		dir := core.Direction(fields[2])
		if !dir.IsValid() {
			return nil, fmt.Errorf("level: row %d: direction code %d out of range 0-3", line, fields[2])
		}
		if fields[3] < 0 {
			return nil, fmt.Errorf("level: row %d: negative spawn turn %d", line, fields[3])
		}

		placements = append(placements, Placement{
			X:    fields[0],
			Y:    fields[1],
			Dir:  dir,
			Turn: fields[3],
		})
	}

	return placements, nil
}

// LoadFile reads and parses a level file from disk.
func LoadFile(path string) ([]Placement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// InitialProjectiles converts every placement released on turn 0 into a
// projectile for the starting board.
func InitialProjectiles(placements []Placement) []board.Projectile {
	var out []board.Projectile
	for _, p := range placements {
		if p.Turn != 0 {
			continue
		}
		out = append(out, board.Projectile{Pos: p.Position(), Dir: p.Dir})
	}
	return out
}
