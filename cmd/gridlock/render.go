package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridlock/internal/board"
	"gridlock/internal/core"
)

var (
	playerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	projectileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	spawnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	gridStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderBoard draws the grid row by row. The player renders as @, projectiles
// as their heading arrow (* when a cell holds several) and highlighted spawn
// cells in the spawn style.
func renderBoard(b board.Board, highlights []board.Projectile) string {
	size := b.Size()
	hl := make(map[[2]int]core.Direction, len(highlights))
	for _, p := range highlights {
		row, col := core.PositionToIndex(p.Pos, size)
		hl[[2]int{row, col}] = p.Dir
	}

	var sb strings.Builder
	for row := range size {
		for col := range size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if d, ok := hl[[2]int{row, col}]; ok {
				sb.WriteString(spawnStyle.Render(string(d.Arrow())))
				continue
			}
			switch {
			case b.HasPlayer(row, col):
				sb.WriteString(playerStyle.Render("@"))
			case b.HasProjectile(row, col):
				sb.WriteString(projectileStyle.Render(string(cellArrow(b, row, col))))
			default:
				sb.WriteString(gridStyle.Render("."))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cellArrow picks the marker for a projectile cell.
func cellArrow(b board.Board, row, col int) rune {
	var found core.Direction
	count := 0
	for _, d := range core.AllDirections() {
		if b.HasProjectileHeading(row, col, d) {
			found = d
			count++
		}
	}
	if count > 1 {
		return '*'
	}
	return found.Arrow()
}

// parsePoint reads an "x,y" pair in centered coordinates.
func parsePoint(s string) (core.Point, error) {
	var p core.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		return core.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	return p, nil
}
