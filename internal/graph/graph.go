// Package graph builds the layered reachability DAG over (turn, position)
// states. Nodes live in a flat arena addressed by (turn, row, col); each
// node's edges pack into a single byte, low nibble for next edges and high
// nibble for prev edges, keyed by direction. Copying a graph is therefore a
// flat buffer copy, which matters because every search branch mutates its
// own copy.
package graph

import (
	"errors"

	"gridlock/internal/board"
	"gridlock/internal/core"
)

// ErrNoPlayer is returned by Build when the turn-0 board carries no player
// cell. This is a contract violation by the caller.
var ErrNoPlayer = errors.New("graph: no player cell on turn-0 board")

const prevShift = 4

func nextBit(d core.Direction) uint8 {
	return 1 << uint(d)
}

func prevBit(d core.Direction) uint8 {
	return 1 << (prevShift + uint(d))
}

// Graph is the reachability DAG for one planning call. A node at (turn, row,
// col) is player-reachable iff it has a prev edge, except the turn-0 start
// node which is the BFS root.
type Graph struct {
	size  int
	turns int
	nodes []uint8
}

// Build expands the reachability graph breadth-first from the player's
// turn-0 cell. A move from (turn, row, col) in direction d is legal unless
// the destination lies on the outer rim, holds a projectile on the next
// board, or trades cells with a projectile moving the opposite way during
// the same transition (a swap collision). Edges are symmetric: every next
// edge has a matching prev edge on the node one turn later.
func Build(boards []board.Board) (*Graph, error) {
	if len(boards) < 2 {
		return nil, errors.New("graph: need at least two simulated boards")
	}
	size := boards[0].Size()
	g := &Graph{
		size:  size,
		turns: len(boards),
		nodes: make([]uint8, len(boards)*size*size),
	}

	startRow, startCol, ok := boards[0].PlayerCell()
	if !ok {
		return nil, ErrNoPlayer
	}

	type state struct{ turn, row, col int }
	visited := make([]bool, len(g.nodes))
	queue := []state{{0, startRow, startCol}}
	visited[g.index(0, startRow, startCol)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.turn == g.turns-1 {
			continue
		}

		for _, d := range core.AllDirections() {
			dr, dc := d.Delta()
			destRow, destCol := cur.row+dr, cur.col+dc
			if !core.InBounds(destRow, destCol, size) || core.OnRim(destRow, destCol, size) {
				continue
			}
			if boards[cur.turn+1].HasProjectile(destRow, destCol) {
				continue
			}
			if boards[cur.turn].HasProjectileHeading(destRow, destCol, d.Opposite()) {
				continue
			}

			g.addEdge(cur.turn, cur.row, cur.col, d)

			// Enqueue on first discovery only; later edges into an already
			// discovered node are still recorded above.
			di := g.index(cur.turn+1, destRow, destCol)
			if !visited[di] {
				visited[di] = true
				queue = append(queue, state{cur.turn + 1, destRow, destCol})
			}
		}
	}

	return g, nil
}

// Size returns the board dimension N.
func (g *Graph) Size() int {
	return g.size
}

// Turns returns the number of node layers (simulated turns).
func (g *Graph) Turns() int {
	return g.turns
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	nodes := make([]uint8, len(g.nodes))
	copy(nodes, g.nodes)
	return &Graph{size: g.size, turns: g.turns, nodes: nodes}
}

// Solvable reports whether some last-turn node is still reachable.
func (g *Graph) Solvable() bool {
	last := (g.turns - 1) * g.size * g.size
	for _, n := range g.nodes[last:] {
		if n>>prevShift != 0 {
			return true
		}
	}
	return false
}

func (g *Graph) index(turn, row, col int) int {
	return (turn*g.size+row)*g.size + col
}

func (g *Graph) addEdge(turn, row, col int, d core.Direction) {
	dr, dc := d.Delta()
	g.nodes[g.index(turn, row, col)] |= nextBit(d)
	g.nodes[g.index(turn+1, row+dr, col+dc)] |= prevBit(d.Opposite())
}

// HasEdge reports whether the node at (turn, row, col) has a next edge in
// direction d.
func (g *Graph) HasEdge(turn, row, col int, d core.Direction) bool {
	return g.nodes[g.index(turn, row, col)]&nextBit(d) != 0
}

// HasPrevEdge reports whether the node has a prev edge from the node one
// turn earlier in direction d (that is, the predecessor sits at the cell one
// step in direction d from this node).
func (g *Graph) HasPrevEdge(turn, row, col int, d core.Direction) bool {
	return g.nodes[g.index(turn, row, col)]&prevBit(d) != 0
}

// HasPrev reports whether the node is reached by any prev edge.
func (g *Graph) HasPrev(turn, row, col int) bool {
	return g.nodes[g.index(turn, row, col)]>>prevShift != 0
}

// RemoveEdge severs the next edge in direction d from (turn, row, col) and
// its matching prev edge on the successor. It reports whether the successor
// lost its last prev edge, in which case the caller must cascade from it.
// Removing an absent edge is a no-op.
func (g *Graph) RemoveEdge(turn, row, col int, d core.Direction) bool {
	i := g.index(turn, row, col)
	if g.nodes[i]&nextBit(d) == 0 {
		return false
	}
	g.nodes[i] &^= nextBit(d)

	dr, dc := d.Delta()
	si := g.index(turn+1, row+dr, col+dc)
	g.nodes[si] &^= prevBit(d.Opposite())
	return g.nodes[si]>>prevShift == 0
}

// RemoveIncoming cuts every prev edge of the node, clearing the matching
// next edges on its predecessors. The node's own next edges are left for the
// cascade to strip.
func (g *Graph) RemoveIncoming(turn, row, col int) {
	i := g.index(turn, row, col)
	for _, d := range core.AllDirections() {
		if g.nodes[i]&prevBit(d) == 0 {
			continue
		}
		dr, dc := d.Delta()
		pi := g.index(turn-1, row+dr, col+dc)
		g.nodes[pi] &^= nextBit(d.Opposite())
	}
	g.nodes[i] &= 0x0f
}

// StripOutgoing removes every next edge of the node and the matching prev
// edges downstream, invoking orphaned for each successor whose prev set
// becomes empty.
func (g *Graph) StripOutgoing(turn, row, col int, orphaned func(turn, row, col int)) {
	i := g.index(turn, row, col)
	for _, d := range core.AllDirections() {
		if g.nodes[i]&nextBit(d) == 0 {
			continue
		}
		dr, dc := d.Delta()
		destRow, destCol := row+dr, col+dc
		si := g.index(turn+1, destRow, destCol)
		g.nodes[si] &^= prevBit(d.Opposite())
		if g.nodes[si]>>prevShift == 0 {
			orphaned(turn+1, destRow, destCol)
		}
	}
	g.nodes[i] &= 0xf0
}
