package spawn

import (
	"gridlock/internal/core"
	"gridlock/internal/graph"
)

// TryPlace tests whether spawning a projectile at the candidate keeps the
// graph solvable. It walks the candidate's straight-line trajectory across
// the simulated turns; at each turn it cuts the reached node there, severs
// the swap edge against the incoming projectile, and queues unreached nodes
// for the downstream cascade. The input graph is never mutated: the returned
// graph is a post-cut copy the caller owns, so multiple branches can explore
// from the same base.
func TryPlace(g *graph.Graph, c Candidate) (bool, *graph.Graph) {
	out := g.Clone()
	size := out.Size()
	dr, dc := c.Dir.Delta()

	type node struct{ turn, row, col int }
	var queue []node
	orphaned := func(turn, row, col int) {
		queue = append(queue, node{turn, row, col})
	}

	row, col := c.Row, c.Col
	for turn := 0; turn < out.Turns() && core.InBounds(row, col, size); turn++ {
		if out.HasPrev(turn, row, col) {
			out.RemoveIncoming(turn, row, col)
			orphaned(turn, row, col)
		}
		if turn > 0 {
			// Swap edge: a player standing where the projectile lands this
			// turn and stepping back along the trajectory would trade cells
			// with it. RemoveEdge reports whether the move's destination
			// lost its last prev edge.
			if out.RemoveEdge(turn-1, row, col, c.Dir.Opposite()) {
				orphaned(turn, row-dr, col-dc)
			}
		}
		row += dr
		col += dc
	}

	// Cascade: strip each unreached node's outgoing edges and keep going
	// wherever a successor loses its last prev edge.
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.turn == out.Turns()-1 {
			continue
		}
		out.StripOutgoing(cur.turn, cur.row, cur.col, orphaned)
	}

	return out.Solvable(), out
}
