// Package engine exposes the synchronous hazard-planning operation: given
// the current board state and a requested spawn count, it simulates the turn
// sequence, builds the reachability graph and searches for spawn points that
// keep the board solvable.
package engine

import (
	"fmt"

	"gridlock/internal/board"
	"gridlock/internal/core"
	"gridlock/internal/graph"
	"gridlock/internal/spawn"
)

// DefaultBoardSize is used when a request leaves the size unset.
const DefaultBoardSize = 7

// Request describes one planning call.
type Request struct {
	// Player is the player's position in centered coordinates.
	Player core.Point
	// Projectiles are the hazards already in play.
	Projectiles []board.Projectile
	// Size is the board dimension N (odd, >= 5). Zero means DefaultBoardSize.
	Size int
	// Count is the requested number of new spawns (>= 0).
	Count int
}

// Planner runs planning calls with a fixed strategy and set-selection
// policy. Planners hold no per-call state and are safe to reuse.
type Planner struct {
	strategy spawn.Strategy
	pickSet  spawn.SetSelector
}

// Option configures a Planner.
type Option func(*Planner)

// WithStrategy replaces the default exhaustive search strategy.
func WithStrategy(s spawn.Strategy) Option {
	return func(p *Planner) {
		p.strategy = s
	}
}

// WithSetSelector replaces the policy picking one set out of the surviving
// family.
func WithSetSelector(sel spawn.SetSelector) Option {
	return func(p *Planner) {
		p.pickSet = sel
	}
}

// New returns a planner using the exhaustive strategy and the deterministic
// first-set policy unless options say otherwise.
func New(opts ...Option) *Planner {
	p := &Planner{
		strategy: spawn.Choose{},
		pickSet:  spawn.FirstSet,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan returns up to req.Count new projectiles whose simultaneous presence
// keeps the player a legal move sequence through every simulated turn. It
// returns fewer when the board cannot support the full count, and an empty
// list when the base board is already unsolvable. A missing player cell is a
// contract violation and fails.
func (p *Planner) Plan(req Request) ([]board.Projectile, error) {
	size := req.Size
	if size == 0 {
		size = DefaultBoardSize
	}
	if size < 5 || size%2 == 0 {
		return nil, fmt.Errorf("engine: board size must be odd and at least 5, got %d", size)
	}
	if req.Count < 0 {
		return nil, fmt.Errorf("engine: spawn count must be non-negative, got %d", req.Count)
	}

	start := board.FromState(req.Player, req.Projectiles, size)
	boards := board.Simulate(start, size-2)

	g, err := graph.Build(boards)
	if err != nil {
		return nil, err
	}
	if !g.Solvable() {
		return nil, nil
	}

	family, err := p.strategy.Search(g, spawn.Candidates(size), req.Count)
	if err != nil {
		return nil, err
	}
	if len(family) == 0 {
		return nil, nil
	}

	set := family[p.pickSet(family)]
	out := make([]board.Projectile, len(set))
	for i, c := range set {
		out[i] = c.Projectile(size)
	}
	return out, nil
}
