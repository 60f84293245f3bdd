package spawn

import (
	"math/rand"
	"testing"

	"gridlock/internal/board"
	"gridlock/internal/core"
	"gridlock/internal/graph"
)

func buildGraph(t *testing.T, player core.Point, projectiles []board.Projectile, size int) *graph.Graph {
	t.Helper()
	b := board.FromState(player, projectiles, size)
	g, err := graph.Build(board.Simulate(b, size-2))
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return g
}

func trappedGraph(t *testing.T) *graph.Graph {
	t.Helper()
	projectiles := []board.Projectile{
		{Pos: core.Point{X: 0, Y: 2}, Dir: core.Down},
		{Pos: core.Point{X: 0, Y: -2}, Dir: core.Up},
		{Pos: core.Point{X: -2, Y: 0}, Dir: core.Right},
		{Pos: core.Point{X: 2, Y: 0}, Dir: core.Left},
	}
	return buildGraph(t, core.Point{}, projectiles, 5)
}

func TestCandidatesEnumeration(t *testing.T) {
	cands := Candidates(7)
	if len(cands) != 20 {
		t.Fatalf("got %d candidates, want 20", len(cands))
	}
	for i, c := range cands {
		if c.Index != i {
			t.Errorf("candidate %d carries index %d", i, c.Index)
		}
		if !core.OnRim(c.Row, c.Col, 7) {
			t.Errorf("candidate %d at (%d,%d) is not on the rim", i, c.Row, c.Col)
		}
		corner := (c.Row == 0 || c.Row == 6) && (c.Col == 0 || c.Col == 6)
		if corner {
			t.Errorf("candidate %d sits on a corner", i)
		}
		dr, dc := c.Dir.Delta()
		if !core.InBounds(c.Row+dr, c.Col+dc, 7) || core.OnRim(c.Row+dr, c.Col+dc, 7) {
			t.Errorf("candidate %d direction %v does not point inward", i, c.Dir)
		}
	}
}

func TestTryPlaceAllCandidatesValidateOnEmptyBoard(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	for _, c := range Candidates(7) {
		ok, g2 := TryPlace(base, c)
		if !ok {
			t.Errorf("candidate %d at (%d,%d) rejected on an empty board", c.Index, c.Row, c.Col)
		}
		if g2 == nil || !g2.Solvable() {
			t.Errorf("candidate %d: post-cut graph not solvable", c.Index)
		}
	}
}

func TestTryPlaceDoesNotMutateInput(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	snapshot := base.Clone()
	cand := Candidates(7)[0]
	TryPlace(base, cand)

	size := base.Size()
	for turn := 0; turn < base.Turns(); turn++ {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				for _, d := range core.AllDirections() {
					if base.HasEdge(turn, row, col, d) != snapshot.HasEdge(turn, row, col, d) {
						t.Fatalf("TryPlace mutated base at turn %d (%d,%d)", turn, row, col)
					}
				}
			}
		}
	}
}

func TestTryPlaceIsIdempotent(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	for _, c := range Candidates(7) {
		first, _ := TryPlace(base, c)
		second, _ := TryPlace(base, c)
		if first != second {
			t.Fatalf("candidate %d: TryPlace not idempotent (%v then %v)", c.Index, first, second)
		}
	}
}

func TestTryPlaceCutsTrajectoryNodes(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	// Candidate above the player's column sweeps column 3 downward.
	var cand Candidate
	for _, c := range Candidates(7) {
		if c.Row == 0 && c.Col == 3 {
			cand = c
			break
		}
	}
	ok, g2 := TryPlace(base, cand)
	if !ok {
		t.Fatal("column candidate rejected on an empty board")
	}
	// The projectile occupies (t, t, 3) for each turn t; none of those nodes
	// may remain reached.
	for turn := 1; turn < g2.Turns(); turn++ {
		if g2.HasPrev(turn, turn, 3) {
			t.Errorf("turn %d: trajectory node (%d,3) still reached", turn, turn)
		}
	}
}

func TestChooseSingleSpawnFamily(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	family, err := Choose{}.Search(base, Candidates(7), 1)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(family) != 20 {
		t.Fatalf("family has %d sets, want 20", len(family))
	}
	for i, set := range family {
		if len(set) != 1 {
			t.Fatalf("set %d has %d members, want 1", i, len(set))
		}
		if set[0].Index != i {
			t.Errorf("set %d holds candidate %d; family not in canonical order", i, set[0].Index)
		}
	}
}

func TestChooseThreeSpawns(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	family, err := Choose{}.Search(base, Candidates(7), 3)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(family) == 0 {
		t.Fatal("no surviving sets for k=3 on an empty board")
	}
	for _, set := range family {
		if len(set) != 3 {
			t.Fatalf("survivor has %d members, want 3", len(set))
		}
		for j := 1; j < len(set); j++ {
			if set[j].Index <= set[j-1].Index {
				t.Fatalf("set members not in increasing index order: %d then %d",
					set[j-1].Index, set[j].Index)
			}
		}
	}
}

func TestChooseUnsolvableBase(t *testing.T) {
	base := trappedGraph(t)
	family, err := Choose{}.Search(base, Candidates(5), 2)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(family) != 0 {
		t.Errorf("unsolvable base yielded %d sets, want 0", len(family))
	}
}

func TestChooseZeroCount(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	family, err := Choose{}.Search(base, Candidates(7), 0)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if family != nil {
		t.Errorf("k=0 yielded %d sets, want none", len(family))
	}
}

func TestIterativeDeterministicWithFirstSelector(t *testing.T) {
	cands := Candidates(7)
	run := func() []Candidate {
		base := buildGraph(t, core.Point{}, nil, 7)
		family, err := Iterative{Select: First}.Search(base, cands, 3)
		if err != nil {
			t.Fatalf("Search() failed: %v", err)
		}
		if len(family) != 1 {
			t.Fatalf("iterative returned %d sets, want 1", len(family))
		}
		return family[0]
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Index != b[i].Index {
			t.Errorf("member %d differs: %d vs %d", i, a[i].Index, b[i].Index)
		}
	}
}

func TestIterativeRespectsCount(t *testing.T) {
	base := buildGraph(t, core.Point{}, nil, 7)
	rng := rand.New(rand.NewSource(7))
	family, err := Iterative{Select: Random(rng)}.Search(base, Candidates(7), 2)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(family) != 1 || len(family[0]) != 2 {
		t.Fatalf("iterative k=2 returned %v", family)
	}
	seen := make(map[int]bool)
	for _, c := range family[0] {
		if seen[c.Index] {
			t.Errorf("candidate %d placed twice", c.Index)
		}
		seen[c.Index] = true
	}
}

func TestIterativeUnsolvableBase(t *testing.T) {
	base := trappedGraph(t)
	family, err := Iterative{Select: First}.Search(base, Candidates(5), 3)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if family != nil {
		t.Errorf("unsolvable base yielded %v", family)
	}
}

func TestStrategyRegistry(t *testing.T) {
	for _, name := range []string{"choose", "iterative"} {
		s, err := New(name, First)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("strategy %q reports name %q", name, s.Name())
		}
	}
	if _, err := New("annealing", nil); err == nil {
		t.Error("unknown strategy did not fail")
	}
	names := Names()
	if len(names) < 2 {
		t.Errorf("Names() = %v, want at least choose and iterative", names)
	}
}

func TestSelectorAlignment(t *testing.T) {
	cands := Candidates(7)
	rng := rand.New(rand.NewSource(1))
	pick := Aligned(3, 3, rng)(cands)
	if !cands[pick].Threatens(3, 3) {
		t.Errorf("aligned selector picked candidate %d which misses the player", pick)
	}
	avoid := Evasive(3, 3, rng)(cands)
	if cands[avoid].Threatens(3, 3) {
		t.Errorf("evasive selector picked candidate %d which threatens the player", avoid)
	}
}
