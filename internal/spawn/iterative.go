package spawn

import (
	"github.com/zyedidia/generic/mapset"

	"gridlock/internal/graph"
)

// Iterative is the randomized-incremental strategy: one running graph, one
// running set. Each step evaluates every unused candidate against the
// running graph, the selector commits one, and its post-cut graph becomes
// the new running graph. Linear passes instead of combinatorial rounds, at
// the cost of a possibly sub-maximal result.
type Iterative struct {
	Select Selector
}

func init() {
	Register("iterative", func(sel Selector) Strategy {
		if sel == nil {
			sel = First
		}
		return Iterative{Select: sel}
	})
}

// Name returns the strategy identifier.
func (Iterative) Name() string {
	return "iterative"
}

// Search grows one candidate set until it reaches size k or no unused
// candidate validates. The returned family holds the single running set.
func (s Iterative) Search(base *graph.Graph, cands []Candidate, k int) ([][]Candidate, error) {
	if k <= 0 || !base.Solvable() {
		return nil, nil
	}

	used := mapset.New[int]()
	running := base
	var members []Candidate

	for len(members) < k {
		var options []Candidate
		graphs := make(map[int]*graph.Graph)
		for _, c := range cands {
			if used.Has(c.Index) {
				continue
			}
			if ok, g2 := TryPlace(running, c); ok {
				options = append(options, c)
				graphs[c.Index] = g2
			}
		}
		if len(options) == 0 {
			break
		}

		picked := options[s.Select(options)]
		used.Put(picked.Index)
		running = graphs[picked.Index]
		members = append(members, picked)
	}

	if len(members) == 0 {
		return nil, nil
	}
	return [][]Candidate{members}, nil
}
