package spawn

import (
	"errors"
	"slices"

	"gridlock/internal/graph"
)

// ErrUnevenFamily signals an algorithm defect: the surviving candidate sets
// do not all share one length at search termination.
var ErrUnevenFamily = errors.New("spawn: surviving candidate sets have inconsistent lengths")

// Choose is the exhaustive strategy. Each round extends every surviving set
// by every unused candidate with an index greater than the set's last member
// (the fixed ordering avoids duplicate combinations), keeping the extensions
// that validate against that set's own post-cut graph. Rounds run until no
// set can grow or every set reaches size k, so all survivors share one
// length m <= k.
type Choose struct{}

func init() {
	Register("choose", func(Selector) Strategy {
		return Choose{}
	})
}

// Name returns the strategy identifier.
func (Choose) Name() string {
	return "choose"
}

// Search runs the exhaustive search. Each round fans out one worker per
// surviving set: a worker owns the set's graph and its slice of remaining
// candidates, and no shared mutable graph crosses worker boundaries. The
// channel collect is the synchronization barrier before the next round.
func (Choose) Search(base *graph.Graph, cands []Candidate, k int) ([][]Candidate, error) {
	if k <= 0 || !base.Solvable() {
		return nil, nil
	}

	type branch struct {
		members []int
		g       *graph.Graph
	}
	current := []branch{{members: nil, g: base}}

	for range k {
		results := make(chan []branch, len(current))
		for _, br := range current {
			go func(br branch) {
				var grown []branch
				next := 0
				if n := len(br.members); n > 0 {
					next = br.members[n-1] + 1
				}
				for j := next; j < len(cands); j++ {
					ok, g2 := TryPlace(br.g, cands[j])
					if !ok {
						continue
					}
					members := make([]int, len(br.members)+1)
					copy(members, br.members)
					members[len(br.members)] = j
					grown = append(grown, branch{members: members, g: g2})
				}
				results <- grown
			}(br)
		}

		var extended []branch
		for range current {
			extended = append(extended, <-results...)
		}
		if len(extended) == 0 {
			break
		}
		current = extended
	}

	if len(current) == 1 && len(current[0].members) == 0 {
		return nil, nil
	}

	want := len(current[0].members)
	for _, br := range current {
		if len(br.members) != want {
			return nil, ErrUnevenFamily
		}
	}

	// Workers deliver in channel order; sort for a deterministic family.
	slices.SortFunc(current, func(a, b branch) int {
		return slices.Compare(a.members, b.members)
	})

	family := make([][]Candidate, len(current))
	for i, br := range current {
		set := make([]Candidate, len(br.members))
		for j, idx := range br.members {
			set[j] = cands[idx]
		}
		family[i] = set
	}
	return family, nil
}
