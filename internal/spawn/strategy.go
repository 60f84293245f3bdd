package spawn

import (
	"fmt"
	"sort"
	"sync"

	"gridlock/internal/graph"
)

// Strategy searches for candidate sets whose simultaneous placement keeps
// the base graph solvable. Search returns the family of surviving sets, each
// holding at most k members; an empty family means the board cannot support
// any spawn. The caller's set selector picks the final set.
type Strategy interface {
	Name() string
	Search(base *graph.Graph, cands []Candidate, k int) ([][]Candidate, error)
}

// Factory builds a strategy with the given per-step selector. Strategies
// that do not select per step ignore it.
type Factory func(sel Selector) Strategy

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a strategy factory under the given name. Called from init
// functions; panics on duplicates.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("spawn: strategy %q already registered", name))
	}
	factories[name] = f
}

// New instantiates a registered strategy by name.
func New(name string, sel Selector) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("spawn: unknown strategy %q", name)
	}
	return f(sel), nil
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
