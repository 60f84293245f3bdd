package spawn

import "math/rand"

// Selector picks one candidate among equally valid options. Injecting the
// choice lets callers substitute deterministic or difficulty-weighted
// policies for the default random pick.
type Selector func(options []Candidate) int

// SetSelector picks one candidate set out of the family a search returns.
type SetSelector func(options [][]Candidate) int

// First deterministically picks the lowest-index option.
func First(options []Candidate) int {
	return 0
}

// FirstSet deterministically picks the first surviving set.
func FirstSet(options [][]Candidate) int {
	return 0
}

// Random picks uniformly among the options using the given source.
func Random(rng *rand.Rand) Selector {
	return func(options []Candidate) int {
		return rng.Intn(len(options))
	}
}

// RandomSet picks uniformly among the surviving sets.
func RandomSet(rng *rand.Rand) SetSelector {
	return func(options [][]Candidate) int {
		return rng.Intn(len(options))
	}
}

// Aligned prefers candidates whose lane sweeps the player's start row or
// column, falling back to a random pick when none align. Used by the harder
// difficulty presets: an aligned spawn forces the player to move off its
// lane immediately.
func Aligned(playerRow, playerCol int, rng *rand.Rand) Selector {
	return func(options []Candidate) int {
		var aligned []int
		for i, c := range options {
			if c.Threatens(playerRow, playerCol) {
				aligned = append(aligned, i)
			}
		}
		if len(aligned) > 0 {
			return aligned[rng.Intn(len(aligned))]
		}
		return rng.Intn(len(options))
	}
}

// Evasive prefers candidates whose lane misses the player's start row and
// column. Used by the easy preset.
func Evasive(playerRow, playerCol int, rng *rand.Rand) Selector {
	return func(options []Candidate) int {
		var clear []int
		for i, c := range options {
			if !c.Threatens(playerRow, playerCol) {
				clear = append(clear, i)
			}
		}
		if len(clear) > 0 {
			return clear[rng.Intn(len(clear))]
		}
		return rng.Intn(len(options))
	}
}
