package config

import (
	_ "embed"
)

//go:embed defaults/gridlock.yaml
var defaultYAML []byte

// Default returns the built-in planner configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: 7,
		},
		Spawns: SpawnConfig{
			Count:    3,
			Strategy: "choose",
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
		Seed: 0,
	}
}
