// Package config provides YAML-based planner configuration loading and
// difficulty presets for the gridlock CLI.
package config

import "fmt"

// Config holds every tunable the planner CLI exposes.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Spawns     SpawnConfig      `yaml:"spawns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Seed       int64            `yaml:"seed"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	// Size is the board dimension N. Must be odd and at least 5.
	Size int `yaml:"size"`
}

// SpawnConfig defines how many projectiles to place and with which search
// strategy.
type SpawnConfig struct {
	Count    int    `yaml:"count"`
	Strategy string `yaml:"strategy"`
}

// DifficultyConfig selects the spawn-selection policy.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset names a spawn-selection policy. The engine exposes
// selection as its only difficulty hook: presets decide which equally valid
// spawn the planner commits.
type DifficultyPreset string

const (
	// DifficultyEasy prefers spawns whose lane misses the player.
	DifficultyEasy DifficultyPreset = "easy"
	// DifficultyNormal picks uniformly among valid spawns.
	DifficultyNormal DifficultyPreset = "normal"
	// DifficultyHard prefers spawns sweeping the player's row or column.
	DifficultyHard DifficultyPreset = "hard"
	// DifficultyFixed always picks the first valid spawn, for reproducible
	// plans without a seed.
	DifficultyFixed DifficultyPreset = "fixed"
)

// IsValid reports whether the preset is one of the named policies.
func (p DifficultyPreset) IsValid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// Validate checks the configuration for values the planner would reject.
func (c Config) Validate() error {
	if c.Board.Size < 5 || c.Board.Size%2 == 0 {
		return fmt.Errorf("config: board size must be odd and at least 5, got %d", c.Board.Size)
	}
	if c.Spawns.Count < 0 {
		return fmt.Errorf("config: spawn count must be non-negative, got %d", c.Spawns.Count)
	}
	if c.Spawns.Strategy == "" {
		return fmt.Errorf("config: spawn strategy must be set")
	}
	if !c.Difficulty.Preset.IsValid() {
		return fmt.Errorf("config: unknown difficulty preset %q", c.Difficulty.Preset)
	}
	return nil
}

// ApplyPreset overrides the configured difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset.IsValid() {
		cfg.Difficulty.Preset = preset
	}
}
