package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gridlock/internal/board"
	"gridlock/internal/config"
	"gridlock/internal/core"
	"gridlock/internal/engine"
	"gridlock/internal/level"
	"gridlock/internal/spawn"
	"gridlock/internal/storage"
)

var (
	flagSize       int
	flagCount      int
	flagStrategy   string
	flagLevel      string
	flagPlayer     string
	flagDifficulty string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Place projectiles that keep the board solvable",
	Long: `Plan new projectile spawns for a board. The planner simulates the turn
sequence, builds the player's reachability graph and places only spawns whose
trajectories leave a survivable move sequence intact.

Difficulty options:
  easy   - Prefers spawns whose lane misses the player
  normal - Picks uniformly among valid spawns
  hard   - Prefers spawns sweeping the player's row or column
  fixed  - Always picks the first valid spawn (reproducible)

Examples:
  gridlock plan
  gridlock plan --size 9 --count 5
  gridlock plan --level ./levels/cross.csv --difficulty hard
  gridlock plan --strategy iterative --seed 42`,
	Run: runPlan,
}

func init() {
	planCmd.Flags().IntVar(&flagSize, "size", 0, "Board dimension N (odd, >= 5)")
	planCmd.Flags().IntVar(&flagCount, "count", -1, "Number of projectiles to place")
	planCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Search strategy: choose, iterative")
	planCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level file with initial placements")
	planCmd.Flags().StringVar(&flagPlayer, "player", "0,0", "Player position as x,y in centered coordinates")
	planCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlan(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridlock",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	// Flags override the loaded config.
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	if flagCount >= 0 {
		cfg.Spawns.Count = flagCount
	}
	if flagStrategy != "" {
		cfg.Spawns.Strategy = flagStrategy
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	player, err := parsePoint(flagPlayer)
	if err != nil {
		logger.Error("invalid --player flag", "error", err)
		os.Exit(1)
	}

	// A broken level file is non-fatal: plan on an empty board instead.
	var projectiles []board.Projectile
	if flagLevel != "" {
		placements, err := level.LoadFile(flagLevel)
		if err != nil {
			logger.Warn("could not load level, planning without it", "error", err)
		} else {
			projectiles = level.InitialProjectiles(placements)
			logger.Info("level loaded", "path", flagLevel, "placements", len(placements))
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	playerRow, playerCol := core.PositionToIndex(player, cfg.Board.Size)
	selector, setSelector := presetPolicies(cfg.Difficulty.Preset, playerRow, playerCol, rng)

	strategy, err := spawn.New(cfg.Spawns.Strategy, selector)
	if err != nil {
		logger.Error("unknown strategy", "error", err, "available", spawn.Names())
		os.Exit(1)
	}

	planner := engine.New(
		engine.WithStrategy(strategy),
		engine.WithSetSelector(setSelector),
	)

	logger.Info("planning",
		"size", cfg.Board.Size,
		"count", cfg.Spawns.Count,
		"strategy", cfg.Spawns.Strategy,
		"preset", cfg.Difficulty.Preset,
		"seed", seed,
	)

	start := time.Now()
	placed, err := planner.Plan(engine.Request{
		Player:      player,
		Projectiles: projectiles,
		Size:        cfg.Board.Size,
		Count:       cfg.Spawns.Count,
	})
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("planning failed", "error", err)
		os.Exit(1)
	}

	b := board.FromState(player, projectiles, cfg.Board.Size)
	fmt.Println()
	fmt.Print(renderBoard(b, placed))
	fmt.Println()

	if len(placed) == 0 {
		fmt.Println("No spawns placed: the board cannot support any without trapping the player.")
	} else {
		fmt.Printf("Placed %d of %d requested spawns:\n", len(placed), cfg.Spawns.Count)
		for _, p := range placed {
			fmt.Printf("  (%d, %d) heading %s\n", p.Pos.X, p.Pos.Y, p.Dir)
		}
	}
	logger.Info("done", "placed", len(placed), "duration", elapsed)

	savePlanRun(logger, cfg, len(placed), elapsed)
}

// presetPolicies maps a difficulty preset to the per-step and family-level
// selection policies.
func presetPolicies(preset config.DifficultyPreset, playerRow, playerCol int, rng *rand.Rand) (spawn.Selector, spawn.SetSelector) {
	switch preset {
	case config.DifficultyEasy:
		return spawn.Evasive(playerRow, playerCol, rng), spawn.RandomSet(rng)
	case config.DifficultyHard:
		return spawn.Aligned(playerRow, playerCol, rng), spawn.RandomSet(rng)
	case config.DifficultyFixed:
		return spawn.First, spawn.FirstSet
	default:
		return spawn.Random(rng), spawn.RandomSet(rng)
	}
}

// savePlanRun records the run in the history database. Failures are warnings:
// history is a convenience, not part of the planning contract.
func savePlanRun(logger *log.Logger, cfg config.Config, placed int, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SavePlan(storage.PlanEntry{
		BoardSize:  cfg.Board.Size,
		Strategy:   cfg.Spawns.Strategy,
		Requested:  cfg.Spawns.Count,
		Placed:     placed,
		Solvable:   placed > 0 || cfg.Spawns.Count == 0,
		DurationMS: elapsed.Milliseconds(),
	}); err != nil {
		logger.Warn("could not record plan", "error", err)
	}
}
