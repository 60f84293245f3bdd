package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gridlock/internal/board"
	"gridlock/internal/level"
)

var (
	flagSimSize   int
	flagSimLevel  string
	flagSimPlayer string
	flagSimTurns  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the simulated turn sequence for a board",
	Long: `Advance a board turn by turn and print each state. Projectiles move one
cell per turn along their heading and vanish off the grid; the player marker
stays put since player movement is the solver's choice, not the simulator's.

Examples:
  gridlock simulate --size 5 --level ./levels/cross.csv
  gridlock simulate --size 7 --turns 3`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSize, "size", 7, "Board dimension N (odd, >= 5)")
	simulateCmd.Flags().StringVar(&flagSimLevel, "level", "", "Path to a level file with initial placements")
	simulateCmd.Flags().StringVar(&flagSimPlayer, "player", "0,0", "Player position as x,y in centered coordinates")
	simulateCmd.Flags().IntVar(&flagSimTurns, "turns", 0, "Number of turns to simulate (default: N-2)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridlock",
	})

	if flagSimSize < 5 || flagSimSize%2 == 0 {
		logger.Error("board size must be odd and at least 5", "size", flagSimSize)
		os.Exit(1)
	}

	player, err := parsePoint(flagSimPlayer)
	if err != nil {
		logger.Error("invalid --player flag", "error", err)
		os.Exit(1)
	}

	var projectiles []board.Projectile
	if flagSimLevel != "" {
		placements, err := level.LoadFile(flagSimLevel)
		if err != nil {
			logger.Error("could not load level", "error", err)
			os.Exit(1)
		}
		projectiles = level.InitialProjectiles(placements)
	}

	turns := flagSimTurns
	if turns <= 0 {
		turns = flagSimSize - 2
	}

	start := board.FromState(player, projectiles, flagSimSize)
	boards := board.Simulate(start, turns)

	for t, b := range boards {
		fmt.Printf("Turn %d:\n", t)
		fmt.Print(renderBoard(b, nil))
		fmt.Println()
	}
}
