// gridlock is a hazard-placement planner for grid dodge puzzles.
//
// Usage:
//
//	gridlock plan              - Place projectiles that keep the board solvable
//	gridlock simulate          - Print the simulated turn sequence for a board
//	gridlock trace             - Rasterize the straight line between two cells
//	gridlock history           - Show recent planning runs
//
// Global flags:
//
//	--config <path>  - Path to a custom planner config YAML
//	--db <path>      - Set database path (default: ~/.gridlock/plans.db)
//	--seed <value>   - Set RNG seed for reproducible plans
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridlock",
	Short: "Gridlock - hazard placement planner for grid dodge puzzles",
	Long: `Gridlock plans projectile spawns for a turn-based dodge puzzle. Every
placed projectile is checked against the player's reachability graph so the
board always keeps at least one survivable move sequence.

Available commands:
  plan      - Place projectiles on a board and print the result
  simulate  - Print the simulated turn sequence for a board
  trace     - Rasterize the straight line between two cells
  history   - View recent planning runs

Examples:
  gridlock plan --size 7 --count 3
  gridlock plan --level ./levels/cross.csv --difficulty hard
  gridlock simulate --size 5 --level ./levels/cross.csv
  gridlock trace --from 0,0 --to 3,-2
  gridlock history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom planner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridlock/plans.db", "Path to plan history database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(historyCmd)
}
