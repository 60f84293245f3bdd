package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridlock/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent planning runs",
	Long: `Display the most recent planning runs recorded in the history database,
plus aggregate statistics.

Examples:
  gridlock history
  gridlock history --limit 50
  gridlock history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearPlans(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	entries, err := store.RecentPlans(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Planning history")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gridlock plan' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-5s  %-10s  %-9s  %-6s  %-8s  %s\n",
		"Size", "Want", "Strategy", "Placed", "OK", "Time", "Date")
	fmt.Printf("  %-5s  %-5s  %-10s  %-9s  %-6s  %-8s  %s\n",
		"----", "----", "--------", "------", "--", "----", "----")

	// Print runs
	for _, e := range entries {
		ok := "no"
		if e.Solvable {
			ok = "yes"
		}
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-5d  %-10s  %-9d  %-6s  %-8s  %s\n",
			e.BoardSize, e.Requested, e.Strategy, e.Placed, ok,
			fmt.Sprintf("%dms", e.DurationMS), dateStr)
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Total runs: %d, avg placed: %.1f, solvable: %d, avg time: %.0fms\n",
			stats.Runs, stats.AvgPlaced, stats.SolvableRuns, stats.AvgDurationMS)
	}
}
