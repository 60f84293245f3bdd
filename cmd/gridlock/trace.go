package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridlock/internal/core"
)

var (
	flagTraceFrom string
	flagTraceTo   string
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Rasterize the straight line between two cells",
	Long: `Print the grid cells crossed by the straight line between two points in
centered coordinates, in order from start to end.

Examples:
  gridlock trace --from 0,0 --to 3,-2
  gridlock trace --from -3,3 --to 3,-3`,
	Run: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagTraceFrom, "from", "0,0", "Start point as x,y")
	traceCmd.Flags().StringVar(&flagTraceTo, "to", "0,0", "End point as x,y")
}

func runTrace(cmd *cobra.Command, args []string) {
	from, err := parsePoint(flagTraceFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --from flag: %v\n", err)
		os.Exit(1)
	}
	to, err := parsePoint(flagTraceTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --to flag: %v\n", err)
		os.Exit(1)
	}

	line := core.TraceLine(from, to)
	fmt.Printf("Line from (%d, %d) to (%d, %d), %d cells:\n", from.X, from.Y, to.X, to.Y, len(line))
	for _, p := range line {
		fmt.Printf("  (%d, %d)\n", p.X, p.Y)
	}
}
