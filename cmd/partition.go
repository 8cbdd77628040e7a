package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/approx"
)

var showSegments bool // Print per-interval statistics

// partitionCmd finds and prints the optimal partition of the point set
var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Find the optimal interval partitioning of a point set",
	Run: func(cmd *cobra.Command, args []string) {
		strategy, err := approx.NewStrategy(strategyName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		g, err := buildGrid()
		if err != nil {
			logrus.Fatalf("Unable to build point set: %v", err)
		}

		out := cmd.OutOrStdout()
		if g.PointCount() == 0 {
			fmt.Fprintln(out, "No points in set to partition.")
			return
		}
		sol := g.Solve(strategy)
		writePartition(out, g, strategy.Name(), sol)
		if showSegments {
			writeSegments(out, g.Segments(sol))
		}
	},
}

func init() {
	partitionCmd.Flags().BoolVar(&showSegments, "segments", true, "Print per-interval point count, mean and squared error")
}
