package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/approx"
)

// timeCmd times a single optimizer run over the point set
var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Time one optimal-partition search over a point set",
	Run: func(cmd *cobra.Command, args []string) {
		strategy, err := approx.NewStrategy(strategyName)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		g, err := buildGrid()
		if err != nil {
			logrus.Fatalf("Unable to build point set: %v", err)
		}
		writeTiming(cmd.OutOrStdout(), strategy.Name(), g.Time(strategy))
	},
}
