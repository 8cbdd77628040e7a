package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// pointsCmd shows the point set and penalty without partitioning
var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Show the points and penalty information",
	Run: func(cmd *cobra.Command, args []string) {
		g, err := buildGrid()
		if err != nil {
			logrus.Fatalf("Unable to build point set: %v", err)
		}
		writePoints(cmd.OutOrStdout(), g)
	},
}
