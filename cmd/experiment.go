package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/approx/experiment"
)

var (
	// CLI flags for timing sweeps; each overrides the config file when set
	experimentConfigPath string // YAML sweep description
	experimentMaxX       int    // Upper bound M of [1, M]
	experimentMaxPoints  int    // Largest point-set size
	experimentStep       int    // Size increment
	experimentReps       int    // Repetitions per size
)

// experimentCmd runs a timing sweep to check the O(n²) scaling empirically
var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Time the optimizer over growing random point sets",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := experimentConfig(cmd)
		if err != nil {
			logrus.Fatalf("Unable to read experiment config: %v", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Timing partitioning for point sets of size n = %d..%d, please wait...\n", cfg.MinPoints, cfg.MaxPoints)
		report, err := experiment.Run(cmd.Context(), cfg)
		if err != nil {
			logrus.Errorf("Experiment stopped early: %v", err)
		}
		writeExperiment(out, report)
		fmt.Fprintln(out, "Take the median of each size's times when plotting growth.")
	},
}

// experimentConfig merges the config file (or defaults) with explicitly set flags.
func experimentConfig(cmd *cobra.Command) (experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	if experimentConfigPath != "" {
		var err error
		if cfg, err = experiment.LoadConfig(experimentConfigPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("penalty") {
		cfg.Penalty = penalty
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("strategy") {
		cfg.Strategy = strategyName
	}
	if flags.Changed("max-x") {
		cfg.MaxX = experimentMaxX
	}
	if flags.Changed("max-points") {
		cfg.MaxPoints = experimentMaxPoints
	}
	if flags.Changed("step") {
		cfg.Step = experimentStep
	}
	if flags.Changed("repetitions") {
		cfg.Repetitions = experimentReps
	}
	return cfg, cfg.Validate()
}

func init() {
	defaults := experiment.DefaultConfig()
	experimentCmd.Flags().StringVar(&experimentConfigPath, "config", "", "YAML file describing the sweep")
	experimentCmd.Flags().IntVar(&experimentMaxX, "max-x", defaults.MaxX, "Upper bound on x for generated points")
	experimentCmd.Flags().IntVar(&experimentMaxPoints, "max-points", defaults.MaxPoints, "Largest point-set size")
	experimentCmd.Flags().IntVar(&experimentStep, "step", defaults.Step, "Point-set size increment")
	experimentCmd.Flags().IntVar(&experimentReps, "repetitions", defaults.Repetitions, "Timed runs per size")
}
