package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/approx"
)

var (
	// CLI flags shared by every subcommand
	logLevel     string  // Log verbosity level
	penalty      float64 // Penalty per interval beyond the first
	seed         int64   // Seed for random point generation (0 = wall clock)
	strategyName string  // Optimizer strategy

	// CLI flags describing the point set
	pointLiterals []string // Points given as "x,y"
	randomPoints  int      // Number of random points to fill the set up to
	maxX          int      // Upper bound M of the domain [1, M] for random points
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gridfit",
	Short: "Interval-based constant best approximation of 2-D point sets",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command. Ctrl-C cancels long-running sweeps.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// buildGrid assembles the point set described by the point-source flags.
// Duplicate literals are skipped with a warning; malformed ones are errors.
func buildGrid() (*approx.Grid, error) {
	var opts []approx.Option
	if seed != 0 {
		opts = append(opts, approx.WithSeed(seed))
	}
	g := approx.NewGrid(opts...)
	if err := g.SetPenalty(penalty); err != nil {
		return nil, err
	}

	for _, lit := range pointLiterals {
		x, y, err := ParsePoint(lit)
		if err != nil {
			return nil, err
		}
		ok, err := g.AddPoint(x, y)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", lit, err)
		}
		if !ok {
			logrus.Warnf("Point (%d, %v) already exists in grid, skipping", x, y)
		}
	}

	if randomPoints > 0 {
		if err := g.AddRandomPoints(randomPoints, maxX); err != nil {
			return nil, err
		}
	}
	logrus.Infof("Grid holds %d points over [1, %d], penalty=%v", g.PointCount(), g.MaxX(), g.Penalty())
	return g, nil
}

// addPointFlags registers the point-source flags on cmd.
func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&pointLiterals, "point", "p", nil, "Point as \"x,y\" (repeatable); x must be a positive integer")
	cmd.Flags().IntVar(&randomPoints, "random", 0, "Fill the set up to this many random points")
	cmd.Flags().IntVar(&maxX, "max-x", 100, "Upper bound on x for random points (the m in [1, m])")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Float64Var(&penalty, "penalty", approx.DefaultPenalty, "Penalty charged for each interval beyond the first")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for random point generation (0 uses the wall clock)")
	rootCmd.PersistentFlags().StringVar(&strategyName, "strategy", approx.StrategyTabulation, "Optimizer strategy (tabulation, memoization)")

	for _, c := range []*cobra.Command{partitionCmd, pointsCmd, timeCmd} {
		addPointFlags(c)
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(experimentCmd)
}
