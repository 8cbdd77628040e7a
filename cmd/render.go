package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/gridfit/gridfit/approx"
	"github.com/gridfit/gridfit/approx/experiment"
)

func formatIntervals(intervals []approx.Interval) string {
	parts := make([]string, len(intervals))
	for i, iv := range intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, " ")
}

// writePartition prints the intervals, raw boundaries and cost of sol.
func writePartition(w io.Writer, g *approx.Grid, strategy string, sol approx.Solution) {
	fmt.Fprintf(w, "The best partitioning (%s) has been found! Here are its intervals:\n", strategy)
	fmt.Fprintln(w, formatIntervals(g.Intervals(sol)))
	fmt.Fprintf(w, "Boundaries: %v\n", sol.Boundaries)
	fmt.Fprintf(w, "Total cost: %.6f (penalty %g)\n", sol.Cost, g.Penalty())
}

// writeSegments prints one table row per interval element.
func writeSegments(w io.Writer, segs []approx.Segment) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Interval", "Points", "Mean", "Squared error"})
	for _, s := range segs {
		table.Append([]string{
			s.Interval.String(),
			strconv.Itoa(s.Points),
			strconv.FormatFloat(s.Mean, 'f', 6, 64),
			strconv.FormatFloat(s.Error, 'f', 6, 64),
		})
	}
	table.Render()
}

// writePoints shows the penalty and the point listing.
func writePoints(w io.Writer, g *approx.Grid) {
	fmt.Fprintf(w, "Penalty for adding a grid element: %g\n", g.Penalty())
	fmt.Fprintf(w, "Domain: [1, %d], %d points\n", g.MaxX(), g.PointCount())
	fmt.Fprintf(w, "Point set details:\n%s\n", g.DescribePoints())
}

func writeTiming(w io.Writer, strategy string, seconds float64) {
	fmt.Fprintf(w, "Time to find optimum partitioning for this point set (%s): %.9f seconds\n", strategy, seconds)
}

// writeExperiment prints the per-size timing summary of a sweep.
func writeExperiment(w io.Writer, report experiment.Report) {
	cfg := report.Config
	fmt.Fprintf(w, "Run %s: %s, max x %d, penalty %g, %d repetitions per size\n",
		report.RunID, report.Strategy, cfg.MaxX, cfg.Penalty, cfg.Repetitions)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Points", "Median (s)", "Min (s)", "Max (s)", "Runs"})
	for _, s := range report.Summaries() {
		table.Append([]string{
			strconv.Itoa(s.Points),
			strconv.FormatFloat(s.Median, 'f', 9, 64),
			strconv.FormatFloat(s.Min, 'f', 9, 64),
			strconv.FormatFloat(s.Max, 'f', 9, 64),
			strconv.Itoa(s.Samples),
		})
	}
	table.Render()
}
