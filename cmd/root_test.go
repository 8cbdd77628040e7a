package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridfit/gridfit/approx"
	"github.com/gridfit/gridfit/approx/experiment"
)

// withPointFlags sets the point-source globals for one test and restores
// them afterwards.
func withPointFlags(t *testing.T, points []string, random, bound int, pen float64, s int64) {
	t.Helper()
	oldPoints, oldRandom, oldMax, oldPenalty, oldSeed := pointLiterals, randomPoints, maxX, penalty, seed
	t.Cleanup(func() {
		pointLiterals, randomPoints, maxX, penalty, seed = oldPoints, oldRandom, oldMax, oldPenalty, oldSeed
	})
	pointLiterals, randomPoints, maxX, penalty, seed = points, random, bound, pen, s
}

// setFlag sets a command flag for one test, then restores its default value
// and clears its changed mark.
func setFlag(t *testing.T, c *cobra.Command, name, value string) {
	t.Helper()
	f := c.Flags().Lookup(name)
	require.NotNil(t, f, "flag %s", name)
	t.Cleanup(func() {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	require.NoError(t, c.Flags().Set(name, value))
}

func TestBuildGrid_FromLiterals(t *testing.T) {
	// GIVEN point literals including one duplicate
	withPointFlags(t, []string{"1,0", "2,0", "2,0", "3,10", "4,10"}, 0, 100, 1, 0)

	// WHEN the grid is built
	g, err := buildGrid()
	require.NoError(t, err)

	// THEN the duplicate is skipped and the domain follows the largest x
	assert.Equal(t, 4, g.PointCount())
	assert.Equal(t, 4, g.MaxX())
	assert.Equal(t, 1.0, g.Penalty())
	assert.Equal(t, []int{3}, g.FindOptimalPartition(false))
}

func TestBuildGrid_RandomIsSeeded(t *testing.T) {
	withPointFlags(t, nil, 50, 80, approx.DefaultPenalty, 7)
	a, err := buildGrid()
	require.NoError(t, err)
	b, err := buildGrid()
	require.NoError(t, err)

	assert.Equal(t, 50, a.PointCount())
	assert.Equal(t, 80, a.MaxX())
	assert.Equal(t, a.Points(), b.Points())
}

func TestBuildGrid_Errors(t *testing.T) {
	tests := []struct {
		name   string
		points []string
		random int
		bound  int
		pen    float64
		target error
	}{
		{"malformed literal", []string{"1;2"}, 0, 10, 1, nil},
		{"x below one", []string{"0,2"}, 0, 10, 1, approx.ErrInvalidX},
		{"negative penalty", nil, 0, 10, -1, approx.ErrNegativePenalty},
		{"bad random bound", nil, 5, 0, 1, approx.ErrInvalidBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withPointFlags(t, tt.points, tt.random, tt.bound, tt.pen, 1)
			_, err := buildGrid()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestExperimentConfig_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_x: 400\nmax_points: 300\nrepetitions: 2\n"), 0o644))

	oldPath := experimentConfigPath
	t.Cleanup(func() { experimentConfigPath = oldPath })
	experimentConfigPath = path
	setFlag(t, experimentCmd, "step", "150")

	cfg, err := experimentConfig(experimentCmd)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.MaxX)
	assert.Equal(t, 300, cfg.MaxPoints)
	assert.Equal(t, 2, cfg.Repetitions)
	assert.Equal(t, 150, cfg.Step)
	assert.Equal(t, []int{0, 150, 300}, cfg.Sizes())
}

func TestExperimentConfig_UnsetFlagsKeepDefaults(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		setFlag(t, experimentCmd, "step", "7")
		cfg, err := experimentConfig(experimentCmd)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Step)
	})

	// GIVEN the override above has been cleaned up
	// WHEN the config is rebuilt without flags
	cfg, err := experimentConfig(experimentCmd)
	require.NoError(t, err)

	// THEN the step flag no longer counts as set
	assert.False(t, experimentCmd.Flags().Changed("step"))
	assert.Equal(t, experiment.DefaultConfig().Step, cfg.Step)
	assert.Equal(t, experiment.DefaultConfig().Step, experimentStep)
}

func TestRootCmd_Partition(t *testing.T) {
	t.Cleanup(func() {
		pointLiterals, penalty, showSegments = nil, approx.DefaultPenalty, true
		strategyName = approx.StrategyTabulation
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"partition", "--penalty", "1", "--strategy", "memoization", "--segments=false",
		"-p", "4,10", "-p", "3,10", "-p", "2,0", "-p", "1,0",
	})
	require.NoError(t, rootCmd.Execute())

	newGolden(t).Assert(t, "cli_partition", buf.Bytes())
}
