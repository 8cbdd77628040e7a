package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridfit/gridfit/approx"
)

// Config describes a timing sweep: for every size from MinPoints to
// MaxPoints in steps of Step, Repetitions random point sets over
// [1, MaxX] are partitioned and timed.
type Config struct {
	MaxX        int     `yaml:"max_x"`
	Penalty     float64 `yaml:"penalty"`
	MinPoints   int     `yaml:"min_points"`
	MaxPoints   int     `yaml:"max_points"`
	Step        int     `yaml:"step"`
	Repetitions int     `yaml:"repetitions"`
	Strategy    string  `yaml:"strategy"`
	Seed        int64   `yaml:"seed"`
}

// DefaultConfig sweeps n = 0..5000 in steps of 100 over [1, 5000], ten
// repetitions per size.
func DefaultConfig() Config {
	return Config{
		MaxX:        5000,
		Penalty:     approx.DefaultPenalty,
		MinPoints:   0,
		MaxPoints:   5000,
		Step:        100,
		Repetitions: 10,
		Strategy:    approx.StrategyTabulation,
		Seed:        42,
	}
}

// LoadConfig reads a YAML sweep description. Omitted fields keep their
// DefaultConfig values; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading experiment config %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing experiment config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.MaxX < 1:
		return fmt.Errorf("max_x: %w", approx.ErrInvalidBound)
	case c.Penalty < 0:
		return fmt.Errorf("penalty: %w", approx.ErrNegativePenalty)
	case c.MinPoints < 0:
		return fmt.Errorf("min_points: %w", approx.ErrNegativeCount)
	case c.MaxPoints < c.MinPoints:
		return errors.New("max_points must not be below min_points")
	case c.Step < 1:
		return errors.New("step must be at least 1")
	case c.Repetitions < 1:
		return errors.New("repetitions must be at least 1")
	}
	if _, err := approx.NewStrategy(c.Strategy); err != nil {
		return err
	}
	return nil
}

// Sizes lists the point-set sizes the sweep visits.
func (c Config) Sizes() []int {
	var sizes []int
	for n := c.MinPoints; n <= c.MaxPoints; n += c.Step {
		sizes = append(sizes, n)
	}
	return sizes
}
