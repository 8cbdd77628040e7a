package experiment

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gridfit/gridfit/approx"
)

// Sample is one timed optimizer run.
type Sample struct {
	Points     int
	Repetition int
	Seconds    float64
}

// Summary aggregates the repetitions of one size.
type Summary struct {
	Points  int
	Median  float64
	Min     float64
	Max     float64
	Samples int
}

// Report is the outcome of a sweep.
type Report struct {
	RunID    uuid.UUID
	Strategy string
	Config   Config
	Samples  []Sample
}

// Run executes the sweep described by cfg. Each repetition partitions a
// freshly generated point set; per-repetition seeds derive from cfg.Seed so
// a sweep is reproducible. Cancelling ctx stops the sweep between runs and
// returns the samples gathered so far along with ctx.Err().
func Run(ctx context.Context, cfg Config) (Report, error) {
	report := Report{RunID: uuid.New(), Config: cfg}
	if err := cfg.Validate(); err != nil {
		return report, err
	}
	strategy, err := approx.NewStrategy(cfg.Strategy)
	if err != nil {
		return report, err
	}
	report.Strategy = strategy.Name()

	log := logrus.WithFields(logrus.Fields{"run": report.RunID, "strategy": strategy.Name()})
	log.Infof("timing sizes %d..%d step %d, %d repetitions, max x %d, penalty %v",
		cfg.MinPoints, cfg.MaxPoints, cfg.Step, cfg.Repetitions, cfg.MaxX, cfg.Penalty)

	rng := approx.NewPartitionedRNG(approx.Seed(cfg.Seed))
	for _, n := range cfg.Sizes() {
		seeds := rng.ForSubsystem(approx.SubsystemSize(n))
		for rep := 0; rep < cfg.Repetitions; rep++ {
			if err := ctx.Err(); err != nil {
				log.Warnf("sweep interrupted at n=%d: %v", n, err)
				return report, err
			}
			g := approx.NewGrid(approx.WithSeed(seeds.Int63()), approx.WithPenalty(cfg.Penalty))
			if err := g.AddRandomPoints(n, cfg.MaxX); err != nil {
				return report, err
			}
			report.Samples = append(report.Samples, Sample{
				Points:     n,
				Repetition: rep,
				Seconds:    g.Time(strategy),
			})
		}
		log.Debugf("n=%d done", n)
	}
	return report, nil
}

// Summaries groups samples by size, in sweep order.
func (r Report) Summaries() []Summary {
	var out []Summary
	var times []float64
	flush := func(n int) {
		if len(times) == 0 {
			return
		}
		s := Summary{Points: n, Median: median(times), Min: times[0], Max: times[0], Samples: len(times)}
		for _, v := range times[1:] {
			s.Min = min(s.Min, v)
			s.Max = max(s.Max, v)
		}
		out = append(out, s)
		times = times[:0]
	}
	for i, s := range r.Samples {
		if i > 0 && s.Points != r.Samples[i-1].Points {
			flush(r.Samples[i-1].Points)
		}
		times = append(times, s.Seconds)
	}
	if len(r.Samples) > 0 {
		flush(r.Samples[len(r.Samples)-1].Points)
	}
	return out
}
