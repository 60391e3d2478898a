// Package bench times the meeting-point strategies on generated grids and
// cross-checks them against each other.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/meetgrid/grid"
	"github.com/katalvlaran/meetgrid/gridgen"
	"github.com/katalvlaran/meetgrid/meetpoint"
	"github.com/rs/zerolog"
)

// ErrRuns is returned when a Runner is asked for fewer than one run per case.
var ErrRuns = errors.New("bench: runs must be at least 1")

// Case describes one generated grid.
type Case struct {
	Name            string  `yaml:"name"`
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	HouseDensity    float64 `yaml:"house_density"`
	ObstacleDensity float64 `yaml:"obstacle_density"`
}

// DefaultSuite returns the standard mix of sizes and densities.
func DefaultSuite() []Case {
	return []Case{
		{Name: "Small Dense", Rows: 20, Cols: 20, HouseDensity: 0.2},
		{Name: "Small Sparse", Rows: 20, Cols: 20, HouseDensity: 0.05},
		{Name: "Medium Dense", Rows: 50, Cols: 50, HouseDensity: 0.1},
		{Name: "Medium with Obstacles", Rows: 50, Cols: 50, HouseDensity: 0.1, ObstacleDensity: 0.1},
		{Name: "Large Sparse", Rows: 100, Cols: 100, HouseDensity: 0.02},
		{Name: "Large with Obstacles", Rows: 100, Cols: 100, HouseDensity: 0.05, ObstacleDensity: 0.05},
	}
}

// Timing summarises repeated runs of one strategy.
type Timing struct {
	MeanSeconds   float64 `yaml:"mean_seconds"`
	StdDevSeconds float64 `yaml:"stddev_seconds"`
	Result        int     `yaml:"result"`
}

// CaseReport is the outcome of one Case.
type CaseReport struct {
	Case         Case    `yaml:"case"`
	Houses       int     `yaml:"houses"`
	Obstacles    int     `yaml:"obstacles"`
	Empty        int     `yaml:"empty"`
	Auto         Timing  `yaml:"auto"`
	Separable    *Timing `yaml:"separable,omitempty"`
	Reachability *Timing `yaml:"reachability,omitempty"`
	// Agree is set when both strategies ran; false means they disagreed.
	Agree   *bool   `yaml:"agree,omitempty"`
	Speedup float64 `yaml:"speedup,omitempty"`
}

// Report is the outcome of a whole suite.
type Report struct {
	Seed  int64        `yaml:"seed"`
	Runs  int          `yaml:"runs"`
	Cases []CaseReport `yaml:"cases"`
}

// Mismatches lists the names of cases whose strategies disagreed.
func (r Report) Mismatches() []string {
	var out []string
	for _, c := range r.Cases {
		if c.Agree != nil && !*c.Agree {
			out = append(out, c.Case.Name)
		}
	}
	return out
}

// Runner executes a suite. The zero value is not usable; see NewRunner.
type Runner struct {
	runs   int
	seed   int64
	logger zerolog.Logger
	now    func() time.Time
}

// NewRunner returns a Runner timing each strategy runs times per case and
// generating every grid from seed. Returns ErrRuns when runs < 1.
func NewRunner(runs int, seed int64, logger zerolog.Logger) (*Runner, error) {
	if runs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRuns, runs)
	}
	return &Runner{runs: runs, seed: seed, logger: logger, now: time.Now}, nil
}

// Run executes every case in order. It stops early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	rep := Report{Seed: r.seed, Runs: r.runs}
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		cr, err := r.runCase(c)
		if err != nil {
			return rep, fmt.Errorf("bench: case %q: %w", c.Name, err)
		}
		rep.Cases = append(rep.Cases, cr)
	}
	return rep, nil
}

func (r *Runner) runCase(c Case) (CaseReport, error) {
	values, err := gridgen.Random(c.Rows, c.Cols,
		gridgen.WithSeed(r.seed),
		gridgen.WithHouseDensity(c.HouseDensity),
		gridgen.WithObstacleDensity(c.ObstacleDensity),
	)
	if err != nil {
		return CaseReport{}, err
	}
	g, err := grid.New(values)
	if err != nil {
		return CaseReport{}, err
	}
	scan := g.Scan()
	cr := CaseReport{
		Case:      c,
		Houses:    len(scan.Houses),
		Empty:     scan.Empty,
		Obstacles: g.Size() - len(scan.Houses) - scan.Empty,
	}
	log := r.logger.With().Str("case", c.Name).Logger()

	if cr.Auto, err = r.time(g, meetpoint.Auto); err != nil {
		return cr, err
	}
	log.Info().
		Int("houses", cr.Houses).
		Int("obstacles", cr.Obstacles).
		Float64("mean_s", cr.Auto.MeanSeconds).
		Int("result", cr.Auto.Result).
		Msg("auto")

	if cr.Obstacles > 0 || cr.Houses == 0 {
		return cr, nil
	}

	sep, err := r.time(g, meetpoint.Separable)
	if err != nil {
		return cr, err
	}
	reach, err := r.time(g, meetpoint.Reachability)
	if err != nil {
		return cr, err
	}
	agree := sep.Result == reach.Result
	cr.Separable, cr.Reachability, cr.Agree = &sep, &reach, &agree
	if sep.MeanSeconds > 0 {
		cr.Speedup = reach.MeanSeconds / sep.MeanSeconds
	}
	ev := log.Info()
	if !agree {
		ev = log.Warn()
	}
	ev.Int("separable", sep.Result).
		Int("reachability", reach.Result).
		Float64("speedup", cr.Speedup).
		Msg("cross-check")
	return cr, nil
}

// time solves g r.runs times with strategy s.
func (r *Runner) time(g *grid.Grid, s meetpoint.Strategy) (Timing, error) {
	samples := make([]float64, r.runs)
	var res meetpoint.Result
	for i := range samples {
		start := r.now()
		var err error
		res, err = meetpoint.SolveGrid(g, meetpoint.WithStrategy(s))
		if err != nil {
			return Timing{}, err
		}
		samples[i] = r.now().Sub(start).Seconds()
	}
	mean, std := meanStdDev(samples)
	return Timing{MeanSeconds: mean, StdDevSeconds: std, Result: res.Distance}, nil
}

// meanStdDev returns the mean and sample standard deviation (n-1); the
// deviation of a single sample is 0.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if len(xs) == 1 {
		return mean, 0
	}
	ss := 0.0
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(ss / float64(len(xs)-1))
}
