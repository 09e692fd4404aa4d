// Package report assembles the figures for one run and renders them as the
// text printed on stdout.
package report

import (
	"context"
	"fmt"
	"todayiran/internal/calculator"
	"todayiran/internal/config"
	"todayiran/pkg/domain"
	"todayiran/pkg/logger"
	"todayiran/pkg/units"

	"go.uber.org/zap"
)

// Options control what a report contains and how it is displayed.
type Options struct {
	// System selects km and km/h or mi and mph.
	System units.System
	// Verbose adds the projection and comparison sections.
	Verbose bool
	// Targets are the projection distances; defaults to calculator.Targets(System).
	Targets []domain.ProjectionTarget
	// References are the performances to compare against; defaults to
	// calculator.References().
	References []domain.ReferencePerformance
}

// NewOptions constructs Options from the application config. Flags are
// expected to have been folded into cfg already.
func NewOptions(cfg *config.Config) (Options, error) {
	system, err := units.ParseSystem(cfg.Units)
	if err != nil {
		return Options{}, fmt.Errorf("invalid units setting: %w", err)
	}

	return Options{
		System:     system,
		Verbose:    cfg.Verbose,
		Targets:    calculator.Targets(system),
		References: calculator.References(),
	}, nil
}

// Validate checks the projection targets and reference performances.
func (o Options) Validate() error {
	if err := calculator.ValidateTargets(o.Targets); err != nil {
		return err
	}

	return calculator.ValidateReferences(o.References)
}

// Report holds every computed figure for one run.
type Report struct {
	Run         domain.Run
	Velocity    domain.Velocity
	System      units.System
	Verbose     bool
	Projections []calculator.Projection
	Comparisons []calculator.Comparison
}

// Build validates the built-in tables and computes all figures for run. It
// fails before anything is rendered, so a failed run never prints a partial
// report.
func Build(ctx context.Context, run domain.Run, opts Options) (*Report, error) {
	if opts.Targets == nil {
		opts.Targets = calculator.Targets(opts.System)
	}
	if opts.References == nil {
		opts.References = calculator.References()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	velocity, err := calculator.AverageVelocity(run.Distance, run.Duration)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "computed average velocity",
		zap.Float64("distance_m", run.Distance.Meters()),
		zap.Float64("duration_s", run.Duration.Seconds()),
		zap.Float64("velocity_mps", velocity.MetersPerSecond()),
	)

	r := &Report{
		Run:      run,
		Velocity: velocity,
		System:   opts.System,
		Verbose:  opts.Verbose,
	}
	if !opts.Verbose {
		return r, nil
	}

	r.Projections = calculator.ProjectDurations(velocity, opts.Targets)
	for _, p := range r.Projections {
		if p.Err != nil {
			logger.Warn(ctx, "projection undefined", zap.String("target", p.Target.Label), zap.Error(p.Err))
		}
	}
	r.Comparisons = calculator.CompareVelocities(velocity, opts.References)

	return r, nil
}
