package calculator

import (
	"math"
	"todayiran/pkg/domain"
	"todayiran/pkg/serrors"
)

// Projection is the estimated duration for one target distance.
type Projection struct {
	Target domain.ProjectionTarget
	// Duration is +Inf when Err is set.
	Duration domain.Duration
	// Err is serrors.ErrUndefinedProjection when the velocity is zero or too
	// small for a finite duration.
	Err error
}

// ProjectDurations estimates how long each target would take at velocity.
// The result has one entry per target, in the same order.
func ProjectDurations(velocity domain.Velocity, targets []domain.ProjectionTarget) []Projection {
	out := make([]Projection, 0, len(targets))
	for _, target := range targets {
		p := Projection{Target: target, Duration: domain.Duration(math.Inf(1))}
		if velocity > 0 {
			p.Duration = domain.Duration(target.Distance.Meters() / velocity.MetersPerSecond())
		}
		if math.IsInf(p.Duration.Seconds(), 0) {
			p.Err = serrors.With(serrors.ErrUndefinedProjection, "no finite duration for %s at %g m/s", target.Label, velocity.MetersPerSecond())
		}
		out = append(out, p)
	}

	return out
}

// ValidateTargets checks that every projection target has a label and a
// positive, finite distance.
func ValidateTargets(targets []domain.ProjectionTarget) error {
	for i, target := range targets {
		if target.Label == "" || !positiveFinite(target.Distance.Meters()) {
			return serrors.With(serrors.ErrInvalidReferenceData, "projection target #%d (%q) is invalid", i, target.Label)
		}
	}

	return nil
}
