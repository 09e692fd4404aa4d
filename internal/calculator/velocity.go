// Package calculator derives the average velocity of a run and the figures
// built on it: projected durations for other distances and ratios against
// reference performances.
package calculator

import (
	"math"
	"todayiran/pkg/domain"
	"todayiran/pkg/serrors"
)

// AverageVelocity returns distance / duration.
//
// A zero distance yields a zero velocity whatever the duration, including the
// degenerate 0 m in 0 s. A positive distance in zero time fails with
// serrors.ErrDivisionByZero, and a quotient too large for a float64 with
// serrors.ErrParse.
func AverageVelocity(distance domain.Distance, duration domain.Duration) (domain.Velocity, error) {
	if distance < 0 || duration < 0 {
		return 0, serrors.With(serrors.ErrParse, "distance and duration must not be negative")
	}
	if distance == 0 {
		return 0, nil
	}
	if duration == 0 {
		return 0, serrors.With(serrors.ErrDivisionByZero, "cannot compute a velocity for %g m covered in no time", distance.Meters())
	}

	v := distance.Meters() / duration.Seconds()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, serrors.With(serrors.ErrParse, "velocity for %g m in %g s is out of range", distance.Meters(), duration.Seconds())
	}

	return domain.Velocity(v), nil
}
