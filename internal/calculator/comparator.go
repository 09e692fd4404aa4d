package calculator

import (
	"fmt"
	"math"
	"todayiran/pkg/domain"
	"todayiran/pkg/serrors"
)

// Comparison is the ratio of a velocity to one reference performance.
type Comparison struct {
	Reference domain.ReferencePerformance
	Ratio     float64
}

// CompareVelocities divides velocity by each reference velocity, keeping the
// order of references. References must have passed ValidateReferences.
func CompareVelocities(velocity domain.Velocity, references []domain.ReferencePerformance) []Comparison {
	out := make([]Comparison, 0, len(references))
	for _, ref := range references {
		out = append(out, Comparison{
			Reference: ref,
			Ratio:     velocity.MetersPerSecond() / ref.Velocity().MetersPerSecond(),
		})
	}

	return out
}

// ValidateReferences checks that every reference has a label and a positive,
// finite distance and duration.
func ValidateReferences(references []domain.ReferencePerformance) error {
	for i, ref := range references {
		var problem string
		switch {
		case ref.Label == "":
			problem = "has no label"
		case !positiveFinite(ref.Distance.Meters()):
			problem = fmt.Sprintf("has invalid distance %g m", ref.Distance.Meters())
		case !positiveFinite(ref.Duration.Seconds()):
			problem = fmt.Sprintf("has invalid duration %g s", ref.Duration.Seconds())
		default:
			continue
		}

		return serrors.With(serrors.ErrInvalidReferenceData, "reference performance #%d (%q) %s", i, ref.Label, problem)
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
