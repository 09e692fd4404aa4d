package domain

// Distance is a length in meters. Valid values are >= 0.
type Distance float64

// Meters returns d as a plain float64.
func (d Distance) Meters() float64 { return float64(d) }

// Duration is an elapsed time in seconds. Valid values are >= 0.
type Duration float64

// Seconds returns d as a plain float64.
func (d Duration) Seconds() float64 { return float64(d) }

// Velocity is a speed in meters per second.
type Velocity float64

// MetersPerSecond returns v as a plain float64.
func (v Velocity) MetersPerSecond() float64 { return float64(v) }

// ProjectionTarget is a named fixed distance for which an equivalent-effort
// duration is estimated.
type ProjectionTarget struct {
	Label    string
	Distance Distance
}

// ReferencePerformance is a notable real-world result used for comparison.
type ReferencePerformance struct {
	Label    string
	Distance Distance
	Duration Duration
}

// Velocity returns the average velocity of the performance. The caller is
// expected to have validated that Duration is positive.
func (r ReferencePerformance) Velocity() Velocity {
	return Velocity(r.Distance.Meters() / r.Duration.Seconds())
}
