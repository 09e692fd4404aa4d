package units

import (
	"strings"
	"todayiran/pkg/domain"
	"todayiran/pkg/serrors"
)

// System selects the display conventions. It never affects computation.
type System int

const (
	// Metric renders distances in km and velocities in km/h.
	Metric System = iota
	// Imperial renders distances in mi and velocities in mph.
	Imperial
)

const (
	metersPerSecondPerKmh = 1000.0 / 3600.0
	metersPerSecondPerMph = 1609.344 / 3600.0
)

// ParseSystem resolves "metric" or "imperial" (case-insensitive).
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, serrors.With(serrors.ErrInvalidUnit, "unknown unit system %q", s)
	}
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}

	return "metric"
}

// Length returns the unit distances are displayed in.
func (s System) Length() Length {
	if s == Imperial {
		return Mile
	}

	return Kilometer
}

// VelocitySymbol returns the abbreviation velocities are displayed with.
func (s System) VelocitySymbol() string {
	if s == Imperial {
		return "mph"
	}

	return "km/h"
}

// Velocity expresses v in the system's velocity unit.
func (s System) Velocity(v domain.Velocity) float64 {
	if s == Imperial {
		return v.MetersPerSecond() / metersPerSecondPerMph
	}

	return v.MetersPerSecond() / metersPerSecondPerKmh
}
