// Package units defines the supported length units, their conversion factors
// to meters, and the display unit systems.
package units

import (
	"math"
	"strings"
	"todayiran/pkg/domain"
	"todayiran/pkg/serrors"
)

// Length is a unit of length with its size in meters.
type Length struct {
	// Symbol is the abbreviation used when rendering values in this unit.
	Symbol string
	// Meters is the number of meters in one unit.
	Meters float64
}

var (
	Meter     = Length{Symbol: "m", Meters: 1}         //nolint: gochecknoglobals
	Kilometer = Length{Symbol: "km", Meters: 1000}     //nolint: gochecknoglobals
	Yard      = Length{Symbol: "yd", Meters: 0.9144}   //nolint: gochecknoglobals
	Foot      = Length{Symbol: "ft", Meters: 0.3048}   //nolint: gochecknoglobals
	Mile      = Length{Symbol: "mi", Meters: 1609.344} //nolint: gochecknoglobals
)

// lengthTokens maps every accepted lower-case unit token to its unit.
var lengthTokens = map[string]Length{ //nolint: gochecknoglobals
	"m":          Meter,
	"meter":      Meter,
	"meters":     Meter,
	"km":         Kilometer,
	"kilometer":  Kilometer,
	"kilometers": Kilometer,
	"yd":         Yard,
	"yard":       Yard,
	"yards":      Yard,
	"ft":         Foot,
	"foot":       Foot,
	"feet":       Foot,
	"mi":         Mile,
	"mile":       Mile,
	"miles":      Mile,
}

// LookupLength resolves a unit token case-insensitively.
func LookupLength(token string) (Length, error) {
	l, ok := lengthTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return Length{}, serrors.With(serrors.ErrInvalidUnit, "unknown unit %q", token)
	}

	return l, nil
}

// From converts value expressed in l to a Distance.
func (l Length) From(value float64) domain.Distance {
	return domain.Distance(value * l.Meters)
}

// In expresses d in l.
func (l Length) In(d domain.Distance) float64 {
	return d.Meters() / l.Meters
}

// ConvertDistance converts value expressed in the unit named by token to meters.
func ConvertDistance(value float64, token string) (domain.Distance, error) {
	l, err := LookupLength(token)
	if err != nil {
		return 0, err
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, serrors.With(serrors.ErrParse, "distance must be a finite non-negative number, got %v", value)
	}

	d := l.From(value)
	if math.IsInf(d.Meters(), 0) {
		return 0, serrors.With(serrors.ErrParse, "distance %v %s is too large", value, l.Symbol)
	}

	return d, nil
}
