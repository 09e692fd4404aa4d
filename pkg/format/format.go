// Package format renders quantities as the human-readable strings shown in
// the report. Numbers are printed with three decimals, rounded half away from
// zero on their shortest decimal representation.
package format

import (
	"math"
	"strings"
	"todayiran/pkg/domain"
	"todayiran/pkg/units"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimals used for distances, velocities and ratios.
const Precision = 3

// Infinity is printed in place of a duration that cannot be computed.
const Infinity = "∞"

var (
	secondsPerHour   = decimal.NewFromInt(3600) //nolint: gochecknoglobals
	secondsPerMinute = decimal.NewFromInt(60)   //nolint: gochecknoglobals
)

// Fixed renders v with Precision decimals. Non-finite values render as
// Infinity (with a sign when negative) or "NaN".
func Fixed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return Infinity
	case math.IsInf(v, -1):
		return "-" + Infinity
	}

	return decimal.NewFromFloat(v).StringFixed(Precision)
}

// Distance renders d in the display unit of system, e.g. "14.300 km".
func Distance(d domain.Distance, system units.System) string {
	l := system.Length()

	return Fixed(l.In(d)) + " " + l.Symbol
}

// Velocity renders v in the velocity unit of system, e.g. "11.906 km/h".
func Velocity(v domain.Velocity, system units.System) string {
	return Fixed(system.Velocity(v)) + " " + system.VelocitySymbol()
}

// Ratio renders r as e.g. "0.521 times".
func Ratio(r float64) string {
	return Fixed(r) + " times"
}

// Duration renders d as "H h M min S s", leaving out zero components. The
// total is rounded to whole seconds first so 59.6 s becomes "1 min". A zero
// duration renders as "0 s"; a non-finite one as Infinity.
func Duration(d domain.Duration) string {
	secs := d.Seconds()
	if math.IsInf(secs, 0) || math.IsNaN(secs) {
		return Infinity
	}

	total := decimal.NewFromFloat(secs).Round(0)
	if !total.IsPositive() {
		return "0 s"
	}

	h, rest := total.QuoRem(secondsPerHour, 0)
	m, sec := rest.QuoRem(secondsPerMinute, 0)

	parts := make([]string, 0, 3)
	if h.IsPositive() {
		parts = append(parts, h.String()+" h")
	}
	if m.IsPositive() {
		parts = append(parts, m.String()+" min")
	}
	if sec.IsPositive() {
		parts = append(parts, sec.String()+" s")
	}

	return strings.Join(parts, " ")
}
