// Package parser turns the free-form distance and duration arguments into
// canonical quantities.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"todayiran/pkg/domain"
	"todayiran/pkg/serrors"
	"todayiran/pkg/units"
)

var (
	// distancePattern matches a number followed by an optional unit token.
	// A missing unit is reported separately so the error is more helpful.
	distancePattern = regexp.MustCompile(`^\s*(\d+(?:\.\d*)?|\.\d+)\s*(\pL*)\s*$`) //nolint: gochecknoglobals

	// durationComponent matches one leading <number><unit> pair.
	durationComponent = regexp.MustCompile(`^\s*(\d+(?:\.\d*)?|\.\d+)\s*(\pL+)`) //nolint: gochecknoglobals
)

// ParseDistance parses strings such as "14.3km", "400 m" or "3.1 Miles".
//
// Malformed input fails with serrors.ErrParse, an unknown unit with
// serrors.ErrInvalidUnit.
func ParseDistance(raw string) (domain.Distance, error) {
	m := distancePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, serrors.With(serrors.ErrParse, "could not parse distance %q", raw)
	}
	if m[2] == "" {
		return 0, serrors.With(serrors.ErrParse, "distance %q has no unit", raw)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrParse, err, "could not parse distance value %q", m[1])
	}

	return units.ConvertDistance(value, m[2])
}

// timeUnit is one component of the duration grammar.
type timeUnit struct {
	name    string
	seconds float64
}

var timeUnits = map[string]timeUnit{ //nolint: gochecknoglobals
	"h":   {name: "hours", seconds: 3600},
	"min": {name: "minutes", seconds: 60},
	"s":   {name: "seconds", seconds: 1},
	"sec": {name: "seconds", seconds: 1},
}

// ParseDuration parses composite durations such as "1h12min4s", "45 min" or
// "1h 30s". Components may appear in any order but at most once each. An empty
// string is a zero duration.
//
// Any token that is not a <number><unit> pair, an unknown unit, a repeated
// component, or a total beyond float64 range fails with serrors.ErrParse.
func ParseDuration(raw string) (domain.Duration, error) {
	rest := raw
	seen := make(map[string]bool, 3)
	total := 0.0

	for strings.TrimSpace(rest) != "" {
		m := durationComponent.FindStringSubmatch(rest)
		if m == nil {
			return 0, serrors.With(serrors.ErrParse, "could not parse duration %q near %q", raw, strings.TrimSpace(rest))
		}
		rest = rest[len(m[0]):]

		unit, ok := timeUnits[strings.ToLower(m[2])]
		if !ok {
			return 0, serrors.With(serrors.ErrParse, "unknown time unit %q in duration %q", m[2], raw)
		}
		if seen[unit.name] {
			return 0, serrors.With(serrors.ErrParse, "%s given more than once in duration %q", unit.name, raw)
		}
		seen[unit.name] = true

		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, serrors.Wrap(serrors.ErrParse, err, "could not parse %s value %q", unit.name, m[1])
		}
		total += value * unit.seconds
		if math.IsInf(total, 0) {
			return 0, serrors.With(serrors.ErrParse, "duration %q is too large", raw)
		}
	}

	return domain.Duration(total), nil
}

// ParseRun parses both measurements of a run.
func ParseRun(distance, duration string) (domain.Run, error) {
	d, err := ParseDistance(distance)
	if err != nil {
		return domain.Run{}, err
	}

	t, err := ParseDuration(duration)
	if err != nil {
		return domain.Run{}, err
	}

	return domain.Run{Distance: d, Duration: t}, nil
}
