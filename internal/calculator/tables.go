package calculator

import (
	"todayiran/pkg/domain"
	"todayiran/pkg/units"
)

const (
	halfMarathon = 21097.5
	marathon     = 42195.0
)

// MetricTargets are the projection distances shown for metric output.
func MetricTargets() []domain.ProjectionTarget {
	return []domain.ProjectionTarget{
		{Label: "100 m", Distance: units.Meter.From(100)},
		{Label: "1 km", Distance: units.Kilometer.From(1)},
		{Label: "5 km", Distance: units.Kilometer.From(5)},
		{Label: "10 km", Distance: units.Kilometer.From(10)},
		{Label: "half marathon", Distance: halfMarathon},
		{Label: "marathon", Distance: marathon},
	}
}

// ImperialTargets are the projection distances shown for imperial output.
func ImperialTargets() []domain.ProjectionTarget {
	return []domain.ProjectionTarget{
		{Label: "100 yd", Distance: units.Yard.From(100)},
		{Label: "1/8 mi", Distance: units.Mile.From(0.125)},
		{Label: "1/4 mi", Distance: units.Mile.From(0.25)},
		{Label: "1 mi", Distance: units.Mile.From(1)},
		{Label: "half marathon", Distance: halfMarathon},
		{Label: "marathon", Distance: marathon},
	}
}

// Targets returns the projection distances for system.
func Targets(system units.System) []domain.ProjectionTarget {
	if system == units.Imperial {
		return ImperialTargets()
	}

	return MetricTargets()
}

// References are the built-in performances, slowest first.
func References() []domain.ReferencePerformance {
	return []domain.ReferencePerformance{
		{
			// 40 days 9:06:21
			Label:    "Ashprihanal Aalto's 3100 mi (longest ultra marathon) WR",
			Distance: units.Mile.From(3100),
			Duration: 40*86400 + 9*3600 + 6*60 + 21,
		},
		{
			Label:    "Yohann Diniz' 50 km race walk WR",
			Distance: units.Kilometer.From(50),
			Duration: 3*3600 + 32*60 + 33,
		},
		{
			Label:    "Eliud Kipchoge's inofficial marathon WR",
			Distance: marathon,
			Duration: 1*3600 + 59*60 + 40,
		},
		{
			Label:    "Kenenisa Bekele's 10000 m WR",
			Distance: units.Kilometer.From(10),
			Duration: 26*60 + 17.53,
		},
		{
			Label:    "Usain Bolt's 100 m WR",
			Distance: units.Meter.From(100),
			Duration: 9.58,
		},
		{
			Label:    "Cheetah Sarah's 100 m animal WR",
			Distance: units.Meter.From(100),
			Duration: 5.95,
		},
	}
}
