package format_test

import (
	"math"
	"strings"
	"testing"
	"todayiran/pkg/domain"
	"todayiran/pkg/format"
	"todayiran/pkg/units"

	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Duration
		out  string
	}{
		{name: "zero", in: 0, out: "0 s"},
		{name: "seconds only", in: 30, out: "30 s"},
		{name: "sub-second rounds to zero", in: 0.4, out: "0 s"},
		{name: "minutes only", in: 300, out: "5 min"},
		{name: "hours only", in: 7200, out: "2 h"},
		{name: "full composite", in: 4324, out: "1 h 12 min 4 s"},
		{name: "zero minutes omitted", in: 3605, out: "1 h 5 s"},
		{name: "rounding carries into minutes", in: 59.6, out: "1 min"},
		{name: "rounding half up", in: 30.5, out: "31 s"},
		{name: "long ultra", in: 40*86400 + 32781, out: "969 h 6 min 21 s"},
		{name: "infinite", in: domain.Duration(math.Inf(1)), out: format.Infinity},
		{name: "beyond int64 seconds", in: 1e20, out: "27777777777777777 h 46 min 40 s"},
		{name: "exact huge hours", in: 3.6e19, out: "10000000000000000 h"},
		{name: "not a number", in: domain.Duration(math.NaN()), out: format.Infinity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, format.Duration(tc.in))
		})
	}
}

func TestDurationMaxFloat(t *testing.T) {
	got := format.Duration(math.MaxFloat64)
	require.True(t, strings.HasSuffix(got, " h 46 min 40 s"), got)
	require.True(t, strings.HasPrefix(got, "4993592041284210"), got)
}

func TestDistance(t *testing.T) {
	require.Equal(t, "14.300 km", format.Distance(14300, units.Metric))
	require.Equal(t, "8.886 mi", format.Distance(14300, units.Imperial))
	require.Equal(t, "0.000 km", format.Distance(0, units.Metric))
	require.Equal(t, "1.000 mi", format.Distance(1609.344, units.Imperial))
}

func TestVelocity(t *testing.T) {
	v := domain.Velocity(14300.0 / 4324.0)
	require.Equal(t, "11.906 km/h", format.Velocity(v, units.Metric))
	require.Equal(t, "7.398 mph", format.Velocity(v, units.Imperial))
	require.Equal(t, "0.000 km/h", format.Velocity(0, units.Metric))
}

func TestRatio(t *testing.T) {
	require.Equal(t, "1.000 times", format.Ratio(1))
	require.Equal(t, "0.313 times", format.Ratio(0.3125))
	require.Equal(t, "2.313 times", format.Ratio(2.31268))
}

func TestFixed(t *testing.T) {
	require.Equal(t, "0.125", format.Fixed(0.125))
	require.Equal(t, "1.000", format.Fixed(0.9999))
	require.Equal(t, "21.098", format.Fixed(21.0975))
	require.Equal(t, format.Infinity, format.Fixed(math.Inf(1)))
	require.Equal(t, "-"+format.Infinity, format.Fixed(math.Inf(-1)))
	require.Equal(t, "NaN", format.Fixed(math.NaN()))
}
