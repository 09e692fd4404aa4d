package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"todayiran/internal/config"
	"todayiran/internal/report"
	"todayiran/pkg/domain"
	"todayiran/pkg/format"
	"todayiran/pkg/serrors"
	"todayiran/pkg/units"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, run domain.Run, opts report.Options) []string {
	t.Helper()

	r, err := report.Build(context.Background(), run, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))

	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRenderSummary(t *testing.T) {
	lines := render(t, domain.Run{Distance: 14300, Duration: 4324}, report.Options{})
	require.Equal(t, []string{
		"Today, you ran 14.300 km in 1 h 12 min 4 s.",
		"Your average velocity was 11.906 km/h.",
	}, lines)
}

func TestRenderSummaryImperial(t *testing.T) {
	lines := render(t, domain.Run{Distance: 14300, Duration: 4324}, report.Options{System: units.Imperial})
	require.Equal(t, []string{
		"Today, you ran 8.886 mi in 1 h 12 min 4 s.",
		"Your average velocity was 7.398 mph.",
	}, lines)
}

func TestRenderZeroRun(t *testing.T) {
	lines := render(t, domain.Run{}, report.Options{})
	require.Equal(t, []string{
		"Today, you ran 0.000 km in 0 s.",
		"Your average velocity was 0.000 km/h.",
	}, lines)
}

func TestRenderVerbose(t *testing.T) {
	lines := render(t, domain.Run{Distance: 14300, Duration: 4324}, report.Options{Verbose: true})
	require.Len(t, lines, 2+2+6+2+6)

	require.Empty(t, lines[2])
	require.Equal(t, "This is how long you would have needed for other distances:", lines[3])

	projections := lines[4:10]
	wantLabels := []string{"100 m", "1 km", "5 km", "10 km", "half marathon", "marathon"}
	labelEnd := -1
	for i, line := range projections {
		idx := strings.Index(line, wantLabels[i])
		require.GreaterOrEqual(t, idx, 0, line)

		// labels are right-aligned
		end := idx + len(wantLabels[i])
		if labelEnd >= 0 {
			require.Equal(t, labelEnd, end, line)
		}
		labelEnd = end
	}
	require.True(t, strings.HasSuffix(projections[0], "  30 s"), projections[0])
	require.True(t, strings.HasSuffix(projections[1], "  5 min 2 s"), projections[1])

	require.Empty(t, lines[10])
	require.Equal(t, "Your average velocity compared to those of other performances:", lines[11])

	comparisons := lines[12:]
	require.Equal(t, "2.313 times  Ashprihanal Aalto's 3100 mi (longest ultra marathon) WR", strings.TrimSpace(comparisons[0]))
	require.Equal(t, "0.317 times  Usain Bolt's 100 m WR", strings.TrimSpace(comparisons[4]))
	require.True(t, strings.HasSuffix(comparisons[5], "Cheetah Sarah's 100 m animal WR"))
}

func TestRenderVerboseZeroVelocity(t *testing.T) {
	lines := render(t, domain.Run{Distance: 0, Duration: 600}, report.Options{Verbose: true})
	for _, line := range lines[4:10] {
		require.True(t, strings.HasSuffix(line, format.Infinity), line)
	}
	for _, line := range lines[12:] {
		require.True(t, strings.HasPrefix(strings.TrimSpace(line), "0.000 times"), line)
	}
}

func TestBuildDivisionByZero(t *testing.T) {
	_, err := report.Build(context.Background(), domain.Run{Distance: 5000}, report.Options{Verbose: true})
	require.ErrorIs(t, err, serrors.ErrDivisionByZero)
}

func TestBuildInvalidReferenceData(t *testing.T) {
	opts := report.Options{
		References: []domain.ReferencePerformance{{Label: "broken", Distance: 100}},
	}
	_, err := report.Build(context.Background(), domain.Run{Distance: 5000, Duration: 1200}, opts)
	require.ErrorIs(t, err, serrors.ErrInvalidReferenceData)
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{Units: "imperial", Verbose: true}
	opts, err := report.NewOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, units.Imperial, opts.System)
	require.True(t, opts.Verbose)
	require.Equal(t, "100 yd", opts.Targets[0].Label)
	require.Len(t, opts.References, 6)

	_, err = report.NewOptions(&config.Config{Units: "parsecs"})
	require.ErrorIs(t, err, serrors.ErrInvalidUnit)
}
