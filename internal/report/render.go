package report

import (
	"fmt"
	"io"
	"strings"
	"todayiran/pkg/format"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	projectionsHeader = "This is how long you would have needed for other distances:"
	comparisonsHeader = "Your average velocity compared to those of other performances:"
)

// Render writes the report to w in a single write. Headlines are bold when w
// is a terminal.
func (r *Report) Render(w io.Writer) error {
	renderer := lipgloss.NewRenderer(w)
	bold := renderer.NewStyle().Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "Today, you ran %s in %s.\n",
		bold.Render(format.Distance(r.Run.Distance, r.System)),
		bold.Render(format.Duration(r.Run.Duration)),
	)
	b.WriteString(bold.Render("Your average velocity was "+format.Velocity(r.Velocity, r.System)+".") + "\n")

	if r.Verbose {
		rows := make([][]string, 0, len(r.Projections))
		for _, p := range r.Projections {
			rows = append(rows, []string{p.Target.Label, format.Duration(p.Duration)})
		}
		b.WriteString("\n" + bold.Render(projectionsHeader) + "\n")
		b.WriteString(renderTable(renderer, rows))

		rows = make([][]string, 0, len(r.Comparisons))
		for _, c := range r.Comparisons {
			rows = append(rows, []string{format.Ratio(c.Ratio), c.Reference.Label})
		}
		b.WriteString("\n" + bold.Render(comparisonsHeader) + "\n")
		b.WriteString(renderTable(renderer, rows))
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}

// renderTable lays out two-column rows without borders, the first column
// right-aligned and separated from the second by two spaces.
func renderTable(renderer *lipgloss.Renderer, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	first := renderer.NewStyle().Align(lipgloss.Right).PaddingRight(2)
	second := renderer.NewStyle()

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return first
			}

			return second
		}).
		Rows(rows...)

	lines := strings.Split(strings.TrimRight(t.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}

	return strings.Join(lines, "\n") + "\n"
}
