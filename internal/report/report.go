// Package report formats simulation snapshots for terminal output.
package report

import (
	"fmt"
	"strings"

	"bouncing-balls/internal/physics"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(4).Align(lipgloss.Right)
	cellStyle   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Snapshot renders circles as a table: one row per ball with index, centre and radius,
// under a title line. energy < 0 omits the energy footer.
func Snapshot(title string, circles []physics.Circle, energy float64) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(row(indexStyle.Render("#"), "x", "y", "r"))
	for i, c := range circles {
		b.WriteString(row(
			indexStyle.Render(fmt.Sprint(i)),
			fmt.Sprintf("%.3f", c.X),
			fmt.Sprintf("%.3f", c.Y),
			fmt.Sprintf("%.3f", c.Radius),
		))
	}
	if energy >= 0 {
		b.WriteString(footerStyle.Render(fmt.Sprintf("kinetic energy %.3f", energy)))
		b.WriteByte('\n')
	}
	return b.String()
}

func row(index string, cells ...string) string {
	parts := []string{index}
	for _, c := range cells {
		parts = append(parts, cellStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}
