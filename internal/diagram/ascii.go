package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/guptarohit/asciigraph"
)

// Chart size in characters
const (
	asciiHeight = 15
	asciiWidth  = 64
)

// DrawASCIIProfile creates an ASCII chart of stress against level for one
// pier, one chart per combination. The horizontal axis runs from the lowest
// to the highest level of each series.
func DrawASCIIProfile(pier tower.PierID, series []tower.Series) string {
	var sb strings.Builder

	for _, s := range series {
		if len(s.Points) == 0 {
			sb.WriteString(fmt.Sprintf("\n  %s - %s: no data in range\n", s.Combo, pier))
			continue
		}

		values := make([]float64, len(s.Points))
		for i, pt := range s.Points {
			values[i] = pt.Stress
		}

		caption := fmt.Sprintf("%s - %s, stress (kPa) over levels %d..%d",
			s.Combo, pier, s.Points[0].Level, s.Points[len(s.Points)-1].Level)

		sb.WriteString("\n")
		sb.WriteString(asciigraph.Plot(values,
			asciigraph.Height(asciiHeight),
			asciigraph.Width(asciiWidth),
			asciigraph.Precision(0),
			asciigraph.Offset(4),
			asciigraph.Caption(caption),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
