package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// RenderTable lays rows out under headers with every column padded to its
// widest visible cell. Short rows are padded with empty cells; cells past
// the header count are dropped. The last column is never padded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeRow(&b, headers, widths, StyleHeader.Render)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	writeRow(&b, rule, widths, StyleDim.Render)

	for _, row := range rows {
		writeRow(&b, row, widths, nil)
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int, style func(...string) string) {
	last := len(widths) - 1
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		visible := lipgloss.Width(cell)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < last {
			b.WriteString(strings.Repeat(" ", max(w-visible, 0)))
			b.WriteString(columnGap)
		}
	}
	b.WriteByte('\n')
}
