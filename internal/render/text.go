package render

import (
	"strings"
	"unicode/utf8"
)

// Text renders rows as an aligned plain-text grid with a separator
// under the first row. Ragged rows are rendered as-is.
func Text(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := columnWidths(rows)

	var b strings.Builder
	for i, row := range rows {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)))
			}
		}
		b.WriteString("\n")

		if i == 0 && len(rows) > 1 {
			total := 0
			for j, w := range widths {
				if j > 0 {
					total += 2
				}
				total += w
			}
			b.WriteString(strings.Repeat("-", total))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// columnWidths computes the display width of each column across all
// rows.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}
