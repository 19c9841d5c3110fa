package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gridpad-labs/gridpad-cli/internal/core/domain"
)

// HTML renders a document as an HTML table. The first row becomes the
// header band; the footer carries the recomputed row and column counts.
// A nil or empty document renders as an empty string.
func HTML(doc *domain.TableDocument) string {
	if doc.RowCount() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table>\n")

	b.WriteString("  <thead>\n    <tr>")
	for _, cell := range doc.Header() {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n  </thead>\n")

	if body := doc.Body(); len(body) > 0 {
		b.WriteString("  <tbody>\n")
		for _, row := range body {
			b.WriteString("    <tr>")
			for _, cell := range row {
				b.WriteString("<td>")
				b.WriteString(html.EscapeString(cell))
				b.WriteString("</td>")
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("  </tbody>\n")
	}

	b.WriteString("</table>\n")
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", Footer(doc)))

	return b.String()
}

// Footer returns the row/column count line shown under rendered tables.
// Counts are recomputed from the rows, never taken from metadata.
func Footer(doc *domain.TableDocument) string {
	return fmt.Sprintf("%d rows × %d columns", doc.RowCount(), doc.ColumnCount())
}
