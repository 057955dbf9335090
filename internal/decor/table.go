package decor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table renders pipe-delimited rows as an aligned table. Column widths
// are the maximum visual cell width over all rows; cells are
// left-justified between vertical bars, and a horizontal rule follows
// the first (header) row. Short rows render trailing empty cells.
func (r *Renderer) Table(rows []string) {
	if len(rows) == 0 {
		return
	}

	grid := make([][]string, 0, len(rows))
	var widths []int
	for _, row := range rows {
		cells := strings.Split(row, "|")
		for len(widths) < len(cells) {
			widths = append(widths, 0)
		}
		for i, cell := range cells {
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
		grid = append(grid, cells)
	}

	for rowIdx, cells := range grid {
		var line strings.Builder
		line.WriteString("|")
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			line.WriteString(" ")
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", width-ansi.StringWidth(cell)))
			line.WriteString(" |")
		}
		fmt.Fprintln(r.out, line.String())

		if rowIdx == 0 && len(grid) > 1 {
			var rule strings.Builder
			rule.WriteString("|")
			for _, width := range widths {
				rule.WriteString(strings.Repeat("-", width+2))
				rule.WriteString("|")
			}
			fmt.Fprintln(r.out, rule.String())
		}
	}
}
