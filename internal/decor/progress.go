package decor

import (
	"fmt"
	"strings"
)

// defaultBarWidth is used when a progress call passes a non-positive
// bar width.
const defaultBarWidth = 10

// Progress renders `label: [====>     ] NN%` in place using a
// carriage-return overwrite. The filled segment count is
// current*barWidth/total, with a transitional arrow at the leading edge
// until the bar is full. A trailing newline is emitted only on
// completion.
func (r *Renderer) Progress(label string, current, total, barWidth int) {
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	filled := current * barWidth / total
	percent := current * 100 / total

	var bar string
	switch {
	case filled >= barWidth:
		bar = strings.Repeat("=", barWidth)
	case filled > 0:
		bar = strings.Repeat("=", filled) + ">" + strings.Repeat(" ", barWidth-filled-1)
	default:
		bar = ">" + strings.Repeat(" ", barWidth-1)
	}

	fmt.Fprintf(r.out, "\r%s: [%s] %d%%", label, bar, percent)
	if current == total {
		fmt.Fprintln(r.out)
	}
}
