// Package text implements escape-aware measurement and layout primitives
// for terminal output. All width decisions are made against the visual
// length of a string, the rune count after SGR color sequences are removed,
// never its raw length.
package text

import (
	"strings"
	"unicode/utf8"
)

const esc = '\x1b'

// Alignment selects how Align positions text within a width.
type Alignment string

// Supported alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// StripCodes removes SGR escape sequences (ESC '[' digits/semicolons 'm')
// from s. Other bytes pass through untouched, including control characters
// and escape sequences that are not SGR color runs. Stripping is idempotent.
func StripCodes(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == esc && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
				j++
			}
			if j < len(s) && s[j] == 'm' {
				i = j + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// VisualLength returns the rune count of s with all SGR sequences removed.
func VisualLength(s string) int {
	return utf8.RuneCountInString(StripCodes(s))
}

// ExpandEscapes converts literal \n and \t escape text into real newline
// and tab characters. Run before any measurement so embedded line breaks
// are seen as line breaks.
func ExpandEscapes(s string) string {
	return escapeReplacer.Replace(s)
}

var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Wrap reflows s so no output line visually exceeds maxWidth. Words are
// packed greedily and never split, so a single word longer than the budget
// occupies its own line unmodified. Blank input lines are preserved as
// empty output lines. Every emitted line is prefixed with indent spaces
// and measured against a budget of maxWidth-indent, except the first
// output line when skipFirstIndent is set: that line gets no prefix and
// the full maxWidth budget, for the case where a prefix already occupies
// the start of it. No trailing newline is appended.
func Wrap(s string, indent, maxWidth int, skipFirstIndent bool) string {
	if s == "" {
		return ""
	}
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)
	first := skipFirstIndent

	budget := func() int {
		if first {
			return maxWidth
		}
		return maxWidth - indent
	}

	var out []string
	emit := func(line string) {
		if first {
			out = append(out, line)
			first = false
			return
		}
		out = append(out, pad+line)
	}

	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			out = append(out, "")
			continue
		}
		if VisualLength(line) <= budget() {
			emit(line)
			continue
		}
		var acc string
		for _, word := range strings.Fields(line) {
			switch {
			case acc == "":
				acc = word
			case VisualLength(acc)+1+VisualLength(word) <= budget():
				acc += " " + word
			default:
				emit(acc)
				acc = word
			}
		}
		if acc != "" {
			emit(acc)
		}
	}
	return strings.Join(out, "\n")
}

// Truncate shortens s to maxWidth, appending "..." when it does not fit.
// The cut is made at a raw rune offset, not a visual one, so truncating
// text that carries color sequences can cut inside or after a sequence.
// Callers that need ANSI-safe truncation should measure and cut with an
// escape-aware routine instead.
func Truncate(s string, maxWidth int) string {
	if VisualLength(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	cut := maxWidth - 3
	if cut < 0 {
		cut = 0
	}
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + "..."
}

// Align positions s within width columns. Center prepends half the free
// space, right prepends all of it, left returns s unchanged. Padding is
// computed from visual length; when s already fills the width the text
// comes back untouched. No right padding is added.
func Align(s string, mode Alignment, width int) string {
	switch mode {
	case AlignCenter:
		pad := (width - VisualLength(s)) / 2
		if pad <= 0 {
			return s
		}
		return strings.Repeat(" ", pad) + s
	case AlignRight:
		pad := width - VisualLength(s)
		if pad <= 0 {
			return s
		}
		return strings.Repeat(" ", pad) + s
	default:
		return s
	}
}

// Indent prefixes every non-blank line of s with n spaces. Blank lines
// stay blank.
func Indent(s string, n int) string {
	if n <= 0 || s == "" {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
