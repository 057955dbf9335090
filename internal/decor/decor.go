// Package decor draws decorative console elements: boxes, headers,
// separators, tables, progress bars, spinners, and confirmation prompts.
// Measurements are ANSI-aware so styled text lines up with plain text.
package decor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"termsay/internal/theme"
)

// Box drawing glyphs.
const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Renderer draws decorative elements to a writer.
type Renderer struct {
	out          io.Writer
	accent       lipgloss.Style
	colorEnabled bool
}

// Option is a functional option for configuring Renderer instances.
type Option func(*Renderer)

// WithWriter directs output to the given writer. Default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithAccent sets the style used for header text.
func WithAccent(style lipgloss.Style) Option {
	return func(r *Renderer) {
		r.accent = style
	}
}

// WithColor toggles styled header rendering.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.colorEnabled = enabled
	}
}

// NewRenderer creates a Renderer writing to stdout with the default
// theme's accent style.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		out:    os.Stdout,
		accent: theme.Default().Accent(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Box draws a fixed-width rectangle with msg centered on the middle
// line. The right padding absorbs any odd remainder. Text wider than
// the box stretches it rather than being cut.
func (r *Renderer) Box(msg string, width int) {
	if width < 2 {
		width = 2
	}
	inner := width - 2
	visual := ansi.StringWidth(msg)
	left := (inner - visual) / 2
	right := inner - visual - left
	if left < 0 {
		left, right = 0, 0
		inner = visual
	}
	fmt.Fprintln(r.out, boxTopLeft+strings.Repeat(boxHorizontal, inner)+boxTopRight)
	fmt.Fprintln(r.out, boxVertical+strings.Repeat(" ", left)+msg+strings.Repeat(" ", right)+boxVertical)
	fmt.Fprintln(r.out, boxBottomLeft+strings.Repeat(boxHorizontal, inner)+boxBottomRight)
}

// Header draws msg in an accented box framed by blank lines.
func (r *Renderer) Header(msg string, width int) {
	styled := msg
	if r.colorEnabled {
		styled = r.accent.Render(msg)
	}
	fmt.Fprintln(r.out)
	r.Box(styled, width)
	fmt.Fprintln(r.out)
}

// Separator draws a single line of glyph repeated width times.
func (r *Renderer) Separator(glyph string, width int) {
	if glyph == "" {
		glyph = "-"
	}
	if width < 0 {
		width = 0
	}
	fmt.Fprintln(r.out, strings.Repeat(glyph, width))
}
