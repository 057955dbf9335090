// Package output implements the leveled console formatter. A Printer
// renders formatting requests built from Options: it attaches level
// prefixes, applies color and style, wraps or truncates against a visual
// width budget, aligns, and routes the result to stdout or stderr with
// optional append-only file logging.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"termsay/internal/text"
	"termsay/internal/theme"
)

// ErrLevelError reports that a message was emitted at the error level.
// The emission itself succeeded; callers use this to exit non-zero.
var ErrLevelError = errors.New("message emitted at error level")

// contextKind records what kind of output was emitted last, to decide
// whether a notification needs a separating blank line.
type contextKind int

const (
	contextUnset contextKind = iota
	contextNotification
	contextPlain
	contextPrompt
)

// Printer renders leveled messages. It holds the process-wide
// configuration (color, quiet mode, terminal width) and the marker of
// the previous emission's kind. A Printer assumes one logical writer at
// a time; the mutex only guards against torn interleaved emissions.
type Printer struct {
	mu           sync.Mutex
	out          io.Writer
	errOut       io.Writer
	theme        *theme.Theme
	colorEnabled bool
	quiet        bool
	width        int
	last         contextKind
}

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter directs normal output to the given writer. Default is
// os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.out = w
		}
	}
}

// WithErrorWriter directs error and internal output to the given writer.
// Default is os.Stderr.
func WithErrorWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.errOut = w
		}
	}
}

// WithTheme sets the style palette.
func WithTheme(th *theme.Theme) Option {
	return func(p *Printer) {
		if th != nil {
			p.theme = th
		}
	}
}

// WithWidth overrides the detected terminal width.
func WithWidth(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.width = width
		}
	}
}

// PlainText disables color regardless of terminal capabilities. Useful
// for deterministic output in tests and machine consumption.
func PlainText() Option {
	return func(p *Printer) {
		p.colorEnabled = false
	}
}

// Quiet suppresses everything except error-level messages.
func Quiet() Option {
	return func(p *Printer) {
		p.quiet = true
	}
}

// NewPrinter creates a Printer. Color support and terminal width are
// probed from the real stdout; options override the probed values.
func NewPrinter(options ...Option) *Printer {
	colorEnabled, width := DetectTerminal()
	p := &Printer{
		out:          os.Stdout,
		errOut:       os.Stderr,
		theme:        theme.Default(),
		colorEnabled: colorEnabled,
		width:        width,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Say renders one message according to opts. In quiet mode every level
// except error is suppressed and reported as success. An error-level
// emission returns ErrLevelError after printing so callers can signal
// failure.
func (p *Printer) Say(msg string, opts Options) error {
	opts, err := opts.normalize(p.theme)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.quiet && opts.Level != LevelError {
		return nil
	}

	w := p.out
	if opts.Level == LevelError || opts.Level == LevelInternal {
		w = p.errOut
	}

	if opts.Level.notification() && p.last != contextUnset && p.last != contextNotification {
		fmt.Fprintln(w)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = opts.Level.defaultPrefix()
	}
	switch {
	case opts.Level == LevelInternal:
		prefix = time.Now().Format("[2006-01-02 15:04:05]")
	case opts.Timestamp:
		ts := time.Now().Format("15:04:05")
		if prefix != "" {
			prefix = ts + " " + prefix
		} else {
			prefix = ts
		}
	}

	body := text.ExpandEscapes(msg)
	style, styled := p.styleFor(opts)

	var final string
	if opts.PrefixOnly {
		head := prefix
		if styled && p.colorEnabled {
			head = style.Render(prefix)
		}
		combined := body
		indent := opts.Indent
		skipFirst := false
		if prefix != "" {
			combined = head + " " + body
			if opts.Wrap && opts.Indent == 0 {
				indent = text.VisualLength(prefix) + 1
				skipFirst = true
			}
		}
		final = transform(combined, opts, indent, skipFirst)
	} else {
		combined := body
		if prefix != "" {
			combined = prefix + " " + body
		}
		final = transform(combined, opts, opts.Indent, false)
		if styled && p.colorEnabled {
			final = style.Render(final)
		}
	}

	if opts.NoNewline {
		fmt.Fprint(w, final)
	} else {
		fmt.Fprintln(w, final)
	}

	if opts.Level.notification() {
		p.last = contextNotification
	} else {
		p.last = contextPlain
	}

	if opts.LogFile != "" {
		if err := appendLogFile(opts.LogFile, text.StripCodes(final), opts.NoNewline); err != nil {
			return err
		}
	}
	if opts.Level == LevelError {
		return ErrLevelError
	}
	return nil
}

// transform applies wrap-or-truncate then alignment. Wrap wins when both
// are requested; alignment always runs last.
func transform(s string, opts Options, indent int, skipFirst bool) string {
	switch {
	case opts.Wrap:
		s = text.Wrap(s, indent, opts.MaxWidth, skipFirst)
	case opts.Truncate:
		s = text.Truncate(s, opts.MaxWidth)
	default:
		if indent > 0 {
			s = text.Indent(s, indent)
		}
	}
	if opts.Align != "" && opts.Align != text.AlignLeft {
		s = text.Align(s, opts.Align, opts.MaxWidth)
	}
	return s
}

// styleFor resolves the lipgloss style for a request: explicit color
// beats the level default, then the text attribute is layered on top.
// The boolean reports whether any styling applies at all.
func (p *Printer) styleFor(opts Options) (lipgloss.Style, bool) {
	style := lipgloss.NewStyle()
	styled := false

	if opts.Color != "" {
		if s, ok := p.theme.Color(opts.Color); ok {
			style = s
			styled = true
		}
	} else if s, ok := p.theme.Level(string(opts.Level)); ok && opts.Level.notification() {
		style = s
		styled = true
	}

	switch opts.Style {
	case "bold":
		style = style.Bold(true)
		styled = true
	case "dim":
		style = style.Faint(true)
		styled = true
	case "underline":
		style = style.Underline(true)
		styled = true
	}
	return style, styled
}

// Info emits msg at the info level.
func (p *Printer) Info(msg string) error {
	return p.Say(msg, Options{Level: LevelInfo})
}

// Success emits msg at the success level.
func (p *Printer) Success(msg string) error {
	return p.Say(msg, Options{Level: LevelSuccess})
}

// Warning emits msg at the warning level.
func (p *Printer) Warning(msg string) error {
	return p.Say(msg, Options{Level: LevelWarning})
}

// Error emits msg at the error level and returns ErrLevelError.
func (p *Printer) Error(msg string) error {
	return p.Say(msg, Options{Level: LevelError})
}

// Internal emits msg at the internal level: uncolored, full timestamp
// prefix, routed to the error stream.
func (p *Printer) Internal(msg string) error {
	return p.Say(msg, Options{Level: LevelInternal})
}

// Plain emits msg without level semantics.
func (p *Printer) Plain(msg string) error {
	return p.Say(msg, Options{})
}

// MarkPrompt records that the last emission was an interactive prompt,
// so the next notification is preceded by a blank line.
func (p *Printer) MarkPrompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = contextPrompt
}

// MarkPlain records that plain text was written to the output outside
// of Say, for example by a decorative renderer.
func (p *Printer) MarkPlain() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = contextPlain
}

// ResetContext clears the previous-emission marker.
func (p *Printer) ResetContext() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = contextUnset
}

// SetTheme swaps the style palette.
func (p *Printer) SetTheme(th *theme.Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if th != nil {
		p.theme = th
	}
}

// SetQuiet toggles quiet mode.
func (p *Printer) SetQuiet(quiet bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quiet = quiet
}

// SetColorEnabled forces color on or off, overriding detection.
func (p *Printer) SetColorEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.colorEnabled = enabled
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if width > 0 {
		p.width = width
	}
}

// ColorEnabled reports whether styled rendering is active.
func (p *Printer) ColorEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.colorEnabled
}

// Width returns the configured terminal width.
func (p *Printer) Width() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width
}

// Writer returns the normal output destination.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// ErrorWriter returns the error output destination.
func (p *Printer) ErrorWriter() io.Writer {
	return p.errOut
}

// Theme returns the active style palette.
func (p *Printer) Theme() *theme.Theme {
	return p.theme
}

// appendLogFile appends one escape-stripped record to path, mirroring
// the console newline behavior.
func appendLogFile(path, record string, noNewline bool) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if !noNewline {
		record += "\n"
	}
	_, err = f.WriteString(record)
	return err
}
