package output

import (
	"fmt"
	"strings"

	"termsay/internal/text"
	"termsay/internal/theme"
)

// DefaultMaxWidth is the wrap/truncate budget used when a formatting
// request does not set one.
const DefaultMaxWidth = 79

// Level is the semantic severity of a message.
type Level string

// Recognized message levels. LevelNone renders uncategorized text.
const (
	LevelNone     Level = ""
	LevelInfo     Level = "info"
	LevelSuccess  Level = "success"
	LevelWarning  Level = "warning"
	LevelError    Level = "error"
	LevelInternal Level = "internal"
)

// notification reports whether the level is a user-facing severity, as
// opposed to internal or plain text. Notification levels participate in
// context-aware blank-line separation.
func (l Level) notification() bool {
	switch l {
	case LevelInfo, LevelSuccess, LevelWarning, LevelError:
		return true
	}
	return false
}

// defaultPrefix returns the label a level carries when no explicit
// prefix is given. LevelInternal's forced timestamp prefix is handled
// separately by the printer.
func (l Level) defaultPrefix() string {
	switch l {
	case LevelInfo:
		return "[INFO]"
	case LevelSuccess:
		return "[SUCCESS]"
	case LevelWarning:
		return "[WARNING]"
	case LevelError:
		return "[ERROR]"
	}
	return ""
}

// Options describes a single formatting request. The zero value renders
// plain uncolored text at the default width.
type Options struct {
	// Level selects the message severity and its default prefix/color.
	Level Level

	// Color names a palette color, overriding the level default.
	Color string

	// Style is one of "bold", "dim" or "underline".
	Style string

	// NoNewline suppresses the trailing newline.
	NoNewline bool

	// Timestamp prepends HH:MM:SS to the prefix. Ignored for
	// LevelInternal, which always carries a full date-time prefix.
	Timestamp bool

	// LogFile, when set, appends the escape-stripped rendering to this
	// file after console emission.
	LogFile string

	// Wrap reflows the text to MaxWidth. Takes precedence over Truncate.
	Wrap bool

	// MaxWidth is the wrap/truncate/alignment budget. Zero means
	// DefaultMaxWidth.
	MaxWidth int

	// Truncate cuts the text to MaxWidth with an ellipsis.
	Truncate bool

	// Align positions the rendered text within MaxWidth columns.
	Align text.Alignment

	// Indent is the continuation indent in spaces. In prefix-only wrap
	// mode a zero indent is auto-computed from the prefix width.
	Indent int

	// Prefix replaces the level's default prefix label.
	Prefix string

	// PrefixOnly colors just the prefix, leaving the message body
	// unstyled.
	PrefixOnly bool
}

// normalize validates the request against the theme's palette and fills
// in defaults. Unknown option values are rejected before any output is
// produced.
func (o Options) normalize(th *theme.Theme) (Options, error) {
	if o.MaxWidth == 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxWidth < 0 {
		return o, fmt.Errorf("invalid width %d: must be positive", o.MaxWidth)
	}
	if o.Indent < 0 {
		return o, fmt.Errorf("invalid indent %d: must not be negative", o.Indent)
	}

	switch o.Level {
	case LevelNone, LevelInfo, LevelSuccess, LevelWarning, LevelError, LevelInternal:
	default:
		return o, fmt.Errorf("unknown level %q (valid: info, success, warning, error, internal)", o.Level)
	}

	switch o.Style {
	case "", "bold", "dim", "underline":
	default:
		return o, fmt.Errorf("unknown style %q (valid: bold, dim, underline)", o.Style)
	}

	switch o.Align {
	case "", text.AlignLeft, text.AlignCenter, text.AlignRight:
	default:
		return o, fmt.Errorf("unknown alignment %q (valid: left, center, right)", o.Align)
	}

	if o.Color != "" {
		if _, ok := th.Color(o.Color); !ok {
			return o, fmt.Errorf("unknown color %q (valid: %s)", o.Color, strings.Join(th.ColorNames(), ", "))
		}
	}
	return o, nil
}
