package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"termsay/internal/logger"
	"termsay/internal/output"
	"termsay/internal/text"
)

var sayFlags struct {
	color      string
	style      string
	level      string
	noNewline  bool
	timestamp  bool
	file       string
	wrap       bool
	width      int
	truncate   bool
	align      string
	indent     int
	prefix     string
	prefixOnly bool
}

func addSayFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&sayFlags.color, "color", "c", "", "Palette color for the message")
	flags.StringVarP(&sayFlags.style, "style", "s", "", "Text style (bold|dim|underline)")
	flags.StringVarP(&sayFlags.level, "level", "l", "", "Message level (info|success|warning|error|internal)")
	flags.BoolVarP(&sayFlags.noNewline, "no-newline", "n", false, "Suppress the trailing newline")
	flags.BoolVarP(&sayFlags.timestamp, "timestamp", "t", false, "Prepend HH:MM:SS to the prefix")
	flags.StringVarP(&sayFlags.file, "file", "f", "", "Also append the plain-text message to this file")
	flags.BoolVarP(&sayFlags.wrap, "wrap", "w", false, "Word-wrap the message to the width budget")
	flags.IntVarP(&sayFlags.width, "width", "W", 0, "Width budget for wrap/truncate/align (default 79)")
	flags.BoolVarP(&sayFlags.truncate, "truncate", "T", false, "Truncate the message with an ellipsis")
	flags.StringVarP(&sayFlags.align, "align", "a", "", "Alignment (left|center|right)")
	flags.IntVarP(&sayFlags.indent, "indent", "i", 0, "Continuation indent in spaces")
	flags.StringVarP(&sayFlags.prefix, "prefix", "p", "", "Replace the level's default prefix")
	flags.BoolVarP(&sayFlags.prefixOnly, "prefix-color-only", "P", false, "Color only the prefix, not the message body")
}

// runSay renders one leveled message. The message comes from the
// positional arguments, or from stdin when no arguments are given and
// stdin is not an interactive terminal.
func runSay(_ *cobra.Command, args []string) error {
	msg := strings.Join(args, " ")
	if msg == "" {
		if output.StdinIsTerminal() {
			return fmt.Errorf("no message given (pass text as arguments or pipe it on stdin)")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read message from stdin: %w", err)
		}
		msg = strings.TrimSuffix(string(data), "\n")
	}

	opts := output.Options{
		Level:      output.Level(sayFlags.level),
		Color:      sayFlags.color,
		Style:      sayFlags.style,
		NoNewline:  sayFlags.noNewline,
		Timestamp:  sayFlags.timestamp,
		LogFile:    sayFlags.file,
		Wrap:       sayFlags.wrap,
		MaxWidth:   sayFlags.width,
		Truncate:   sayFlags.truncate,
		Align:      text.Alignment(sayFlags.align),
		Indent:     sayFlags.indent,
		Prefix:     sayFlags.prefix,
		PrefixOnly: sayFlags.prefixOnly,
	}

	logger.Debug("rendering message", "level", sayFlags.level, "wrap", sayFlags.wrap, "width", sayFlags.width)
	return output.Default().Say(msg, opts)
}
