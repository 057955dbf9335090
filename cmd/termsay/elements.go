package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"termsay/internal/decor"
	"termsay/internal/output"
)

// renderer builds a decor renderer attached to the default printer's
// writer and palette. The printer's context marker is bumped by the
// callers so leveled messages keep their blank-line spacing.
func renderer() *decor.Renderer {
	p := output.Default()
	return decor.NewRenderer(
		decor.WithWriter(p.Writer()),
		decor.WithAccent(p.Theme().Accent()),
		decor.WithColor(p.ColorEnabled()),
	)
}

// elementWidth resolves a --width flag value, falling back to the
// detected terminal width.
func elementWidth(width int) int {
	if width > 0 {
		return width
	}
	return output.Default().Width()
}

var boxWidth int

var boxCmd = &cobra.Command{
	Use:   "box <text>",
	Short: "Draw a box with the text centered",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		renderer().Box(strings.Join(args, " "), elementWidth(boxWidth))
		output.Default().MarkPlain()
	},
}

var headerWidth int

var headerCmd = &cobra.Command{
	Use:   "header <text>",
	Short: "Draw an accented box framed by blank lines",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		renderer().Header(strings.Join(args, " "), elementWidth(headerWidth))
		output.Default().MarkPlain()
	},
}

var sepWidth int

var sepCmd = &cobra.Command{
	Use:   "sep [glyph]",
	Short: "Draw a separator line of one repeated character",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		glyph := "-"
		if len(args) > 0 {
			glyph = args[0]
		}
		renderer().Separator(glyph, elementWidth(sepWidth))
		output.Default().MarkPlain()
	},
}

var tableCmd = &cobra.Command{
	Use:   "table [row...]",
	Short: "Render pipe-delimited rows as an aligned table",
	Long: `Render pipe-delimited rows as an aligned table. The first row is the
header and is followed by a separator line. Rows come from the
arguments or, when absent, one row per line from stdin.`,
	RunE: func(_ *cobra.Command, args []string) error {
		rows := args
		if len(rows) == 0 {
			if output.StdinIsTerminal() {
				return fmt.Errorf("no rows given (pass rows as arguments or pipe them on stdin)")
			}
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				rows = append(rows, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read rows from stdin: %w", err)
			}
		}
		renderer().Table(rows)
		output.Default().MarkPlain()
		return nil
	},
}

var progressBarWidth int

var progressCmd = &cobra.Command{
	Use:   "progress <label> <current> <total>",
	Short: "Render one progress bar frame, overwriting the current line",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		current, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid current value %q: %w", args[1], err)
		}
		total, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid total value %q: %w", args[2], err)
		}
		renderer().Progress(args[0], current, total, progressBarWidth)
		output.Default().MarkPlain()
		return nil
	},
}

func init() {
	boxCmd.Flags().IntVar(&boxWidth, "width", 0, "Box width (default: terminal width)")
	headerCmd.Flags().IntVar(&headerWidth, "width", 0, "Header width (default: terminal width)")
	sepCmd.Flags().IntVar(&sepWidth, "width", 0, "Separator width (default: terminal width)")
	progressCmd.Flags().IntVar(&progressBarWidth, "bar-width", 10, "Bar width in characters")
}
