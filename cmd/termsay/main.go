// Package main provides the termsay CLI, a terminal text-formatting
// toolkit for shell scripts: leveled messages, escape-aware wrapping and
// alignment, and simple decorative elements.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"termsay/internal/logger"
	"termsay/internal/output"
	"termsay/internal/theme"
	"termsay/internal/version"
)

var (
	logLevel  string
	logFile   string
	themeName string
)

// errDeclined signals a declined confirmation prompt; the process exits
// non-zero without printing anything further.
var errDeclined = errors.New("declined")

// rootCmd is the leveled message formatter; subcommands add the
// decorative renderers.
var rootCmd = &cobra.Command{
	Use:   "termsay [flags] [message...]",
	Short: "Consistent, optionally colorized console output for scripts",
	Long: `termsay renders leveled messages (info, success, warning, error) with
colors, prefixes, word wrapping, truncation and alignment, all aware of
embedded ANSI color sequences. The message comes from the arguments or,
when absent, from piped standard input.`,
	RunE:          runSay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, output.ErrLevelError) && !errors.Is(err, errDeclined) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set internal log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write internal logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme (default|plain)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except error-level messages")

	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding quiet flag: %v\n", err)
		os.Exit(1)
	}

	addSayFlags(rootCmd)

	rootCmd.AddCommand(boxCmd)
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(sepCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(spinCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

// initConfig wires environment configuration into the default printer.
// Recognized variables: TERMSAY_COLOR (force color on or off),
// TERMSAY_QUIET, TERMSAY_WIDTH (terminal width override), and
// TERMSAY_LOG_LEVEL.
func initConfig() {
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	viper.SetEnvPrefix("TERMSAY")
	viper.AutomaticEnv()
	for _, key := range []string{"color", "quiet", "width"} {
		if err := viper.BindEnv(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s: %v\n", key, err)
			os.Exit(1)
		}
	}

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}

	p := output.Default()
	if themeName != "" {
		p.SetTheme(theme.Load(themeName))
	}
	if raw := viper.GetString("color"); raw != "" {
		p.SetColorEnabled(viper.GetBool("color"))
	}
	if viper.GetBool("quiet") {
		p.SetQuiet(true)
	}
	if w := viper.GetInt("width"); w > 0 {
		p.SetWidth(w)
	}
}
