// Package logger provides the toolkit's internal diagnostic logging.
// This channel is for termsay's own debugging and is separate from the
// formatted user output the library renders.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used throughout termsay.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets up the logger from CLI flags and environment variables.
// The CLI flag takes precedence over TERMSAY_LOG_LEVEL.
func Configure(logLevel string, logFile string) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("TERMSAY_LOG_LEVEL"))
	}
	if level == "" {
		level = "warn"
	}

	var output io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		output = file
	}

	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLogLevel(level))
	return nil
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}
